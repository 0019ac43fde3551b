// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package form converts between list fields and their editable text
// representation at the UI boundary. Short inline lists (stack, tags) are
// comma-delimited; paragraph lists (features) are newline-delimited. The
// data layer only ever sees real lists.
package form

import "strings"

// SplitComma parses a comma-delimited input into a trimmed list, dropping
// empty entries and preserving order.
func SplitComma(input string) []string {
	return split(input, ",")
}

// JoinComma renders a list back into its comma-delimited editable form.
func JoinComma(items []string) string {
	return strings.Join(items, ", ")
}

// SplitLines parses a newline-delimited input into a trimmed list, dropping
// empty lines and preserving order.
func SplitLines(input string) []string {
	return split(input, "\n")
}

// JoinLines renders a list back into its newline-delimited editable form.
func JoinLines(items []string) string {
	return strings.Join(items, "\n")
}

func split(input, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(input, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
