// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package form

import (
	"reflect"
	"testing"
)

func TestSplitComma(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "React, Node.js, Tailwind", []string{"React", "Node.js", "Tailwind"}},
		{"no spaces", "a,b,c", []string{"a", "b", "c"}},
		{"empty entries dropped", "a,, b, ,c", []string{"a", "b", "c"}},
		{"empty input", "", []string{}},
		{"only separators", ", ,", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitComma(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitComma(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	input := "Student results portal\n\n  Fee payment tracking  \nSMS notifications\n"
	want := []string{"Student results portal", "Fee payment tracking", "SMS notifications"}
	got := SplitLines(input)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines() = %v, want %v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	items := []string{"React", "Supabase", "Paystack"}
	if got := SplitComma(JoinComma(items)); !reflect.DeepEqual(got, items) {
		t.Errorf("comma round trip = %v, want %v", got, items)
	}
	if got := SplitLines(JoinLines(items)); !reflect.DeepEqual(got, items) {
		t.Errorf("line round trip = %v, want %v", got, items)
	}
}

func TestSplitCommaNeverNil(t *testing.T) {
	if SplitComma("") == nil {
		t.Fatal("SplitComma returned nil for empty input")
	}
	if SplitLines("") == nil {
		t.Fatal("SplitLines returned nil for empty input")
	}
}
