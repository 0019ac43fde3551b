// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var htmlSanitizer = bluemonday.UGCPolicy()

// renderMarkdown converts Markdown to sanitized HTML. Blog content is
// author-supplied, so the result always passes through the sanitizer.
func renderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return htmlSanitizer.Sanitize(buf.String()), nil
}
