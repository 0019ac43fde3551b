// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple title",
			input:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "title with punctuation",
			input:    "Top 5 Automation Tools!",
			expected: "top-5-automation-tools",
		},
		{
			name:     "messy separators collapse",
			input:    "  --Weird__Title--  ",
			expected: "weird-title",
		},
		{
			name:     "with accents",
			input:    "Café résumé",
			expected: "cafe-resume",
		},
		{
			name:     "with multiple spaces",
			input:    "Hello   World",
			expected: "hello-world",
		},
		{
			name:     "german umlauts",
			input:    "Über München",
			expected: "uber-munchen",
		},
		{
			name:     "all special characters",
			input:    "!@#$%^&*()",
			expected: "",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "single word",
			input:    "Hello",
			expected: "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugify_NoDoubledSeparators(t *testing.T) {
	got := Slugify("  --Weird__Title--  ")
	if len(got) == 0 {
		t.Fatal("expected non-empty slug")
	}
	if got[0] == '-' || got[len(got)-1] == '-' {
		t.Errorf("slug %q has leading/trailing hyphen", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i] == '-' && got[i-1] == '-' {
			t.Errorf("slug %q has doubled hyphens", got)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"hello-world", true},
		{"page-123", true},
		{"hello", true},
		{"", false},
		{"-leading", false},
		{"trailing-", false},
		{"double--hyphen", false},
		{"UpperCase", false},
		{"with space", false},
	}

	for _, tt := range tests {
		if got := IsValidSlug(tt.input); got != tt.valid {
			t.Errorf("IsValidSlug(%q) = %v, want %v", tt.input, got, tt.valid)
		}
	}
}
