// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package mapper translates between the backend's snake_case row shape and
// the application's camelCase records. It is the only place that knows about
// column names; everything downstream works with model types. Translation is
// pure: no I/O, no business logic (derived fields live in the data facade).
package mapper

import (
	"strconv"
	"time"
)

// Row is one storage row as decoded from the backend's JSON.
type Row map[string]any

// str reads a string column, returning "" for null or missing values so
// downstream code never nil-checks optional text fields.
func (r Row) str(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// strOr reads a string column with a fallback for null/empty values.
func (r Row) strOr(key, fallback string) string {
	if v := r.str(key); v != "" {
		return v
	}
	return fallback
}

// list reads a text-array column, returning an empty (non-nil) slice for
// null or missing values so list fields are always safe to range over.
func (r Row) list(key string) []string {
	out := []string{}
	items, ok := r[key].([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// boolOr reads a boolean column with a default for null/missing values.
func (r Row) boolOr(key string, fallback bool) bool {
	if v, ok := r[key].(bool); ok {
		return v
	}
	return fallback
}

// intVal reads a numeric column as int. JSON numbers decode as float64.
func (r Row) intVal(key string) int {
	switch v := r[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// floatVal reads a numeric column as float64. The backend may also return
// numerics as strings depending on the column type.
func (r Row) floatVal(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// dateOnly converts a storage timestamp to its date portion (YYYY-MM-DD).
// Returns "" when the column is null or unparseable.
func (r Row) dateOnly(key string) string {
	raw := r.str(key)
	if raw == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// setStr adds a string column when the patch field is present.
func (r Row) setStr(key string, v *string) {
	if v != nil {
		r[key] = *v
	}
}

// setList adds a text-array column when the patch field is present.
func (r Row) setList(key string, v *[]string) {
	if v != nil {
		if *v == nil {
			r[key] = []string{}
			return
		}
		r[key] = *v
	}
}

// setBool adds a boolean column when the patch field is present.
func (r Row) setBool(key string, v *bool) {
	if v != nil {
		r[key] = *v
	}
}

// setInt adds an integer column when the patch field is present.
func (r Row) setInt(key string, v *int) {
	if v != nil {
		r[key] = *v
	}
}

// setFloat adds a numeric column when the patch field is present.
func (r Row) setFloat(key string, v *float64) {
	if v != nil {
		r[key] = *v
	}
}
