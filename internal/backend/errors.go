// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package backend speaks to the hosted backend-as-a-service: its REST row
// API, its object storage, and its password auth. All three are consumed as
// opaque services; this package owns the wire details and nothing else.
// There are no retries — every failure surfaces to the caller once.
package backend

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when backend credentials are absent. The data
// facade treats it as the signal to serve demo/fallback behavior.
var ErrNotConfigured = errors.New("backend not configured")

// RequestError is any read/write/upload the backend rejected: network
// failure, constraint violation, permission denial.
type RequestError struct {
	Op         string // e.g. "select projects", "upload brands/logo.png"
	StatusCode int    // 0 when the request never reached the backend
	Message    string
}

func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("backend: %s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend: %s: %s", e.Op, e.Message)
}
