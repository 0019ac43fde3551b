// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/peculiardigitals/peculiar-go/internal/backend"
)

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]any{
		"success": false,
		"error":   message,
	})
}

// writeJSONSuccess writes a JSON success response.
func writeJSONSuccess(w http.ResponseWriter, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}
	data["success"] = true
	writeJSON(w, http.StatusOK, data)
}

// decodeJSON decodes the request body, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeBackendError maps a data-layer failure onto an HTTP status: backend
// rejections become 502 (the upstream refused us), an unconfigured backend
// is 503.
func writeBackendError(w http.ResponseWriter, err error) {
	var reqErr *backend.RequestError
	switch {
	case errors.Is(err, backend.ErrNotConfigured):
		writeJSONError(w, http.StatusServiceUnavailable, "backend not configured")
	case errors.As(err, &reqErr):
		writeJSONError(w, http.StatusBadGateway, "backend request failed")
	default:
		writeJSONError(w, http.StatusInternalServerError, "internal error")
	}
}
