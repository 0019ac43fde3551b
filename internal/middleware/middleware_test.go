// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecurityHeaders(t *testing.T) {
	handler := SecurityHeaders(false)(okHandler())
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := w.Header().Get("Strict-Transport-Security"); got == "" {
		t.Error("HSTS missing in production mode")
	}

	// Development skips HSTS.
	w = httptest.NewRecorder()
	SecurityHeaders(true)(okHandler()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := w.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("HSTS set in development: %q", got)
	}
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	rl := NewRateLimiter(0.001, 2, log)
	handler := rl.Middleware()(okHandler())

	statuses := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/inquiries", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}
	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Errorf("burst requests = %v, first two should pass", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", statuses[2])
	}

	// A different IP has its own bucket.
	req := httptest.NewRequest(http.MethodPost, "/inquiries", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("fresh IP got %d", w.Code)
	}
}

func TestClientIPPrefersProxyHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:9999"
	if got := clientIP(req); got != "127.0.0.1:9999" {
		t.Errorf("clientIP = %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	if got := clientIP(req); got != "203.0.113.7" {
		t.Errorf("clientIP = %q, want forwarded address", got)
	}

	req.Header.Set("X-Real-IP", "198.51.100.2")
	if got := clientIP(req); got != "198.51.100.2" {
		t.Errorf("clientIP = %q, want real-ip address", got)
	}
}
