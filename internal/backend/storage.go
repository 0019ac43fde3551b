// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Storage is the object-storage client: upload by path, resolve a public
// URL by path. Buckets map 1:1 to entity image collections.
type Storage struct {
	baseURL string
	anonKey string
	http    *http.Client
}

// NewStorage creates an object-storage client.
func NewStorage(baseURL, anonKey string) *Storage {
	return &Storage{baseURL: baseURL, anonKey: anonKey, http: httpClient}
}

// Configured reports whether the client has credentials to reach the backend.
func (s *Storage) Configured() bool {
	return s != nil && s.baseURL != "" && s.anonKey != ""
}

// Upload stores an object and returns its publicly resolvable URL.
func (s *Storage) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}

	op := fmt.Sprintf("upload %s/%s", bucket, path)
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, url.PathEscape(bucket), url.PathEscape(path))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", &RequestError{Op: op, Message: err.Error()}
	}
	req.Header.Set("apikey", s.anonKey)
	req.Header.Set("Authorization", "Bearer "+s.anonKey)
	req.Header.Set("User-Agent", UserAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return "", &RequestError{Op: op, Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, MaxResponseLen))
		return "", &RequestError{Op: op, StatusCode: resp.StatusCode, Message: string(body)}
	}

	return s.PublicURL(bucket, path), nil
}

// PublicURL resolves the public URL for an object path. No network call is
// made; public buckets serve objects directly by convention.
func (s *Storage) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, url.PathEscape(bucket), url.PathEscape(path))
}
