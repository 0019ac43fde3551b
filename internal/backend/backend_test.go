// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient("", "")

	if c.Configured() {
		t.Error("Configured() = true for empty credentials")
	}

	if _, err := c.Select(context.Background(), "projects", SelectOptions{}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Select error = %v, want ErrNotConfigured", err)
	}
	if _, err := c.Insert(context.Background(), "projects", map[string]any{}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Insert error = %v, want ErrNotConfigured", err)
	}
	if err := c.Update(context.Background(), "projects", "1", map[string]any{}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Update error = %v, want ErrNotConfigured", err)
	}
	if err := c.Delete(context.Background(), "projects", "1"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Delete error = %v, want ErrNotConfigured", err)
	}
}

func TestClient_SelectBuildsQueryAndHeaders(t *testing.T) {
	var gotPath, gotQuery, gotAPIKey, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[{"id":"a1","title":"One"},{"id":"a2","title":"Two"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon-key")
	rows, err := c.Select(context.Background(), "blog_posts", SelectOptions{
		Filters:    map[string]string{"slug": "hello"},
		OrderBy:    "created_at",
		Descending: true,
		Limit:      1,
	})
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}

	if len(rows) != 2 {
		t.Errorf("got %d rows, want 2", len(rows))
	}
	if gotPath != "/rest/v1/blog_posts" {
		t.Errorf("path = %q", gotPath)
	}
	for _, want := range []string{"select=%2A", "slug=eq.hello", "order=created_at.desc", "limit=1"} {
		if !containsParam(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
	if gotAPIKey != "anon-key" {
		t.Errorf("apikey header = %q", gotAPIKey)
	}
	if gotAuth != "Bearer anon-key" {
		t.Errorf("Authorization header = %q", gotAuth)
	}
}

func containsParam(query, param string) bool {
	for _, part := range splitQuery(query) {
		if part == param {
			return true
		}
	}
	return false
}

func splitQuery(q string) []string {
	var parts []string
	start := 0
	for i := 0; i <= len(q); i++ {
		if i == len(q) || q[i] == '&' {
			parts = append(parts, q[start:i])
			start = i + 1
		}
	}
	return parts
}

func TestClient_InsertReturnsRepresentation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if prefer := r.Header.Get("Prefer"); prefer != "return=representation" {
			t.Errorf("Prefer header = %q", prefer)
		}
		var payload []map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || len(payload) != 1 {
			t.Errorf("bad insert payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":"new-id","title":"Hello","created_at":"2026-01-05T10:00:00Z"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon-key")
	row, err := c.Insert(context.Background(), "projects", map[string]any{"title": "Hello"})
	if err != nil {
		t.Fatalf("Insert() error: %v", err)
	}
	if row["id"] != "new-id" {
		t.Errorf("inserted id = %v, want new-id", row["id"])
	}
}

func TestClient_UpdateTargetsRowByID(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon-key")
	if err := c.Update(context.Background(), "projects", "abc-123", map[string]any{"title": "X"}); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if gotQuery != "id=eq.abc-123" {
		t.Errorf("query = %q, want id=eq.abc-123", gotQuery)
	}
}

func TestClient_ErrorStatusBecomesRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"permission denied"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon-key")
	err := c.Delete(context.Background(), "projects", "abc")

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %T, want *RequestError", err)
	}
	if reqErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", reqErr.StatusCode)
	}
}

func TestStorage_UploadReturnsPublicURL(t *testing.T) {
	var gotPath, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"Key":"projects/file.png"}`))
	}))
	defer srv.Close()

	s := NewStorage(srv.URL, "anon-key")
	url, err := s.Upload(context.Background(), "projects", "file.png", []byte("data"), "image/png")
	if err != nil {
		t.Fatalf("Upload() error: %v", err)
	}

	if gotPath != "/storage/v1/object/projects/file.png" {
		t.Errorf("upload path = %q", gotPath)
	}
	if gotContentType != "image/png" {
		t.Errorf("content type = %q", gotContentType)
	}
	want := srv.URL + "/storage/v1/object/public/projects/file.png"
	if url != want {
		t.Errorf("public URL = %q, want %q", url, want)
	}
}

func TestStorage_UploadRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInsufficientStorage)
		_, _ = w.Write([]byte(`{"message":"quota exceeded"}`))
	}))
	defer srv.Close()

	s := NewStorage(srv.URL, "anon-key")
	_, err := s.Upload(context.Background(), "projects", "file.png", []byte("data"), "image/png")

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %T, want *RequestError", err)
	}
}

func TestStorage_NotConfigured(t *testing.T) {
	s := NewStorage("", "")
	if _, err := s.Upload(context.Background(), "projects", "f.png", nil, ""); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Upload error = %v, want ErrNotConfigured", err)
	}
}

func TestAuth_SignInSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if grant := r.URL.Query().Get("grant_type"); grant != "password" {
			t.Errorf("grant_type = %q", grant)
		}
		var creds map[string]string
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds["email"] != "admin@example.com" {
			t.Errorf("email = %q", creds["email"])
		}
		_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":3600,"user":{"email":"admin@example.com"}}`))
	}))
	defer srv.Close()

	a := NewAuth(srv.URL, "anon-key")
	sess, err := a.SignInWithPassword(context.Background(), "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("SignInWithPassword() error: %v", err)
	}
	if sess.AccessToken != "tok-1" {
		t.Errorf("AccessToken = %q", sess.AccessToken)
	}
	if sess.Email != "admin@example.com" {
		t.Errorf("Email = %q", sess.Email)
	}
}

func TestAuth_SignInBadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_description":"Invalid login credentials"}`))
	}))
	defer srv.Close()

	a := NewAuth(srv.URL, "anon-key")
	_, err := a.SignInWithPassword(context.Background(), "admin@example.com", "wrong")

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %T, want *RequestError", err)
	}
	if reqErr.Message != "Invalid login credentials" {
		t.Errorf("Message = %q", reqErr.Message)
	}
}

func TestAuth_NotConfigured(t *testing.T) {
	a := NewAuth("", "")
	if _, err := a.SignInWithPassword(context.Background(), "e", "p"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("SignInWithPassword error = %v, want ErrNotConfigured", err)
	}
}
