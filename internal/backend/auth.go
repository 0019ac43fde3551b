// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Session is an authenticated backend session. The token is opaque; this
// service only stores and forwards it.
type Session struct {
	AccessToken string
	Email       string
	ExpiresAt   time.Time
}

// Auth is the password-auth client. Token verification, refresh and user
// management are the backend's concern, not ours.
type Auth struct {
	baseURL string
	anonKey string
	http    *http.Client
}

// NewAuth creates an auth client.
func NewAuth(baseURL, anonKey string) *Auth {
	return &Auth{baseURL: baseURL, anonKey: anonKey, http: httpClient}
}

// Configured reports whether the client has credentials to reach the backend.
func (a *Auth) Configured() bool {
	return a != nil && a.baseURL != "" && a.anonKey != ""
}

// SignInWithPassword exchanges credentials for a session.
func (a *Auth) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	if !a.Configured() {
		return nil, ErrNotConfigured
	}

	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, &RequestError{Op: "sign in", Message: err.Error()}
	}

	endpoint := fmt.Sprintf("%s/auth/v1/token?grant_type=password", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &RequestError{Op: "sign in", Message: err.Error()}
	}
	req.Header.Set("apikey", a.anonKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, &RequestError{Op: "sign in", Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, MaxResponseLen))
	if resp.StatusCode != http.StatusOK {
		msg := "invalid login credentials"
		var apiErr struct {
			Message          string `json:"msg"`
			ErrorDescription string `json:"error_description"`
		}
		if json.Unmarshal(body, &apiErr) == nil {
			if apiErr.Message != "" {
				msg = apiErr.Message
			} else if apiErr.ErrorDescription != "" {
				msg = apiErr.ErrorDescription
			}
		}
		return nil, &RequestError{Op: "sign in", StatusCode: resp.StatusCode, Message: msg}
	}

	var tok struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
		User        struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(body, &tok); err != nil || tok.AccessToken == "" {
		return nil, &RequestError{Op: "sign in", Message: "malformed token response"}
	}

	return &Session{
		AccessToken: tok.AccessToken,
		Email:       tok.User.Email,
		ExpiresAt:   time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second),
	}, nil
}

// SignOut revokes the session token. A failed revocation is not fatal — the
// local session is discarded regardless — so the error is informational.
func (a *Auth) SignOut(ctx context.Context, accessToken string) error {
	if !a.Configured() {
		return ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/auth/v1/logout", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return &RequestError{Op: "sign out", Message: err.Error()}
	}
	req.Header.Set("apikey", a.anonKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("User-Agent", UserAgent)

	resp, err := a.http.Do(req)
	if err != nil {
		return &RequestError{Op: "sign out", Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{Op: "sign out", StatusCode: resp.StatusCode, Message: "revocation rejected"}
	}
	return nil
}
