// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package payment initializes Paystack checkout transactions for product
// purchases. It is a thin client; amounts are always in minor units (kobo)
// and errors propagate to the caller untouched.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the live Paystack API endpoint.
const DefaultBaseURL = "https://api.paystack.co"

const requestTimeout = 30 * time.Second

// Checkout is an initialized transaction the buyer is redirected to.
type Checkout struct {
	AuthorizationURL string `json:"authorizationUrl"`
	AccessCode       string `json:"accessCode"`
	Reference        string `json:"reference"`
}

// Client calls the payment gateway with one secret key. Build a fresh client
// per request so key rotation in settings takes effect immediately.
type Client struct {
	baseURL   string
	secretKey string
	http      *http.Client
}

// NewClient creates a gateway client. An empty secret key yields a client
// whose calls fail with a configuration error.
func NewClient(secretKey string) *Client {
	return NewClientWithBaseURL(secretKey, DefaultBaseURL)
}

// NewClientWithBaseURL creates a client against a specific endpoint. Tests
// point this at a local server.
func NewClientWithBaseURL(secretKey, baseURL string) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		http:      &http.Client{Timeout: requestTimeout},
	}
}

// NewReference returns a unique transaction reference.
func NewReference() string {
	return "pds_" + uuid.NewString()
}

// Initialize starts a checkout for email paying amountMinor in kobo. The
// returned authorization URL is where the buyer completes payment.
func (c *Client) Initialize(ctx context.Context, email string, amountMinor int64, reference string) (*Checkout, error) {
	if c.secretKey == "" {
		return nil, fmt.Errorf("payment gateway not configured")
	}
	if amountMinor <= 0 {
		return nil, fmt.Errorf("invalid amount %d", amountMinor)
	}
	if reference == "" {
		reference = NewReference()
	}

	payload, err := json.Marshal(map[string]any{
		"email":     email,
		"amount":    amountMinor,
		"reference": reference,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding checkout request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/transaction/initialize", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building checkout request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("initializing checkout: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading checkout response: %w", err)
	}

	var decoded struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			AuthorizationURL string `json:"authorization_url"`
			AccessCode       string `json:"access_code"`
			Reference        string `json:"reference"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decoding checkout response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || !decoded.Status {
		return nil, fmt.Errorf("checkout rejected (status %d): %s", resp.StatusCode, decoded.Message)
	}

	return &Checkout{
		AuthorizationURL: decoded.Data.AuthorizationURL,
		AccessCode:       decoded.Data.AccessCode,
		Reference:        decoded.Data.Reference,
	}, nil
}
