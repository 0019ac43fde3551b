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
	"net/url"
	"strconv"
	"time"
)

// Request configuration constants
const (
	RequestTimeout = 30 * time.Second // HTTP request timeout
	MaxResponseLen = 1 << 20          // Maximum error response body to keep (1MB)
	UserAgent      = "peculiar-go/1.0"
)

// httpClient is the shared HTTP client with appropriate timeouts.
var httpClient = &http.Client{
	Timeout: RequestTimeout,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	},
}

// Client is the row-level API client. A zero/nil-credential client reports
// ErrNotConfigured from every call instead of reaching the network.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

// NewClient creates a row API client. Pass empty credentials to get a client
// that is permanently in the not-configured state.
func NewClient(baseURL, anonKey string) *Client {
	return &Client{baseURL: baseURL, anonKey: anonKey, http: httpClient}
}

// Configured reports whether the client has credentials to reach the backend.
func (c *Client) Configured() bool {
	return c != nil && c.baseURL != "" && c.anonKey != ""
}

// SelectOptions narrow and order a Select call.
type SelectOptions struct {
	// Filters are equality predicates, column -> value.
	Filters map[string]string
	// OrderBy names the sort column; empty means backend default order.
	OrderBy    string
	Descending bool
	// Limit caps the row count; zero means no limit.
	Limit int
}

// Select fetches rows from a table with optional equality filters and order.
func (c *Client) Select(ctx context.Context, table string, opts SelectOptions) ([]map[string]any, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("select", "*")
	for col, val := range opts.Filters {
		q.Set(col, "eq."+val)
	}
	if opts.OrderBy != "" {
		dir := "asc"
		if opts.Descending {
			dir = "desc"
		}
		q.Set("order", opts.OrderBy+"."+dir)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, url.PathEscape(table), q.Encode())
	body, err := c.do(ctx, http.MethodGet, endpoint, nil, "select "+table, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, &RequestError{Op: "select " + table, Message: "decoding response: " + err.Error()}
	}
	return rows, nil
}

// Insert adds one row and returns the stored representation, including
// server-assigned columns (id, created_at).
func (c *Client) Insert(ctx context.Context, table string, row map[string]any) (map[string]any, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	payload, err := json.Marshal([]map[string]any{row})
	if err != nil {
		return nil, &RequestError{Op: "insert " + table, Message: "encoding payload: " + err.Error()}
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, url.PathEscape(table))
	body, err := c.do(ctx, http.MethodPost, endpoint, payload, "insert "+table, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil || len(rows) == 0 {
		return nil, &RequestError{Op: "insert " + table, Message: "backend returned no representation"}
	}
	return rows[0], nil
}

// Update patches the row matching id with the given columns.
func (c *Client) Update(ctx context.Context, table, id string, row map[string]any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(row)
	if err != nil {
		return &RequestError{Op: "update " + table, Message: "encoding payload: " + err.Error()}
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s?id=eq.%s", c.baseURL, url.PathEscape(table), url.QueryEscape(id))
	_, err = c.do(ctx, http.MethodPatch, endpoint, payload, "update "+table, http.StatusNoContent)
	return err
}

// Delete removes the row matching id.
func (c *Client) Delete(ctx context.Context, table, id string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s?id=eq.%s", c.baseURL, url.PathEscape(table), url.QueryEscape(id))
	_, err := c.do(ctx, http.MethodDelete, endpoint, nil, "delete "+table, http.StatusNoContent)
	return err
}

// do executes one request with auth headers and maps non-2xx responses to
// RequestError. wantStatus is the expected success code; any other 2xx is
// accepted too since the backend varies between 200/201/204.
func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte, op string, wantStatus int) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, &RequestError{Op: op, Message: err.Error()}
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	req.Header.Set("User-Agent", UserAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Op: op, Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseLen))
	if err != nil {
		return nil, &RequestError{Op: op, StatusCode: resp.StatusCode, Message: "reading response: " + err.Error()}
	}

	if resp.StatusCode != wantStatus && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return nil, &RequestError{Op: op, StatusCode: resp.StatusCode, Message: string(body)}
	}
	return body, nil
}
