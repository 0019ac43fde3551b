// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package data is the typed facade over the hosted backend. It owns table
// names, ordering, derived fields (slug, read time) and the demo fallback:
// with no backend credentials reads return seed collections and writes
// no-op, reporting persisted=false so callers can surface a demo notice.
package data

import (
	"context"
	"log/slog"

	"github.com/peculiardigitals/peculiar-go/internal/backend"
	"github.com/peculiardigitals/peculiar-go/internal/imaging"
	"github.com/peculiardigitals/peculiar-go/internal/mapper"
)

// Backend table names.
const (
	tableProjects   = "projects"
	tableProducts   = "products"
	tableBlogPosts  = "blog_posts"
	tableBrands     = "brands"
	tableSettings   = "site_settings"
	tableCategories = "pricing_categories"
	tablePackages   = "pricing_packages"
	tableCalculator = "calculator_items"
	tableInquiries  = "service_inquiries"
	orderCreatedAt  = "created_at"
	orderSortOrder  = "sort_order"
)

// Service exposes every content operation to handlers and the admin
// controller. Safe for concurrent use; all state lives in the backend.
type Service struct {
	client  *backend.Client
	storage *backend.Storage
	images  *imaging.Processor
	log     *slog.Logger
}

// New creates the facade. An unconfigured client puts the service in demo
// mode rather than failing.
func New(client *backend.Client, storage *backend.Storage, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		client:  client,
		storage: storage,
		images:  imaging.NewProcessor(),
		log:     log,
	}
}

// Configured reports whether writes actually persist.
func (s *Service) Configured() bool {
	return s.client.Configured()
}

// demoWrite reports whether a write should be skipped because the backend is
// not configured. Skipped writes are logged so operators notice a demo
// deployment that was meant to be live.
func (s *Service) demoWrite(op string) bool {
	if s.client.Configured() {
		return false
	}
	s.log.Warn("write skipped, backend not configured", "op", op)
	return true
}

// selectAll is the common list read: every row of one table in the given
// order.
func (s *Service) selectAll(ctx context.Context, table, orderBy string, descending bool) ([]mapper.Row, error) {
	rows, err := s.client.Select(ctx, table, backend.SelectOptions{
		OrderBy:    orderBy,
		Descending: descending,
	})
	if err != nil {
		return nil, err
	}
	out := make([]mapper.Row, len(rows))
	for i, r := range rows {
		out[i] = mapper.Row(r)
	}
	return out, nil
}

// selectByID fetches at most one row by primary key. A missing row is
// (nil, nil), not an error.
func (s *Service) selectByID(ctx context.Context, table, id string) (mapper.Row, error) {
	rows, err := s.client.Select(ctx, table, backend.SelectOptions{
		Filters: map[string]string{"id": id},
		Limit:   1,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return mapper.Row(rows[0]), nil
}
