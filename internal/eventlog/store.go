// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package eventlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Event levels.
const (
	LevelWarning = "warning"
	LevelError   = "error"
)

// Event is one recorded operational event.
type Event struct {
	ID        int64
	Level     string
	Message   string
	Metadata  string
	CreatedAt time.Time
}

// Store reads and writes the events table.
type Store struct {
	db *sql.DB
}

// NewStore wraps an opened event-log database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateEvent appends one event. Metadata must be a JSON object; pass "{}"
// when there is none.
func (s *Store) CreateEvent(ctx context.Context, level, message, metadata string) error {
	if metadata == "" {
		metadata = "{}"
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (level, message, metadata, created_at) VALUES (?, ?, ?, ?)`,
		level, message, metadata, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("creating event: %w", err)
	}
	return nil
}

// ListRecent returns the newest events first, capped at limit.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, level, message, metadata, created_at FROM events ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Level, &e.Message, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// PruneBefore deletes events older than cutoff and returns how many went.
func (s *Store) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE created_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("pruning events: %w", err)
	}
	return res.RowsAffected()
}
