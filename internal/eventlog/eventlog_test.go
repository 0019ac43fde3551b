// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package eventlog

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))
	return db
}

func TestCreateAndListEvents(t *testing.T) {
	store := NewStore(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.CreateEvent(ctx, LevelWarning, "first", ""))
	require.NoError(t, store.CreateEvent(ctx, LevelError, "second", `{"op":"x"}`))

	events, err := store.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Newest first.
	assert.Equal(t, "second", events[0].Message)
	assert.Equal(t, "{}", events[1].Metadata)
}

func TestPruneBefore(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	old := time.Now().UTC().AddDate(0, 0, -100)
	_, err := db.ExecContext(ctx,
		`INSERT INTO events (level, message, metadata, created_at) VALUES (?, ?, '{}', ?)`,
		LevelWarning, "ancient", old)
	require.NoError(t, err)
	require.NoError(t, store.CreateEvent(ctx, LevelWarning, "fresh", ""))

	pruned, err := store.PruneBefore(ctx, time.Now().AddDate(0, 0, -90))
	require.NoError(t, err)
	assert.EqualValues(t, 1, pruned)

	events, err := store.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "fresh", events[0].Message)
}

func TestHandlerMirrorsWarnAndAbove(t *testing.T) {
	store := NewStore(newTestDB(t))
	inner := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := slog.New(NewHandler(inner, store))

	log.Info("routine", "k", "v")
	log.Warn("something odd", "op", "update settings")
	log.Error("something broke")

	events, err := store.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("mirrored %d events, want 2 (INFO must not be mirrored)", len(events))
	}
	if events[0].Level != LevelError {
		t.Errorf("newest level = %q, want error", events[0].Level)
	}
	if events[1].Metadata != `{"op":"update settings"}` {
		t.Errorf("metadata = %q", events[1].Metadata)
	}
}

func TestHandlerCarriesWithAttrs(t *testing.T) {
	store := NewStore(newTestDB(t))
	inner := slog.NewTextHandler(io.Discard, nil)
	log := slog.New(NewHandler(inner, store)).With("component", "data")

	log.Warn("write skipped")

	events, err := store.ListRecent(context.Background(), 1)
	if err != nil || len(events) != 1 {
		t.Fatalf("ListRecent = (%v, %v)", events, err)
	}
	if events[0].Metadata != `{"component":"data"}` {
		t.Errorf("metadata = %q, want component attr carried", events[0].Metadata)
	}
}
