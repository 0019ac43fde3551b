// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package eventlog

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Handler is a slog.Handler that wraps another handler and mirrors records
// at WARN level and above into the event log.
type Handler struct {
	inner slog.Handler
	store *Store
	level slog.Level
	attrs []slog.Attr
}

// NewHandler wraps inner with WARN as the mirroring threshold.
func NewHandler(inner slog.Handler, store *Store) *Handler {
	return &Handler{inner: inner, store: store, level: slog.LevelWarn}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler. The inner handler always runs; the event
// write is best effort and never fails the log call.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}
	if r.Level >= h.level {
		// Background context so the event lands even when the request
		// context is already cancelled.
		_ = h.store.CreateEvent(context.Background(), recordLevel(r.Level), r.Message, h.metadata(r))
	}
	return nil
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &Handler{inner: h.inner.WithAttrs(attrs), store: h.store, level: h.level, attrs: merged}
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{inner: h.inner.WithGroup(name), store: h.store, level: h.level, attrs: h.attrs}
}

// metadata flattens the record's attributes into a JSON object.
func (h *Handler) metadata(r slog.Record) string {
	fields := map[string]string{}
	for _, a := range h.attrs {
		fields[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		fields[a.Key] = a.Value.String()
		return true
	})
	if len(fields) == 0 {
		return "{}"
	}
	encoded, err := json.Marshal(fields)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}

func recordLevel(level slog.Level) string {
	if level >= slog.LevelError {
		return LevelError
	}
	return LevelWarning
}
