// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package eventlog

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// ScheduleRetention registers a daily prune of events older than
// retentionDays on the given scheduler. retentionDays <= 0 disables pruning.
func ScheduleRetention(c *cron.Cron, store *Store, retentionDays int, log *slog.Logger) error {
	if retentionDays <= 0 {
		return nil
	}
	_, err := c.AddFunc("@daily", func() {
		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		pruned, err := store.PruneBefore(context.Background(), cutoff)
		if err != nil {
			log.Error("event log prune failed", "error", err)
			return
		}
		if pruned > 0 {
			log.Info("pruned old events", "count", pruned, "retention_days", retentionDays)
		}
	})
	return err
}
