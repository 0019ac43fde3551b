// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package data

import (
	"context"

	"github.com/peculiardigitals/peculiar-go/internal/backend"
	"github.com/peculiardigitals/peculiar-go/internal/mapper"
	"github.com/peculiardigitals/peculiar-go/internal/model"
)

// Settings returns the site settings singleton. Missing row, demo mode and
// read failure all yield the built-in defaults so the site always renders;
// failures are logged, not propagated.
func (s *Service) Settings(ctx context.Context) model.SiteSettings {
	if !s.client.Configured() {
		return mapper.SettingsFromRow(mapper.Row{})
	}

	rows, err := s.client.Select(ctx, tableSettings, backend.SelectOptions{Limit: 1})
	if err != nil {
		s.log.Warn("could not fetch settings, using defaults", "error", err)
		return mapper.SettingsFromRow(mapper.Row{})
	}
	if len(rows) == 0 {
		return mapper.SettingsFromRow(mapper.Row{})
	}
	return mapper.SettingsFromRow(mapper.Row(rows[0]))
}

// UpdateSettings writes the singleton, inserting it on first save. Returns
// persisted=false in demo mode.
func (s *Service) UpdateSettings(ctx context.Context, patch model.SiteSettingsPatch) (bool, error) {
	if s.demoWrite("update settings") {
		return false, nil
	}

	payload := mapper.SettingsToRow(patch)

	rows, err := s.client.Select(ctx, tableSettings, backend.SelectOptions{Limit: 1})
	if err != nil {
		return false, err
	}
	if len(rows) > 0 {
		id, _ := rows[0]["id"].(string)
		if err := s.client.Update(ctx, tableSettings, id, payload); err != nil {
			return false, err
		}
		return true, nil
	}

	if _, err := s.client.Insert(ctx, tableSettings, payload); err != nil {
		return false, err
	}
	return true, nil
}
