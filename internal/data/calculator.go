// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package data

import (
	"context"

	"github.com/peculiardigitals/peculiar-go/internal/backend"
	"github.com/peculiardigitals/peculiar-go/internal/mapper"
	"github.com/peculiardigitals/peculiar-go/internal/model"
)

// CalculatorItems lists the active items the public calculator shows,
// cheapest first.
func (s *Service) CalculatorItems(ctx context.Context) ([]model.CalculatorItem, error) {
	if !s.client.Configured() {
		return []model.CalculatorItem{}, nil
	}
	rows, err := s.client.Select(ctx, tableCalculator, backend.SelectOptions{
		Filters: map[string]string{"is_active": "true"},
		OrderBy: "price",
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.CalculatorItem, len(rows))
	for i, r := range rows {
		out[i] = mapper.CalculatorItemFromRow(mapper.Row(r))
	}
	return out, nil
}

// AllCalculatorItems lists every item including inactive ones, grouped by
// category, for the admin editor.
func (s *Service) AllCalculatorItems(ctx context.Context) ([]model.CalculatorItem, error) {
	if !s.client.Configured() {
		return []model.CalculatorItem{}, nil
	}
	rows, err := s.selectAll(ctx, tableCalculator, "category", false)
	if err != nil {
		return nil, err
	}
	out := make([]model.CalculatorItem, len(rows))
	for i, r := range rows {
		out[i] = mapper.CalculatorItemFromRow(r)
	}
	return out, nil
}

// AddCalculatorItem inserts a new item.
func (s *Service) AddCalculatorItem(ctx context.Context, item model.CalculatorItem) (bool, error) {
	if s.demoWrite("add calculator item") {
		return false, nil
	}
	if _, err := s.client.Insert(ctx, tableCalculator, mapper.CalculatorItemToRow(item.Patch())); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateCalculatorItem patches an existing item.
func (s *Service) UpdateCalculatorItem(ctx context.Context, id string, patch model.CalculatorItemPatch) (bool, error) {
	if s.demoWrite("update calculator item") {
		return false, nil
	}
	if err := s.client.Update(ctx, tableCalculator, id, mapper.CalculatorItemToRow(patch)); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteCalculatorItem removes an item.
func (s *Service) DeleteCalculatorItem(ctx context.Context, id string) (bool, error) {
	if s.demoWrite("delete calculator item") {
		return false, nil
	}
	if err := s.client.Delete(ctx, tableCalculator, id); err != nil {
		return false, err
	}
	return true, nil
}
