// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package data

import (
	"context"

	"github.com/peculiardigitals/peculiar-go/internal/mapper"
	"github.com/peculiardigitals/peculiar-go/internal/model"
)

// Brands lists the trust strip, newest first. Demo mode returns seeds.
func (s *Service) Brands(ctx context.Context) ([]model.Brand, error) {
	if !s.client.Configured() {
		return SeedBrands(), nil
	}
	rows, err := s.selectAll(ctx, tableBrands, orderCreatedAt, true)
	if err != nil {
		return nil, err
	}
	out := make([]model.Brand, len(rows))
	for i, r := range rows {
		out[i] = mapper.BrandFromRow(r)
	}
	return out, nil
}

// AddBrand inserts a new brand.
func (s *Service) AddBrand(ctx context.Context, b model.Brand) (bool, error) {
	if s.demoWrite("add brand") {
		return false, nil
	}
	if _, err := s.client.Insert(ctx, tableBrands, mapper.BrandToRow(b.Patch())); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateBrand patches an existing brand.
func (s *Service) UpdateBrand(ctx context.Context, id string, patch model.BrandPatch) (bool, error) {
	if s.demoWrite("update brand") {
		return false, nil
	}
	if err := s.client.Update(ctx, tableBrands, id, mapper.BrandToRow(patch)); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteBrand removes a brand.
func (s *Service) DeleteBrand(ctx context.Context, id string) (bool, error) {
	if s.demoWrite("delete brand") {
		return false, nil
	}
	if err := s.client.Delete(ctx, tableBrands, id); err != nil {
		return false, err
	}
	return true, nil
}
