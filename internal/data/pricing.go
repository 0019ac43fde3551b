// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package data

import (
	"context"

	"github.com/peculiardigitals/peculiar-go/internal/mapper"
	"github.com/peculiardigitals/peculiar-go/internal/model"
)

// PricingCategories lists categories in display order. Demo mode has no
// pricing data, so it returns an empty list.
func (s *Service) PricingCategories(ctx context.Context) ([]model.PricingCategory, error) {
	if !s.client.Configured() {
		return []model.PricingCategory{}, nil
	}
	rows, err := s.selectAll(ctx, tableCategories, orderSortOrder, false)
	if err != nil {
		return nil, err
	}
	out := make([]model.PricingCategory, len(rows))
	for i, r := range rows {
		out[i] = mapper.PricingCategoryFromRow(r)
	}
	return out, nil
}

// AddPricingCategory inserts a new category.
func (s *Service) AddPricingCategory(ctx context.Context, c model.PricingCategory) (bool, error) {
	if s.demoWrite("add pricing category") {
		return false, nil
	}
	if _, err := s.client.Insert(ctx, tableCategories, mapper.PricingCategoryToRow(c.Patch())); err != nil {
		return false, err
	}
	return true, nil
}

// UpdatePricingCategory patches an existing category.
func (s *Service) UpdatePricingCategory(ctx context.Context, id string, patch model.PricingCategoryPatch) (bool, error) {
	if s.demoWrite("update pricing category") {
		return false, nil
	}
	if err := s.client.Update(ctx, tableCategories, id, mapper.PricingCategoryToRow(patch)); err != nil {
		return false, err
	}
	return true, nil
}

// DeletePricingCategory removes a category. Packages referencing it are left
// to the backend's referential rules.
func (s *Service) DeletePricingCategory(ctx context.Context, id string) (bool, error) {
	if s.demoWrite("delete pricing category") {
		return false, nil
	}
	if err := s.client.Delete(ctx, tableCategories, id); err != nil {
		return false, err
	}
	return true, nil
}

// PricingPackages lists packages in creation order, which is the order
// admins entered them within each category.
func (s *Service) PricingPackages(ctx context.Context) ([]model.PricingPackage, error) {
	if !s.client.Configured() {
		return []model.PricingPackage{}, nil
	}
	rows, err := s.selectAll(ctx, tablePackages, orderCreatedAt, false)
	if err != nil {
		return nil, err
	}
	out := make([]model.PricingPackage, len(rows))
	for i, r := range rows {
		out[i] = mapper.PricingPackageFromRow(r)
	}
	return out, nil
}

// PackageByID fetches one package. A missing row is (nil, nil).
func (s *Service) PackageByID(ctx context.Context, id string) (*model.PricingPackage, error) {
	if !s.client.Configured() {
		return nil, nil
	}
	row, err := s.selectByID(ctx, tablePackages, id)
	if err != nil || row == nil {
		return nil, err
	}
	p := mapper.PricingPackageFromRow(row)
	return &p, nil
}

// AddPackage inserts a new package.
func (s *Service) AddPackage(ctx context.Context, p model.PricingPackage) (bool, error) {
	if s.demoWrite("add package") {
		return false, nil
	}
	if _, err := s.client.Insert(ctx, tablePackages, mapper.PricingPackageToRow(p.Patch())); err != nil {
		return false, err
	}
	return true, nil
}

// UpdatePackage patches an existing package.
func (s *Service) UpdatePackage(ctx context.Context, id string, patch model.PricingPackagePatch) (bool, error) {
	if s.demoWrite("update package") {
		return false, nil
	}
	if err := s.client.Update(ctx, tablePackages, id, mapper.PricingPackageToRow(patch)); err != nil {
		return false, err
	}
	return true, nil
}

// DeletePackage removes a package.
func (s *Service) DeletePackage(ctx context.Context, id string) (bool, error) {
	if s.demoWrite("delete package") {
		return false, nil
	}
	if err := s.client.Delete(ctx, tablePackages, id); err != nil {
		return false, err
	}
	return true, nil
}
