// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package data

import (
	"context"

	"github.com/peculiardigitals/peculiar-go/internal/mapper"
	"github.com/peculiardigitals/peculiar-go/internal/model"
)

// Products lists the shop inventory, newest first. Demo mode returns seeds.
func (s *Service) Products(ctx context.Context) ([]model.Product, error) {
	if !s.client.Configured() {
		return SeedProducts(), nil
	}
	rows, err := s.selectAll(ctx, tableProducts, orderCreatedAt, true)
	if err != nil {
		return nil, err
	}
	out := make([]model.Product, len(rows))
	for i, r := range rows {
		out[i] = mapper.ProductFromRow(r)
	}
	return out, nil
}

// ProductByID fetches one product. A missing row is (nil, nil).
func (s *Service) ProductByID(ctx context.Context, id string) (*model.Product, error) {
	if !s.client.Configured() {
		for _, p := range SeedProducts() {
			if p.ID == id {
				return &p, nil
			}
		}
		return nil, nil
	}
	row, err := s.selectByID(ctx, tableProducts, id)
	if err != nil || row == nil {
		return nil, err
	}
	p := mapper.ProductFromRow(row)
	return &p, nil
}

// AddProduct inserts a new product.
func (s *Service) AddProduct(ctx context.Context, p model.Product) (bool, error) {
	if s.demoWrite("add product") {
		return false, nil
	}
	if _, err := s.client.Insert(ctx, tableProducts, mapper.ProductToRow(p.Patch())); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateProduct patches an existing product.
func (s *Service) UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (bool, error) {
	if s.demoWrite("update product") {
		return false, nil
	}
	if err := s.client.Update(ctx, tableProducts, id, mapper.ProductToRow(patch)); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteProduct removes a product.
func (s *Service) DeleteProduct(ctx context.Context, id string) (bool, error) {
	if s.demoWrite("delete product") {
		return false, nil
	}
	if err := s.client.Delete(ctx, tableProducts, id); err != nil {
		return false, err
	}
	return true, nil
}
