// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// PricingCategory groups packages on the pricing page. Displayed in
// ascending SortOrder.
type PricingCategory struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

// PricingCategoryPatch describes a partial write.
type PricingCategoryPatch struct {
	Name      *string
	SortOrder *int
}

// Patch returns a full patch touching every writable column.
func (c PricingCategory) Patch() PricingCategoryPatch {
	return PricingCategoryPatch{
		Name:      &c.Name,
		SortOrder: &c.SortOrder,
	}
}

// PricingPackage is one offer within a category. At most one package per
// category should be popular; this layer does not enforce it.
type PricingPackage struct {
	ID            string   `json:"id"`
	CategoryID    string   `json:"categoryId"`
	Name          string   `json:"name"`
	Price         string   `json:"price"`
	DiscountPrice string   `json:"discountPrice,omitempty"`
	Description   string   `json:"description,omitempty"`
	Features      []string `json:"features"`
	IsPopular     bool     `json:"isPopular"`
}

// PricingPackagePatch describes a partial write.
type PricingPackagePatch struct {
	CategoryID    *string
	Name          *string
	Price         *string
	DiscountPrice *string
	Description   *string
	Features      *[]string
	IsPopular     *bool
}

// Patch returns a full patch touching every writable column.
func (p PricingPackage) Patch() PricingPackagePatch {
	return PricingPackagePatch{
		CategoryID:    &p.CategoryID,
		Name:          &p.Name,
		Price:         &p.Price,
		DiscountPrice: &p.DiscountPrice,
		Description:   &p.Description,
		Features:      &p.Features,
		IsPopular:     &p.IsPopular,
	}
}
