// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mapper

import "github.com/peculiardigitals/peculiar-go/internal/model"

// PricingCategoryFromRow maps a storage row to a PricingCategory.
func PricingCategoryFromRow(r Row) model.PricingCategory {
	return model.PricingCategory{
		ID:        r.str("id"),
		Name:      r.str("name"),
		SortOrder: r.intVal("sort_order"),
	}
}

// PricingCategoryToRow maps a patch to the columns the write should touch.
func PricingCategoryToRow(p model.PricingCategoryPatch) Row {
	r := Row{}
	r.setStr("name", p.Name)
	r.setInt("sort_order", p.SortOrder)
	return r
}

// PricingPackageFromRow maps a storage row to a PricingPackage.
func PricingPackageFromRow(r Row) model.PricingPackage {
	return model.PricingPackage{
		ID:            r.str("id"),
		CategoryID:    r.str("category_id"),
		Name:          r.str("name"),
		Price:         r.str("price"),
		DiscountPrice: r.str("discount_price"),
		Description:   r.str("description"),
		Features:      r.list("features"),
		IsPopular:     r.boolOr("is_popular", false),
	}
}

// PricingPackageToRow maps a patch to the columns the write should touch.
func PricingPackageToRow(p model.PricingPackagePatch) Row {
	r := Row{}
	r.setStr("category_id", p.CategoryID)
	r.setStr("name", p.Name)
	r.setStr("price", p.Price)
	r.setStr("discount_price", p.DiscountPrice)
	r.setStr("description", p.Description)
	r.setList("features", p.Features)
	r.setBool("is_popular", p.IsPopular)
	return r
}
