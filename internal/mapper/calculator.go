// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mapper

import "github.com/peculiardigitals/peculiar-go/internal/model"

// CalculatorItemFromRow maps a storage row to a CalculatorItem. The price
// column is numeric but may arrive as a JSON string for some column types.
func CalculatorItemFromRow(r Row) model.CalculatorItem {
	return model.CalculatorItem{
		ID:       r.str("id"),
		Name:     r.str("name"),
		Price:    r.floatVal("price"),
		Category: r.str("category"),
		IsActive: r.boolOr("is_active", true),
	}
}

// CalculatorItemToRow maps a patch to the columns the write should touch.
func CalculatorItemToRow(p model.CalculatorItemPatch) Row {
	r := Row{}
	r.setStr("name", p.Name)
	r.setFloat("price", p.Price)
	r.setStr("category", p.Category)
	r.setBool("is_active", p.IsActive)
	return r
}
