// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// CalculatorItem is one line in the public cost calculator. Inactive items
// are hidden from the public calculator but kept for admin editing.
type CalculatorItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	IsActive bool    `json:"isActive"`
}

// CalculatorItemPatch describes a partial write.
type CalculatorItemPatch struct {
	Name     *string
	Price    *float64
	Category *string
	IsActive *bool
}

// Patch returns a full patch touching every writable column.
func (i CalculatorItem) Patch() CalculatorItemPatch {
	return CalculatorItemPatch{
		Name:     &i.Name,
		Price:    &i.Price,
		Category: &i.Category,
		IsActive: &i.IsActive,
	}
}
