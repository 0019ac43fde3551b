// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Product types
const (
	ProductTypeTemplate   = "Template"
	ProductTypeSourceCode = "Source Code"
	ProductTypeWhiteLabel = "White Label"
)

// Product represents a digital product sold in the shop. Price is free text
// and may or may not carry a currency glyph.
type Product struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Price        string   `json:"price"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	PurchaseLink string   `json:"purchaseLink"`
	Features     []string `json:"features"`
	DemoURL      string   `json:"demoUrl,omitempty"`
	Screenshots  []string `json:"screenshots"`
}

// ProductPatch describes a partial write.
type ProductPatch struct {
	Title        *string
	Price        *string
	Type         *string
	Description  *string
	ImageURL     *string
	PurchaseLink *string
	Features     *[]string
	DemoURL      *string
	Screenshots  *[]string
}

// Patch returns a full patch touching every writable column.
func (p Product) Patch() ProductPatch {
	return ProductPatch{
		Title:        &p.Title,
		Price:        &p.Price,
		Type:         &p.Type,
		Description:  &p.Description,
		ImageURL:     &p.ImageURL,
		PurchaseLink: &p.PurchaseLink,
		Features:     &p.Features,
		DemoURL:      &p.DemoURL,
		Screenshots:  &p.Screenshots,
	}
}
