// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mapper

import "github.com/peculiardigitals/peculiar-go/internal/model"

// ProductFromRow maps a storage row to a Product.
func ProductFromRow(r Row) model.Product {
	return model.Product{
		ID:           r.str("id"),
		Title:        r.str("title"),
		Price:        r.str("price"),
		Type:         r.str("type"),
		Description:  r.str("description"),
		ImageURL:     r.str("image_url"),
		PurchaseLink: r.str("purchase_link"),
		Features:     r.list("features"),
		DemoURL:      r.str("demo_url"),
		Screenshots:  r.list("screenshots"),
	}
}

// ProductToRow maps a patch to the columns the write should touch.
func ProductToRow(p model.ProductPatch) Row {
	r := Row{}
	r.setStr("title", p.Title)
	r.setStr("price", p.Price)
	r.setStr("type", p.Type)
	r.setStr("description", p.Description)
	r.setStr("image_url", p.ImageURL)
	r.setStr("purchase_link", p.PurchaseLink)
	r.setList("features", p.Features)
	r.setStr("demo_url", p.DemoURL)
	r.setList("screenshots", p.Screenshots)
	return r
}
