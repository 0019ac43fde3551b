// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mapper

import "github.com/peculiardigitals/peculiar-go/internal/model"

// BrandFromRow maps a storage row to a Brand.
func BrandFromRow(r Row) model.Brand {
	return model.Brand{
		ID:      r.str("id"),
		Name:    r.str("name"),
		LogoURL: r.str("logo_url"),
	}
}

// BrandToRow maps a patch to the columns the write should touch.
func BrandToRow(p model.BrandPatch) Row {
	r := Row{}
	r.setStr("name", p.Name)
	r.setStr("logo_url", p.LogoURL)
	return r
}
