// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Brand represents a client brand shown in the trust strip.
type Brand struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
}

// BrandPatch describes a partial write.
type BrandPatch struct {
	Name    *string
	LogoURL *string
}

// Patch returns a full patch touching every writable column.
func (b Brand) Patch() BrandPatch {
	return BrandPatch{
		Name:    &b.Name,
		LogoURL: &b.LogoURL,
	}
}
