// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package data

import (
	"fmt"
	"strings"

	"github.com/peculiardigitals/peculiar-go/internal/model"
	"github.com/peculiardigitals/peculiar-go/internal/util"
)

// wordsPerMinute is the reading speed assumed for read-time estimates.
const wordsPerMinute = 200

// DeriveSlug builds a URL slug from a post title.
func DeriveSlug(title string) string {
	return util.Slugify(title)
}

// DeriveReadTime estimates reading time from post content, rounding minutes
// up. Empty content falls back to the default rather than "0 min read".
func DeriveReadTime(content string) string {
	words := len(strings.Fields(content))
	if words == 0 {
		return model.DefaultReadTime
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return fmt.Sprintf("%d min read", minutes)
}

// normalizeBlogPost fills the derived fields before a write: slug from title
// when the author left it blank, read time from content unless the author
// supplied one. A supplied slug that is not URL-safe is re-slugified.
func normalizeBlogPost(p *model.BlogPost) {
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = DeriveSlug(p.Title)
	} else if !util.IsValidSlug(p.Slug) {
		p.Slug = util.Slugify(p.Slug)
	}
	if strings.TrimSpace(p.ReadTime) == "" {
		p.ReadTime = DeriveReadTime(p.Content)
	}
}

// normalizeBlogPatch applies the same derivation to a partial update. Only
// fields present in the patch are considered.
func normalizeBlogPatch(p *model.BlogPostPatch) {
	if p.Slug != nil {
		switch {
		case strings.TrimSpace(*p.Slug) == "" && p.Title != nil:
			slug := DeriveSlug(*p.Title)
			p.Slug = &slug
		case strings.TrimSpace(*p.Slug) != "" && !util.IsValidSlug(*p.Slug):
			slug := util.Slugify(*p.Slug)
			p.Slug = &slug
		}
	}
	if p.Content != nil && (p.ReadTime == nil || strings.TrimSpace(*p.ReadTime) == "") {
		rt := DeriveReadTime(*p.Content)
		p.ReadTime = &rt
	}
}
