// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mapper

import "github.com/peculiardigitals/peculiar-go/internal/model"

// BlogPostFromRow maps a storage row to a BlogPost. PublishedAt is derived
// from the created_at timestamp (date portion) and read_time falls back to
// the default so rows written before the column existed still render.
func BlogPostFromRow(r Row) model.BlogPost {
	return model.BlogPost{
		ID:          r.str("id"),
		Title:       r.str("title"),
		Slug:        r.str("slug"),
		Excerpt:     r.str("excerpt"),
		Content:     r.str("content"),
		CoverImage:  r.str("cover_image"),
		Author:      r.str("author"),
		PublishedAt: r.dateOnly("created_at"),
		ReadTime:    r.strOr("read_time", model.DefaultReadTime),
		Tags:        r.list("tags"),
	}
}

// BlogPostToRow maps a patch to the columns the write should touch.
// published_at never appears here; it is derived from created_at on read.
func BlogPostToRow(p model.BlogPostPatch) Row {
	r := Row{}
	r.setStr("title", p.Title)
	r.setStr("slug", p.Slug)
	r.setStr("excerpt", p.Excerpt)
	r.setStr("content", p.Content)
	r.setStr("cover_image", p.CoverImage)
	r.setStr("author", p.Author)
	r.setStr("read_time", p.ReadTime)
	r.setList("tags", p.Tags)
	return r
}
