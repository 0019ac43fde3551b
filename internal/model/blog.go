// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// DefaultReadTime is used when a post has neither an explicit read time nor
// content to derive one from.
const DefaultReadTime = "5 min read"

// BlogPost represents a published article. PublishedAt is derived read-only
// from the storage creation timestamp (date portion only) and is never
// written back.
type BlogPost struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	CoverImage  string   `json:"coverImage"`
	Author      string   `json:"author"`
	PublishedAt string   `json:"publishedAt"`
	ReadTime    string   `json:"readTime"`
	Tags        []string `json:"tags"`
}

// BlogPostPatch describes a partial write. PublishedAt is absent on purpose.
type BlogPostPatch struct {
	Title      *string
	Slug       *string
	Excerpt    *string
	Content    *string
	CoverImage *string
	Author     *string
	ReadTime   *string
	Tags       *[]string
}

// Patch returns a full patch touching every writable column.
func (b BlogPost) Patch() BlogPostPatch {
	return BlogPostPatch{
		Title:      &b.Title,
		Slug:       &b.Slug,
		Excerpt:    &b.Excerpt,
		Content:    &b.Content,
		CoverImage: &b.CoverImage,
		Author:     &b.Author,
		ReadTime:   &b.ReadTime,
		Tags:       &b.Tags,
	}
}
