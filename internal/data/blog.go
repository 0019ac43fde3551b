// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package data

import (
	"context"
	"regexp"
	"strings"

	"github.com/peculiardigitals/peculiar-go/internal/backend"
	"github.com/peculiardigitals/peculiar-go/internal/mapper"
	"github.com/peculiardigitals/peculiar-go/internal/model"
)

// uuidRe recognizes canonical UUIDs so BlogPostByID can tell an id lookup
// from a slug lookup.
var uuidRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// BlogPosts lists articles, newest first. Demo mode returns seeds.
func (s *Service) BlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	if !s.client.Configured() {
		return SeedBlogPosts(), nil
	}
	rows, err := s.selectAll(ctx, tableBlogPosts, orderCreatedAt, true)
	if err != nil {
		return nil, err
	}
	out := make([]model.BlogPost, len(rows))
	for i, r := range rows {
		out[i] = mapper.BlogPostFromRow(r)
	}
	return out, nil
}

// BlogPostByID resolves an article by UUID or slug. The ref is normalized
// (trimmed, lowercased) before UUID detection. If the filtered lookup finds
// nothing the whole table is scanned and compared case-insensitively, which
// rescues links whose stored slug carries stray whitespace or capitals.
// A missing post is (nil, nil).
func (s *Service) BlogPostByID(ctx context.Context, ref string) (*model.BlogPost, error) {
	clean := strings.ToLower(strings.TrimSpace(ref))

	if !s.client.Configured() {
		for _, p := range SeedBlogPosts() {
			if p.ID == clean || strings.ToLower(p.Slug) == clean {
				return &p, nil
			}
		}
		return nil, nil
	}

	filter := map[string]string{"slug": strings.TrimSpace(ref)}
	if uuidRe.MatchString(clean) {
		filter = map[string]string{"id": clean}
	}

	rows, err := s.client.Select(ctx, tableBlogPosts, backend.SelectOptions{Filters: filter, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		p := mapper.BlogPostFromRow(mapper.Row(rows[0]))
		return &p, nil
	}

	// Fallback: scan everything and match in memory.
	all, err := s.client.Select(ctx, tableBlogPosts, backend.SelectOptions{})
	if err != nil {
		return nil, err
	}
	for _, raw := range all {
		row := mapper.Row(raw)
		id, _ := row["id"].(string)
		slug, _ := row["slug"].(string)
		if id == clean || strings.ToLower(strings.TrimSpace(slug)) == clean {
			p := mapper.BlogPostFromRow(row)
			return &p, nil
		}
	}
	return nil, nil
}

// AddBlogPost inserts a new article, deriving slug and read time first.
func (s *Service) AddBlogPost(ctx context.Context, p model.BlogPost) (bool, error) {
	if s.demoWrite("add blog post") {
		return false, nil
	}
	normalizeBlogPost(&p)
	if _, err := s.client.Insert(ctx, tableBlogPosts, mapper.BlogPostToRow(p.Patch())); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateBlogPost patches an existing article. Derivation applies to fields
// present in the patch: a blanked slug is regenerated from the patched
// title, and patched content refreshes the read time.
func (s *Service) UpdateBlogPost(ctx context.Context, id string, patch model.BlogPostPatch) (bool, error) {
	if s.demoWrite("update blog post") {
		return false, nil
	}
	normalizeBlogPatch(&patch)
	if err := s.client.Update(ctx, tableBlogPosts, id, mapper.BlogPostToRow(patch)); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteBlogPost removes an article.
func (s *Service) DeleteBlogPost(ctx context.Context, id string) (bool, error) {
	if s.demoWrite("delete blog post") {
		return false, nil
	}
	if err := s.client.Delete(ctx, tableBlogPosts, id); err != nil {
		return false, err
	}
	return true, nil
}
