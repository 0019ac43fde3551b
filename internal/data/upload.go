// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package data

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/peculiardigitals/peculiar-go/internal/backend"
)

// Upload buckets, one per image-bearing collection.
const (
	BucketProjects = "projects"
	BucketProducts = "products"
	BucketBrands   = "brands"
)

// ValidBucket reports whether name is one of the known upload buckets.
func ValidBucket(name string) bool {
	switch name {
	case BucketProjects, BucketProducts, BucketBrands:
		return true
	}
	return false
}

// UploadImage normalizes an uploaded image and stores it under a
// collision-resistant name (random token, upload timestamp, extension from
// the re-encoded format). Returns the public URL. Unlike row writes this has
// no demo fallback: an unconfigured backend is an error, since there is
// nothing useful to pretend about a file that was never stored.
func (s *Service) UploadImage(ctx context.Context, bucket string, payload []byte) (string, error) {
	if !ValidBucket(bucket) {
		return "", fmt.Errorf("unknown upload bucket %q", bucket)
	}
	if !s.storage.Configured() {
		return "", backend.ErrNotConfigured
	}
	if !s.images.IsImage(payload) {
		return "", fmt.Errorf("payload is not a supported image")
	}

	img, err := s.images.Normalize(payload)
	if err != nil {
		return "", fmt.Errorf("processing image: %w", err)
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	name := fmt.Sprintf("%s_%d.%s", token, time.Now().UnixMilli(), img.Ext)

	url, err := s.storage.Upload(ctx, bucket, name, img.Data, img.MimeType)
	if err != nil {
		return "", err
	}
	return url, nil
}
