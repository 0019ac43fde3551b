// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func TestNormalize_PNGKeepsFormat(t *testing.T) {
	p := NewProcessor()

	res, err := p.Normalize(encodePNG(t, 100, 60))
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	if res.MimeType != "image/png" {
		t.Errorf("MimeType = %q, want image/png", res.MimeType)
	}
	if res.Ext != "png" {
		t.Errorf("Ext = %q, want png", res.Ext)
	}
	if res.Width != 100 || res.Height != 60 {
		t.Errorf("dimensions = %dx%d, want 100x60", res.Width, res.Height)
	}
}

func TestNormalize_BoundsOversizedImages(t *testing.T) {
	p := NewProcessor()

	res, err := p.Normalize(encodeJPEG(t, 4000, 2000))
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	if res.Width > MaxDimension || res.Height > MaxDimension {
		t.Errorf("dimensions = %dx%d, want both <= %d", res.Width, res.Height, MaxDimension)
	}
	// Aspect ratio is preserved by Fit
	if res.Width != MaxDimension {
		t.Errorf("Width = %d, want %d (longest side bound)", res.Width, MaxDimension)
	}
}

func TestNormalize_RejectsNonImage(t *testing.T) {
	p := NewProcessor()

	if _, err := p.Normalize([]byte("definitely not an image")); err == nil {
		t.Error("Normalize() expected error for non-image data")
	}
}

func TestIsImage(t *testing.T) {
	p := NewProcessor()

	if !p.IsImage(encodePNG(t, 4, 4)) {
		t.Error("IsImage() = false for PNG data")
	}
	if p.IsImage([]byte("plain text")) {
		t.Error("IsImage() = true for text data")
	}
}

