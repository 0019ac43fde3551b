// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package imaging normalizes uploaded images in memory before they are sent
// to the hosted object store: EXIF orientation is applied, oversized images
// are bounded, and the result is re-encoded without metadata.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // WebP decoder
)

// MaxDimension bounds the longest side of a stored image. Screenshots and
// cover images are display assets; anything larger is wasted storage.
const MaxDimension = 1920

// JPEGQuality is the encode quality for lossy output.
const JPEGQuality = 90

// Result is a normalized image ready for upload.
type Result struct {
	Data     []byte
	MimeType string
	Ext      string // without leading dot, e.g. "jpg"
	Width    int
	Height   int
}

// Processor normalizes image uploads. It is stateless and safe for
// concurrent use.
type Processor struct {
	maxDimension int
}

// NewProcessor creates an image processor with the default size bound.
func NewProcessor() *Processor {
	return &Processor{maxDimension: MaxDimension}
}

// Normalize decodes an uploaded image, applies its EXIF orientation, bounds
// its dimensions, and re-encodes it. WebP input is re-encoded as JPEG since
// pure Go has no WebP encoder.
func (p *Processor) Normalize(data []byte) (*Result, error) {
	format := detectFormat(data)
	if format == "" {
		return nil, fmt.Errorf("unsupported image format")
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	// Honor EXIF orientation before the metadata is discarded by re-encoding
	img = applyOrientation(img, readExifOrientation(bytes.NewReader(data)))

	bounds := img.Bounds()
	if bounds.Dx() > p.maxDimension || bounds.Dy() > p.maxDimension {
		img = imaging.Fit(img, p.maxDimension, p.maxDimension, imaging.Lanczos)
		bounds = img.Bounds()
	}

	if format == "webp" {
		format = "jpeg"
	}

	encoded, err := encodeImage(img, format, JPEGQuality)
	if err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}

	return &Result{
		Data:     encoded,
		MimeType: formatToMimeType(format),
		Ext:      formatToExt(format),
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
	}, nil
}

// IsImage reports whether data looks like a processable image. It is the
// cheap pre-check the upload path runs before full normalization.
func (p *Processor) IsImage(data []byte) bool {
	return detectFormat(data) != ""
}

// readExifOrientation reads the EXIF orientation tag from image data.
// Returns 1 (normal) if orientation cannot be determined.
func readExifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}

	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}

	orientation, err := tag.Int(0)
	if err != nil {
		return 1
	}

	return orientation
}

// applyOrientation applies EXIF orientation transformation to an image.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.FlipH(imaging.Rotate270(img))
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.FlipH(imaging.Rotate90(img))
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

// encodeImage encodes an image to bytes with the specified format and quality.
func encodeImage(img image.Image, format string, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case "jpeg", "jpg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, err
		}
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
	case "gif":
		if err := gif.Encode(&buf, img, nil); err != nil {
			return nil, err
		}
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// detectFormat detects the image format from raw bytes. Returns "" for
// anything that is not a supported image.
func detectFormat(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/jpeg":
		return "jpeg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	}
	return ""
}

// formatToMimeType maps an encode format to its MIME type.
func formatToMimeType(format string) string {
	switch format {
	case "jpeg", "jpg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	}
	return "application/octet-stream"
}

// formatToExt maps an encode format to a filename extension.
func formatToExt(format string) string {
	switch format {
	case "jpeg", "jpg":
		return "jpg"
	case "png":
		return "png"
	case "gif":
		return "gif"
	}
	return "bin"
}
