package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// MaxLogoDimension bounds stored company logos. Anything larger is
// downscaled before upload so profile pages never serve multi-megabyte
// originals.
const MaxLogoDimension = 512

func decodeImage(data []byte, ext string) (image.Image, error) {
	switch ext {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(data))
	case ".png":
		return png.Decode(bytes.NewReader(data))
	case ".gif":
		return gif.Decode(bytes.NewReader(data))
	case ".webp":
		return webp.Decode(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported image extension: %s", ext)
	}
}

// NormalizeLogo decodes a logo image, downscales it to fit within
// MaxLogoDimension while keeping aspect ratio, and re-encodes it as JPEG.
// Returns the processed bytes and the content type to store.
func NormalizeLogo(data []byte, ext string) ([]byte, string, error) {
	img, err := decodeImage(data, ext)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode logo: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, "", fmt.Errorf("invalid logo dimensions %dx%d", width, height)
	}

	if width > MaxLogoDimension || height > MaxLogoDimension {
		scale := float64(MaxLogoDimension) / float64(width)
		if height > width {
			scale = float64(MaxLogoDimension) / float64(height)
		}
		newWidth := int(float64(width) * scale)
		newHeight := int(float64(height) * scale)

		resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)
		img = resized
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, "", fmt.Errorf("failed to encode logo: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}
