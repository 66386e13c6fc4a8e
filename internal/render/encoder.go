package render

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/vincent-petithory/dataurl"
)

// Encoder turns a painted surface into an embeddable image URI. It is the
// one platform-specific step of the rasterization path and is injected so
// tests can supply a fake.
type Encoder interface {
	Encode(img image.Image) (string, error)
	MediaType() string
}

// ImageFormat selects the encoded bitmap format.
type ImageFormat string

const (
	FormatPNG  ImageFormat = "png"
	FormatJPEG ImageFormat = "jpeg"
)

// NewEncoder returns the standard encoder for format. Unknown formats get
// PNG.
func NewEncoder(format ImageFormat, quality int) Encoder {
	if format == FormatJPEG {
		if quality <= 0 || quality > 100 {
			quality = 95
		}
		return jpegEncoder{quality: quality}
	}
	return pngEncoder{}
}

type pngEncoder struct{}

func (pngEncoder) Encode(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return dataurl.New(buf.Bytes(), "image/png").String(), nil
}

func (pngEncoder) MediaType() string { return "image/png" }

type jpegEncoder struct {
	quality int
}

func (e jpegEncoder) Encode(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: e.quality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return dataurl.New(buf.Bytes(), "image/jpeg").String(), nil
}

func (e jpegEncoder) MediaType() string { return "image/jpeg" }
