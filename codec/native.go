package codec

import (
	"bytes"
	"image"

	// Standard library codecs.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	// Extended codecs.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/nvr-ai/go-sampledata/images"
	"github.com/pkg/errors"
)

func init() {
	Register(DefaultBackend, NewNative)
}

// Native decodes with the pure Go codecs registered in package image.
type Native struct{}

// NewNative returns the pure Go backend. It never fails.
func NewNative() (Decoder, error) {
	return &Native{}, nil
}

// Name implements Decoder.
func (n *Native) Name() string {
	return DefaultBackend
}

// Formats implements Decoder.
func (n *Native) Formats() []images.ImageFormat {
	return []images.ImageFormat{
		images.FormatPNG,
		images.FormatJPEG,
		images.FormatGIF,
		images.FormatBMP,
		images.FormatTIFF,
		images.FormatWebP,
	}
}

// Decode implements Decoder. Grayscale is left to the caller since the
// standard codecs have no single channel decode path.
func (n *Native) Decode(data []byte, _ Options) (image.Image, error) {
	format, err := Check(n, data)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", format)
	}
	return img, nil
}
