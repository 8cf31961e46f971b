// Package libjpeg registers the "libjpeg" decoder backend: JPEG goes through
// libjpeg(-turbo) via cgo, other formats through the standard library.
package libjpeg

import (
	"bytes"
	"image"

	"github.com/nvr-ai/go-sampledata/codec"
	"github.com/nvr-ai/go-sampledata/images"
	"github.com/pixiv/go-libjpeg/jpeg"
	"github.com/pkg/errors"
)

// Name is the registered backend name.
const Name = "libjpeg"

var options = &jpeg.DecoderOptions{}

func init() {
	codec.Register(Name, New)
}

// Decoder prefers libjpeg for JPEG input.
type Decoder struct{}

// New returns the libjpeg backend.
func New() (codec.Decoder, error) {
	return &Decoder{}, nil
}

// Name implements codec.Decoder.
func (d *Decoder) Name() string {
	return Name
}

// Formats implements codec.Decoder.
func (d *Decoder) Formats() []images.ImageFormat {
	return []images.ImageFormat{images.FormatJPEG, images.FormatPNG, images.FormatGIF}
}

// Decode implements codec.Decoder. Grayscale is left to the caller.
func (d *Decoder) Decode(data []byte, _ codec.Options) (image.Image, error) {
	format, err := codec.Check(d, data)
	if err != nil {
		return nil, err
	}

	if format == images.FormatJPEG {
		img, err := jpeg.Decode(bytes.NewReader(data), options)
		if err != nil {
			return nil, errors.Wrap(err, "libjpeg decode failed")
		}
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", format)
	}
	return img, nil
}
