// Package imaging registers the "imaging" decoder backend, built on
// github.com/disintegration/imaging. It applies EXIF orientation while decoding.
package imaging

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nvr-ai/go-sampledata/codec"
	"github.com/nvr-ai/go-sampledata/images"
	"github.com/pkg/errors"
)

// Name is the registered backend name.
const Name = "imaging"

func init() {
	codec.Register(Name, New)
}

// Decoder decodes through imaging.Decode.
type Decoder struct {
	autoOrientation bool
}

// New returns the imaging backend with EXIF auto-orientation enabled.
func New() (codec.Decoder, error) {
	return &Decoder{autoOrientation: true}, nil
}

// Name implements codec.Decoder.
func (d *Decoder) Name() string {
	return Name
}

// Formats implements codec.Decoder.
func (d *Decoder) Formats() []images.ImageFormat {
	return []images.ImageFormat{
		images.FormatPNG,
		images.FormatJPEG,
		images.FormatGIF,
		images.FormatBMP,
		images.FormatTIFF,
	}
}

// Decode implements codec.Decoder. With Grayscale set the result is an NRGBA
// image whose three color channels are equal.
func (d *Decoder) Decode(data []byte, opts codec.Options) (image.Image, error) {
	if _, err := codec.Check(d, data); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(d.autoOrientation))
	if err != nil {
		return nil, errors.Wrap(err, "imaging decode failed")
	}
	if opts.Grayscale {
		return imaging.Grayscale(img), nil
	}
	return img, nil
}
