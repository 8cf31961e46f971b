// Package vips registers the "vips" decoder backend. It requires libvips
// through vipsgen (cgo).
package vips

import (
	"bytes"
	"image"
	"image/png"

	"github.com/cshum/vipsgen/vips"
	"github.com/nvr-ai/go-sampledata/codec"
	"github.com/nvr-ai/go-sampledata/images"
	"github.com/pkg/errors"
)

// Name is the registered backend name.
const Name = "vips"

func init() {
	codec.Register(Name, New)
}

// Decoder loads buffers with libvips and hands pixels over as lossless PNG.
type Decoder struct{}

// New returns the libvips backend.
func New() (codec.Decoder, error) {
	return &Decoder{}, nil
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
		images.FormatTIFF,
		images.FormatWebP,
	}
}

// Decode implements codec.Decoder. Grayscale is left to the caller.
func (d *Decoder) Decode(data []byte, _ codec.Options) (image.Image, error) {
	if _, err := codec.Check(d, data); err != nil {
		return nil, err
	}

	// Load the image from buffer.
	img, err := vips.NewImageFromBuffer(data, &vips.LoadOptions{
		Access: vips.AccessSequential,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load image")
	}
	defer img.Close()

	// Export to PNG buffer.
	return fromPNG(img.PngsaveBuffer(&vips.PngsaveBufferOptions{}))
}

// fromPNG decodes the PNG buffer exported by libvips, keeping the libvips error.
func fromPNG(encoded []byte, err error) (image.Image, error) {
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode decoded image")
	}
	if len(encoded) == 0 {
		return nil, errors.New("failed to encode decoded image: empty buffer")
	}

	decoded, err := png.Decode(bytes.NewReader(encoded))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode exported PNG")
	}
	return decoded, nil
}
