// Package opencv registers the "opencv" decoder backend. It requires OpenCV
// through gocv (cgo).
package opencv

import (
	"image"

	"github.com/nvr-ai/go-sampledata/codec"
	"github.com/nvr-ai/go-sampledata/images"
	"github.com/nvr-ai/go-sampledata/logger"
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Name is the registered backend name.
const Name = "opencv"

func init() {
	codec.Register(Name, New)
}

// Decoder decodes with gocv.IMDecode.
type Decoder struct{}

// New returns the OpenCV backend.
func New() (codec.Decoder, error) {
	logger.Debug.Printf("Using OpenCV %s", gocv.OpenCVVersion())
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
		images.FormatBMP,
		images.FormatTIFF,
		images.FormatWebP,
	}
}

// Decode implements codec.Decoder. Color images are decoded as 8-bit BGR, so
// alpha is dropped; Grayscale decodes straight to a single channel.
//
// Arguments:
// - data: The encoded image.
// - opts: Decode options.
//
// Returns:
// - *image.Gray for grayscale decodes, otherwise *image.RGBA.
// - error if OpenCV cannot decode the buffer.
func (d *Decoder) Decode(data []byte, opts codec.Options) (image.Image, error) {
	if _, err := codec.Check(d, data); err != nil {
		return nil, err
	}

	flags := gocv.IMReadColor
	if opts.Grayscale {
		flags = gocv.IMReadGrayScale
	}

	mat, err := gocv.IMDecode(data, flags)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}
	defer mat.Close()
	if mat.Empty() {
		return nil, errors.New("failed to decode image: empty result")
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert decoded mat")
	}
	return img, nil
}
