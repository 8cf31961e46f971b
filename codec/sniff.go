package codec

import (
	"github.com/nvr-ai/go-sampledata/images"
	"github.com/pkg/errors"
	filetype "gopkg.in/h2non/filetype.v1"
	"gopkg.in/h2non/filetype.v1/matchers"
)

// Sniff identifies the image format from the leading magic bytes.
//
// Arguments:
// - data: The encoded bytes (only the header is inspected).
//
// Returns:
// - The detected format.
// - error wrapping ErrEmpty for no data, or ErrUnsupportedFormat when the
// bytes are not a known image format.
func Sniff(data []byte) (images.ImageFormat, error) {
	if len(data) == 0 {
		return images.FormatUnknown, ErrEmpty
	}

	t, _ := filetype.Match(data)
	switch t {
	case matchers.TypePng:
		return images.FormatPNG, nil
	case matchers.TypeJpeg:
		return images.FormatJPEG, nil
	case matchers.TypeWebp:
		return images.FormatWebP, nil
	case matchers.TypeGif:
		return images.FormatGIF, nil
	case matchers.TypeBmp:
		return images.FormatBMP, nil
	case matchers.TypeTiff:
		return images.FormatTIFF, nil
	default:
		return images.FormatUnknown, errors.Wrapf(ErrUnsupportedFormat, "unrecognized content (%s)", t.Extension)
	}
}
