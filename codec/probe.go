package codec

import (
	"bytes"
	"image"
	"image/color"
	"time"

	"github.com/nvr-ai/go-sampledata/images"
	"github.com/pkg/errors"
	"github.com/rwcarlsen/goexif/exif"
)

// Header describes an encoded image without decoding its pixels.
type Header struct {
	// Format is the sniffed container format.
	Format images.ImageFormat `json:"format" yaml:"format"`
	// Width of the image in pixels.
	Width int `json:"width" yaml:"width"`
	// Height of the image in pixels.
	Height int `json:"height" yaml:"height"`
	// ColorModel names the decoded pixel layout, one of "gray", "palette" or "color".
	ColorModel string `json:"color_model" yaml:"color_model"`
	// Exif holds camera metadata for JPEG files that carry it.
	Exif *ExifInfo `json:"exif,omitempty" yaml:"exif,omitempty"`
}

// ExifInfo is the subset of EXIF tags reported by Probe.
type ExifInfo struct {
	Orientation int       `json:"orientation" yaml:"orientation"`
	Make        string    `json:"make,omitempty" yaml:"make,omitempty"`
	Model       string    `json:"model,omitempty" yaml:"model,omitempty"`
	Taken       time.Time `json:"taken,omitempty" yaml:"taken,omitempty"`
}

// Probe reads the image header (and EXIF block for JPEG) of data.
//
// Arguments:
// - data: The encoded image.
//
// Returns:
// - The Header.
// - error if the format is unknown or the header is malformed.
//
// @example
//
//	hdr, err := codec.Probe(raw)
//	fmt.Printf("%s %dx%d\n", hdr.Format, hdr.Width, hdr.Height)
func Probe(data []byte) (*Header, error) {
	format, err := Sniff(data)
	if err != nil {
		return nil, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s header", format)
	}

	hdr := &Header{
		Format:     format,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ColorModel: colorModelName(cfg),
	}
	if format == images.FormatJPEG {
		hdr.Exif = readExif(data)
	}
	return hdr, nil
}

// readExif returns nil when the file has no usable EXIF block.
func readExif(data []byte) *ExifInfo {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	info := &ExifInfo{Orientation: 1}
	if tag, err := x.Get(exif.Orientation); err == nil {
		if v, err := tag.Int(0); err == nil {
			info.Orientation = v
		}
	}
	if tag, err := x.Get(exif.Make); err == nil {
		info.Make, _ = tag.StringVal()
	}
	if tag, err := x.Get(exif.Model); err == nil {
		info.Model, _ = tag.StringVal()
	}
	if taken, err := x.DateTime(); err == nil {
		info.Taken = taken
	}
	return info
}

func colorModelName(cfg image.Config) string {
	switch cfg.ColorModel {
	case color.GrayModel, color.Gray16Model:
		return "gray"
	}
	if _, ok := cfg.ColorModel.(color.Palette); ok {
		return "palette"
	}
	return "color"
}
