package images

import (
	"fmt"

	"github.com/nfnt/resize"
	"gorgonia.org/tensor"
)

// Thumbnail downscales an image to fit within maxWidth x maxHeight while
// preserving its aspect ratio. Images that already fit are returned unchanged.
// Bool images are resampled as gray and thresholded again.
//
// Arguments:
// - img: The image to shrink.
// - maxWidth: The maximum width in pixels.
// - maxHeight: The maximum height in pixels.
//
// Returns:
// - The resized image with the same dtype and channel count.
// - error if the bounds are invalid or the image cannot be converted.
//
// @example
// thumb, err := Thumbnail(img, 128, 128)
func Thumbnail(img *Image, maxWidth, maxHeight int) (*Image, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("invalid dimensions: width=%d, height=%d", maxWidth, maxHeight)
	}
	if img.Width() <= maxWidth && img.Height() <= maxHeight {
		return img, nil
	}

	src, err := img.ToImage()
	if err != nil {
		return nil, err
	}

	// Resize the image using Lanczos3 algorithm.
	scaled := resize.Thumbnail(uint(maxWidth), uint(maxHeight), src, resize.Lanczos3)

	out, err := FromImage(scaled, img.Dims() == 2)
	if err != nil {
		return nil, err
	}
	if img.Dtype() == tensor.Bool {
		out, _ = ToBool(out)
	}
	return out, nil
}
