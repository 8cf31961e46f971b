package images

import (
	"fmt"
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"gorgonia.org/tensor"
)

// ITU-R BT.709 luma coefficients.
const (
	redWeight   float32 = 0.2126
	greenWeight float32 = 0.7152
	blueWeight  float32 = 0.0722
)

// FromImage copies a decoded image into an Image array.
//
// Gray sources (*image.Gray, *image.Gray16) produce [H, W]. Everything else
// produces [H, W, 3], or [H, W, 4] when the source has any non-opaque pixel.
// Color samples are non-premultiplied. 16-bit sources keep tensor.Uint16 samples.
//
// Arguments:
// - src: The decoded image.
// - grayscale: Collapse color channels into a single luma channel, so the result
// is always [H, W].
//
// Returns:
// - The Image.
// - error if src is nil or empty.
//
// @example
//
//	decoded, _, _ := image.Decode(f)
//	img, err := images.FromImage(decoded, false)
func FromImage(src image.Image, grayscale bool) (*Image, error) {
	if src == nil {
		return nil, fmt.Errorf("image is nil")
	}
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", w, h)
	}

	switch s := src.(type) {
	case *image.Gray:
		pix := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			off := s.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pix[y*w:(y+1)*w], s.Pix[off:off+w])
		}
		return New(pix, h, w)
	case *image.Gray16:
		pix := make([]uint16, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				pix[y*w+x] = s.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y
			}
		}
		return New(pix, h, w)
	}

	channels := 3
	if !isOpaque(src) {
		channels = 4
	}

	var (
		img *Image
		err error
	)
	if is16Bit(src) {
		pix := make([]uint16, w*h*channels)
		Parallel(h, func(start, end int) {
			for y := start; y < end; y++ {
				for x := 0; x < w; x++ {
					c := color.NRGBA64Model.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA64)
					p := (y*w + x) * channels
					pix[p], pix[p+1], pix[p+2] = c.R, c.G, c.B
					if channels == 4 {
						pix[p+3] = c.A
					}
				}
			}
		})
		img, err = New(pix, h, w, channels)
	} else {
		pix := make([]uint8, w*h*channels)
		Parallel(h, func(start, end int) {
			for y := start; y < end; y++ {
				for x := 0; x < w; x++ {
					c := color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
					p := (y*w + x) * channels
					pix[p], pix[p+1], pix[p+2] = c.R, c.G, c.B
					if channels == 4 {
						pix[p+3] = c.A
					}
				}
			}
		})
		img, err = New(pix, h, w, channels)
	}
	if err != nil {
		return nil, err
	}

	if grayscale {
		return Grayscale(img)
	}
	return img, nil
}

// Grayscale collapses the channel axis of a color image into luma. Images that
// are already 2-D are returned as a copy. An alpha channel is ignored.
//
// Arguments:
// - img: A [H, W] or [H, W, C] image with C >= 3.
//
// Returns:
// - A [H, W] image with the same dtype.
// - error if the image has an unsupported channel count or dtype.
func Grayscale(img *Image) (*Image, error) {
	h, w, c := img.Height(), img.Width(), img.Channels()

	switch img.Dtype() {
	case tensor.Uint8:
		src := img.Uint8s()
		if c == 1 {
			return New(append([]uint8(nil), src...), h, w)
		}
		if c < 3 {
			return nil, fmt.Errorf("cannot collapse %d channels", c)
		}
		dst := make([]uint8, h*w)
		Parallel(h, func(start, end int) {
			for p := start * w; p < end*w; p++ {
				dst[p] = uint8(luma(float32(src[p*c]), float32(src[p*c+1]), float32(src[p*c+2]), 0xff))
			}
		})
		return New(dst, h, w)

	case tensor.Uint16:
		src := img.Uint16s()
		if c == 1 {
			return New(append([]uint16(nil), src...), h, w)
		}
		if c < 3 {
			return nil, fmt.Errorf("cannot collapse %d channels", c)
		}
		dst := make([]uint16, h*w)
		Parallel(h, func(start, end int) {
			for p := start * w; p < end*w; p++ {
				dst[p] = uint16(luma(float32(src[p*c]), float32(src[p*c+1]), float32(src[p*c+2]), 0xffff))
			}
		})
		return New(dst, h, w)

	case tensor.Bool:
		if c != 1 {
			return nil, fmt.Errorf("cannot collapse %d channel bool image", c)
		}
		return New(append([]bool(nil), img.Bools()...), h, w)
	}

	return nil, fmt.Errorf("unsupported dtype %s", img.Dtype())
}

// ToBool thresholds an image at the midpoint of its dtype range: samples above
// 127 (uint8) or 32767 (uint16) become true. Bool images are copied.
//
// Arguments:
// - img: The image to convert.
//
// Returns:
// - A tensor.Bool image with the same shape.
// - lossy: true if the input held values other than the dtype minimum and
// maximum, meaning information was discarded.
//
// @example
//
//	mask, lossy := images.ToBool(gray)
//	if lossy {
//	    logger.Warn.Printf("precision loss converting %s to bool", gray)
//	}
func ToBool(img *Image) (*Image, bool) {
	shape := img.Shape()
	var (
		dst   []bool
		lossy bool
	)

	switch img.Dtype() {
	case tensor.Uint8:
		src := img.Uint8s()
		dst = make([]bool, len(src))
		for i, v := range src {
			dst[i] = v > 0x7f
			if v != 0 && v != 0xff {
				lossy = true
			}
		}
	case tensor.Uint16:
		src := img.Uint16s()
		dst = make([]bool, len(src))
		for i, v := range src {
			dst[i] = v > 0x7fff
			if v != 0 && v != 0xffff {
				lossy = true
			}
		}
	default:
		dst = append([]bool(nil), img.Bools()...)
	}

	return &Image{dense: tensor.New(tensor.WithShape(shape...), tensor.WithBacking(dst))}, lossy
}

// luma returns the rounded BT.709 luma of an RGB triple clamped to max.
func luma(r, g, b, max float32) float32 {
	l := math32.Floor(redWeight*r + greenWeight*g + blueWeight*b + 0.5)
	if l > max {
		return max
	}
	return l
}

// isOpaque reports whether every pixel of src is fully opaque.
func isOpaque(src image.Image) bool {
	if o, ok := src.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	bounds := src.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := src.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

// is16Bit reports whether src stores more than 8 bits per sample.
func is16Bit(src image.Image) bool {
	switch src.(type) {
	case *image.RGBA64, *image.NRGBA64:
		return true
	}
	return false
}
