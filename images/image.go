// Package images - In-memory image arrays and the conversions between them and
// decoded image.Image values.
package images

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"reflect"
	"sort"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Image is a decoded raster stored as a dense array of samples.
//
// Single channel rasters have shape [H, W]. Color rasters have shape [H, W, C]
// with the channel axis last (HWC ordering). Samples are tensor.Uint8 for 8-bit
// sources, tensor.Uint16 for 16-bit sources and tensor.Bool after ToBool.
type Image struct {
	dense *tensor.Dense
}

// New wraps a flat sample slice in an Image of the given shape.
//
// Arguments:
// - backing: One of []uint8, []uint16 or []bool, laid out row-major in HWC order.
// - shape: [H, W] or [H, W, C].
//
// Returns:
// - The Image, which takes ownership of backing.
// - error if the shape is invalid or does not match len(backing).
//
// @example
//
//	img, err := images.New(make([]uint8, 4*3), 4, 3)
func New(backing interface{}, shape ...int) (*Image, error) {
	if len(shape) < 2 || len(shape) > 3 {
		return nil, fmt.Errorf("invalid image shape %v: want [H W] or [H W C]", shape)
	}
	size := 1
	for _, s := range shape {
		if s <= 0 {
			return nil, fmt.Errorf("invalid image shape %v: dimensions must be positive", shape)
		}
		size *= s
	}

	var n int
	switch b := backing.(type) {
	case []uint8:
		n = len(b)
	case []uint16:
		n = len(b)
	case []bool:
		n = len(b)
	default:
		return nil, errors.Errorf("unsupported sample type %T", backing)
	}
	if n != size {
		return nil, fmt.Errorf("backing holds %d samples, shape %v needs %d", n, shape, size)
	}

	return &Image{
		dense: tensor.New(tensor.WithShape(shape...), tensor.WithBacking(backing)),
	}, nil
}

// Tensor exposes the underlying dense array.
func (i *Image) Tensor() *tensor.Dense {
	return i.dense
}

// Dtype is the sample type.
func (i *Image) Dtype() tensor.Dtype {
	return i.dense.Dtype()
}

// Shape returns a copy of the array shape.
func (i *Image) Shape() []int {
	return append([]int(nil), i.dense.Shape()...)
}

// Dims is 2 for single channel images and 3 for images with a channel axis.
func (i *Image) Dims() int {
	return i.dense.Dims()
}

// Height is the number of rows.
func (i *Image) Height() int {
	return i.dense.Shape()[0]
}

// Width is the number of columns.
func (i *Image) Width() int {
	return i.dense.Shape()[1]
}

// Channels is 1 for 2-D images, otherwise the size of the trailing axis.
func (i *Image) Channels() int {
	if i.dense.Dims() == 2 {
		return 1
	}
	return i.dense.Shape()[2]
}

// Uint8s returns the backing samples, or nil if the image is not tensor.Uint8.
// The slice is shared with the image.
func (i *Image) Uint8s() []uint8 {
	data, _ := i.dense.Data().([]uint8)
	return data
}

// Uint16s returns the backing samples, or nil if the image is not tensor.Uint16.
func (i *Image) Uint16s() []uint16 {
	data, _ := i.dense.Data().([]uint16)
	return data
}

// Bools returns the backing samples, or nil if the image is not tensor.Bool.
func (i *Image) Bools() []bool {
	data, _ := i.dense.Data().([]bool)
	return data
}

// At returns the sample at (y, x) or (y, x, c).
func (i *Image) At(coords ...int) (interface{}, error) {
	return i.dense.At(coords...)
}

// Equal reports whether both images have the same dtype, shape and samples.
func (i *Image) Equal(o *Image) bool {
	if i == nil || o == nil {
		return i == o
	}
	if i.Dtype() != o.Dtype() || !reflect.DeepEqual(i.Shape(), o.Shape()) {
		return false
	}
	switch i.Dtype() {
	case tensor.Uint8:
		return bytes.Equal(i.Uint8s(), o.Uint8s())
	default:
		return reflect.DeepEqual(i.dense.Data(), o.dense.Data())
	}
}

// Unique returns the distinct sample values in ascending order. Bool samples
// are reported as 0 and 1.
func (i *Image) Unique() []float64 {
	seen := make(map[float64]struct{})
	switch i.Dtype() {
	case tensor.Uint8:
		var hist [256]bool
		for _, v := range i.Uint8s() {
			hist[v] = true
		}
		for v, ok := range hist {
			if ok {
				seen[float64(v)] = struct{}{}
			}
		}
	case tensor.Uint16:
		for _, v := range i.Uint16s() {
			seen[float64(v)] = struct{}{}
		}
	case tensor.Bool:
		for _, v := range i.Bools() {
			if v {
				seen[1] = struct{}{}
			} else {
				seen[0] = struct{}{}
			}
		}
	}

	values := make([]float64, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Float64s(values)
	return values
}

// String summarises the image as "uint8[512 512 3]".
func (i *Image) String() string {
	return fmt.Sprintf("%s%v", i.Dtype(), i.Shape())
}

// ToImage converts the array back into an image.Image suitable for encoding.
//
// Bool images become *image.Gray with 0 and 255, 2-D images become *image.Gray
// or *image.Gray16, three channel images become opaque *image.NRGBA or
// *image.NRGBA64 and four channel images keep their alpha.
//
// Returns:
// - The image.Image.
// - error if the channel count cannot be represented.
func (i *Image) ToImage() (image.Image, error) {
	h, w, c := i.Height(), i.Width(), i.Channels()
	rect := image.Rect(0, 0, w, h)

	switch i.Dtype() {
	case tensor.Bool:
		if c != 1 {
			return nil, fmt.Errorf("cannot convert %d channel bool image", c)
		}
		dst := image.NewGray(rect)
		for idx, v := range i.Bools() {
			if v {
				dst.Pix[idx] = 0xff
			}
		}
		return dst, nil

	case tensor.Uint8:
		pix := i.Uint8s()
		switch c {
		case 1:
			dst := image.NewGray(rect)
			copy(dst.Pix, pix)
			return dst, nil
		case 3, 4:
			dst := image.NewNRGBA(rect)
			for p := 0; p < h*w; p++ {
				dst.Pix[p*4+0] = pix[p*c+0]
				dst.Pix[p*4+1] = pix[p*c+1]
				dst.Pix[p*4+2] = pix[p*c+2]
				dst.Pix[p*4+3] = 0xff
				if c == 4 {
					dst.Pix[p*4+3] = pix[p*c+3]
				}
			}
			return dst, nil
		}

	case tensor.Uint16:
		pix := i.Uint16s()
		switch c {
		case 1:
			dst := image.NewGray16(rect)
			for p, v := range pix {
				dst.SetGray16(p%w, p/w, color.Gray16{Y: v})
			}
			return dst, nil
		case 3, 4:
			dst := image.NewNRGBA64(rect)
			for p := 0; p < h*w; p++ {
				px := color.NRGBA64{R: pix[p*c+0], G: pix[p*c+1], B: pix[p*c+2], A: 0xffff}
				if c == 4 {
					px.A = pix[p*c+3]
				}
				dst.SetNRGBA64(p%w, p/w, px)
			}
			return dst, nil
		}
	}

	return nil, fmt.Errorf("cannot convert %s image to image.Image", i)
}
