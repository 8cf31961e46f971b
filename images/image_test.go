package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"
)

func getTestImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: 200, A: 255})
		}
	}
	return img
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		backing interface{}
		shape   []int
		wantErr bool
	}{
		{name: "gray", backing: make([]uint8, 6), shape: []int{2, 3}},
		{name: "color", backing: make([]uint8, 18), shape: []int{2, 3, 3}},
		{name: "uint16", backing: make([]uint16, 6), shape: []int{3, 2}},
		{name: "bool", backing: make([]bool, 4), shape: []int{2, 2}},
		{name: "size mismatch", backing: make([]uint8, 5), shape: []int{2, 3}, wantErr: true},
		{name: "1-D", backing: make([]uint8, 5), shape: []int{5}, wantErr: true},
		{name: "zero dimension", backing: []uint8{}, shape: []int{0, 3}, wantErr: true},
		{name: "unsupported type", backing: make([]float64, 4), shape: []int{2, 2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := New(tt.backing, tt.shape...)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, img)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.shape, img.Shape())
			assert.Equal(t, tt.shape[0], img.Height())
			assert.Equal(t, tt.shape[1], img.Width())
		})
	}
}

func TestFromImage_Gray(t *testing.T) {
	a := assert.New(t)

	src := image.NewGray(image.Rect(0, 0, 4, 3))
	src.SetGray(1, 2, color.Gray{Y: 77})

	img, err := FromImage(src, false)
	require.NoError(t, err)

	a.Equal([]int{3, 4}, img.Shape())
	a.Equal(1, img.Channels())
	a.Equal(tensor.Uint8, img.Dtype())
	v, err := img.At(2, 1)
	require.NoError(t, err)
	a.Equal(uint8(77), v)
}

func TestFromImage_SubImageOffset(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	src.SetGray(2, 2, color.Gray{Y: 9})
	sub := src.SubImage(image.Rect(2, 2, 4, 4))

	img, err := FromImage(sub, false)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 2}, img.Shape())
	assert.Equal(t, uint8(9), img.Uint8s()[0])
}

func TestFromImage_Color(t *testing.T) {
	a := assert.New(t)
	src := getTestImage(5, 4)

	img, err := FromImage(src, false)
	require.NoError(t, err)
	a.Equal([]int{4, 5, 3}, img.Shape())

	r, _ := img.At(1, 2, 0)
	g, _ := img.At(1, 2, 1)
	b, _ := img.At(1, 2, 2)
	a.Equal(uint8(20), r)
	a.Equal(uint8(10), g)
	a.Equal(uint8(200), b)

	src.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 128})
	withAlpha, err := FromImage(src, false)
	require.NoError(t, err)
	a.Equal([]int{4, 5, 4}, withAlpha.Shape())
	alpha, _ := withAlpha.At(0, 0, 3)
	a.Equal(uint8(128), alpha)
}

func TestFromImage_GrayscaleDropsChannelAxis(t *testing.T) {
	a := assert.New(t)
	src := getTestImage(6, 4)

	color3, err := FromImage(src, false)
	require.NoError(t, err)
	gray, err := FromImage(src, true)
	require.NoError(t, err)

	a.Equal(color3.Shape()[:2], gray.Shape())
	a.Equal(2, gray.Dims())
	a.Equal(color3.Dtype(), gray.Dtype())

	// 0.2126*30 + 0.7152*20 + 0.0722*200 = 35.12
	v, _ := gray.At(2, 3)
	a.Equal(uint8(35), v)
}

func TestFromImage_16Bit(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 2, 2))
	src.SetGray16(1, 1, color.Gray16{Y: 40000})

	img, err := FromImage(src, false)
	require.NoError(t, err)
	assert.Equal(t, tensor.Uint16, img.Dtype())
	assert.Equal(t, uint16(40000), img.Uint16s()[3])

	rgb := image.NewNRGBA64(image.Rect(0, 0, 2, 1))
	rgb.SetNRGBA64(0, 0, color.NRGBA64{R: 65535, G: 65535, B: 65535, A: 65535})
	rgb.SetNRGBA64(1, 0, color.NRGBA64{A: 65535})
	img, err = FromImage(rgb, true)
	require.NoError(t, err)
	assert.Equal(t, []uint16{65535, 0}, img.Uint16s())
}

func TestFromImage_Invalid(t *testing.T) {
	_, err := FromImage(nil, false)
	assert.Error(t, err)

	_, err = FromImage(image.NewGray(image.Rect(0, 0, 0, 0)), false)
	assert.Error(t, err)
}

func TestToBool(t *testing.T) {
	a := assert.New(t)

	binary, _ := New([]uint8{0, 255, 255, 0}, 2, 2)
	mask, lossy := ToBool(binary)
	a.False(lossy)
	a.Equal(tensor.Bool, mask.Dtype())
	a.Equal([]bool{false, true, true, false}, mask.Bools())

	graded, _ := New([]uint8{0, 127, 128, 255}, 2, 2)
	mask, lossy = ToBool(graded)
	a.True(lossy)
	a.Equal([]bool{false, false, true, true}, mask.Bools())
	a.Equal([]float64{0, 1}, mask.Unique())

	wide, _ := New([]uint16{32767, 32768}, 1, 2)
	mask, lossy = ToBool(wide)
	a.True(lossy)
	a.Equal([]bool{false, true}, mask.Bools())

	again, lossy := ToBool(mask)
	a.False(lossy)
	a.True(again.Equal(mask))
}

func TestImage_ToImageRoundTrip(t *testing.T) {
	src := getTestImage(7, 3)
	img, err := FromImage(src, false)
	require.NoError(t, err)

	out, err := img.ToImage()
	require.NoError(t, err)
	back, err := FromImage(out, false)
	require.NoError(t, err)

	assert.True(t, img.Equal(back))
	assert.Equal(t, ComputeChecksum(img), ComputeChecksum(back))
}

func TestImage_Unique(t *testing.T) {
	img, _ := New([]uint8{3, 1, 3, 200}, 2, 2)
	assert.Equal(t, []float64{1, 3, 200}, img.Unique())
}

func TestComputeChecksum(t *testing.T) {
	a := assert.New(t)

	x, _ := New([]uint8{1, 2, 3, 4}, 2, 2)
	y, _ := New([]uint8{1, 2, 3, 4}, 2, 2)
	z, _ := New([]uint8{1, 2, 3, 4}, 1, 4)

	a.Equal(ComputeChecksum(x), ComputeChecksum(y))
	a.NotEqual(ComputeChecksum(x), ComputeChecksum(z))
	a.Equal("empty", ComputeChecksum(nil))
}

func TestThumbnail(t *testing.T) {
	img, err := FromImage(getTestImage(40, 20), false)
	require.NoError(t, err)

	thumb, err := Thumbnail(img, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 10, 3}, thumb.Shape())

	same, err := Thumbnail(img, 100, 100)
	require.NoError(t, err)
	assert.Same(t, img, same)

	mask, _ := ToBool(img)
	_, err = Thumbnail(mask, 10, 10)
	assert.Error(t, err, "three channel bool images cannot be resampled")

	_, err = Thumbnail(img, 0, 10)
	assert.Error(t, err)
}

func TestFormatFromExtension(t *testing.T) {
	assert.Equal(t, FormatJPEG, FormatFromExtension("rocket.jpg"))
	assert.Equal(t, FormatPNG, FormatFromExtension("chessboard_GRAY.PNG"))
	assert.Equal(t, FormatTIFF, FormatFromExtension(".tif"))
	assert.Equal(t, FormatUnknown, FormatFromExtension("notes.txt"))
}
