package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/nvr-ai/go-sampledata/images"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestImage() image.Image {
	// Create a simple 100x60 red image.
	img := image.NewRGBA(image.Rect(0, 0, 100, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 100; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 0, B: 0, A: 255})
		}
	}
	return img
}

func getPNGBytes(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, getTestImage()))
	return buf.Bytes()
}

func getJPEGBytes(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, getTestImage(), nil))
	return buf.Bytes()
}

func TestSniff(t *testing.T) {
	tests := []struct {
		name     string
		data     func(t *testing.T) []byte
		expected images.ImageFormat
		err      error
	}{
		{name: "png", data: getPNGBytes, expected: images.FormatPNG},
		{name: "jpeg", data: getJPEGBytes, expected: images.FormatJPEG},
		{name: "empty", data: func(*testing.T) []byte { return nil }, err: ErrEmpty},
		{name: "text", data: func(*testing.T) []byte { return []byte("not an image at all") }, err: ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := Sniff(tt.data(t))
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestNative_Decode(t *testing.T) {
	dec, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBackend, dec.Name())

	t.Run("PNG", func(t *testing.T) {
		img, err := dec.Decode(getPNGBytes(t), Options{})
		require.NoError(t, err)
		assert.Equal(t, 100, img.Bounds().Dx())
		assert.Equal(t, 60, img.Bounds().Dy())
	})

	t.Run("JPEG", func(t *testing.T) {
		img, err := dec.Decode(getJPEGBytes(t), Options{Grayscale: true})
		require.NoError(t, err)
		assert.Equal(t, 100, img.Bounds().Dx())
	})

	t.Run("Truncated", func(t *testing.T) {
		data := getPNGBytes(t)
		img, err := dec.Decode(data[:len(data)/2], Options{})
		require.Error(t, err)
		assert.Nil(t, img)
		assert.Contains(t, err.Error(), "failed to decode png:")
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := dec.Decode([]byte{}, Options{})
		assert.True(t, errors.Is(err, ErrEmpty))
	})
}

type pngOnly struct{ Native }

func (p *pngOnly) Name() string                  { return "png-only" }
func (p *pngOnly) Formats() []images.ImageFormat { return []images.ImageFormat{images.FormatPNG} }

func TestCheck_UnsupportedFormat(t *testing.T) {
	dec := &pngOnly{}

	format, err := Check(dec, getPNGBytes(t))
	require.NoError(t, err)
	assert.Equal(t, images.FormatPNG, format)

	_, err = Check(dec, getJPEGBytes(t))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestRegistry(t *testing.T) {
	a := assert.New(t)

	a.Contains(Backends(), DefaultBackend)

	_, err := Open("does-not-exist")
	a.True(errors.Is(err, ErrUnknownBackend))

	a.Panics(func() { Register(DefaultBackend, NewNative) })
	a.Panics(func() { Register("nil-factory", nil) })

	if _, err := Open("always-fails"); errors.Is(err, ErrUnknownBackend) {
		Register("always-fails", func() (Decoder, error) { return nil, errors.New("library missing") })
	}
	_, err = Open("always-fails")
	a.Error(err)
	a.Contains(err.Error(), "library missing")
}

func TestProbe(t *testing.T) {
	hdr, err := Probe(getPNGBytes(t))
	require.NoError(t, err)
	assert.Equal(t, images.FormatPNG, hdr.Format)
	assert.Equal(t, 100, hdr.Width)
	assert.Equal(t, 60, hdr.Height)
	assert.Equal(t, "color", hdr.ColorModel)
	assert.Nil(t, hdr.Exif)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 3, 3))))
	hdr, err = Probe(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "gray", hdr.ColorModel)

	hdr, err = Probe(getJPEGBytes(t))
	require.NoError(t, err)
	assert.Equal(t, images.FormatJPEG, hdr.Format)
	assert.Nil(t, hdr.Exif, "stdlib encoder writes no EXIF block")

	_, err = Probe([]byte("plain text"))
	assert.Error(t, err)
}
