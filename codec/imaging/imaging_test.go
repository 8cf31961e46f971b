package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/nvr-ai/go-sampledata/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getPNGBytes(t *testing.T) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: uint8(x * 20), B: 10, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecoder_Registered(t *testing.T) {
	assert.Contains(t, codec.Backends(), Name)

	dec, err := codec.Open(Name)
	require.NoError(t, err)
	assert.Equal(t, Name, dec.Name())
}

func TestDecoder_Decode(t *testing.T) {
	dec, err := New()
	require.NoError(t, err)

	t.Run("Color", func(t *testing.T) {
		img, err := dec.Decode(getPNGBytes(t), codec.Options{})
		require.NoError(t, err)
		assert.Equal(t, 8, img.Bounds().Dx())
		assert.Equal(t, 4, img.Bounds().Dy())
	})

	t.Run("Grayscale", func(t *testing.T) {
		img, err := dec.Decode(getPNGBytes(t), codec.Options{Grayscale: true})
		require.NoError(t, err)

		r, g, b, _ := img.At(3, 2).RGBA()
		assert.Equal(t, r, g)
		assert.Equal(t, g, b)
	})

	t.Run("Corrupt", func(t *testing.T) {
		data := getPNGBytes(t)
		_, err := dec.Decode(data[:20], codec.Options{})
		assert.Error(t, err)
	})
}
