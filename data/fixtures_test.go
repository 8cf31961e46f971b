package data

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nvr-ai/go-sampledata/codec"
	"github.com/stretchr/testify/require"
)

const (
	fixtureWidth  = 40
	fixtureHeight = 30
)

// grayFixture returns a gradient with a per-file offset so no two files match.
func grayFixture(offset int) image.Image {
	img := image.NewGray(image.Rect(0, 0, fixtureWidth, fixtureHeight))
	for y := 0; y < fixtureHeight; y++ {
		for x := 0; x < fixtureWidth; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x*5 + y*3 + offset) % 256)})
		}
	}
	return img
}

func colorFixture(offset int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, fixtureWidth, fixtureHeight))
	for y := 0; y < fixtureHeight; y++ {
		for x := 0; x < fixtureWidth; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8((x*6 + offset) % 256),
				G: uint8((y*8 + offset) % 256),
				B: uint8((x + y + offset) % 256),
				A: 0xff,
			})
		}
	}
	return img
}

// horseFixture is a black silhouette on white with a gray anti-aliased rim.
func horseFixture() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, fixtureWidth, fixtureHeight))
	for y := 0; y < fixtureHeight; y++ {
		for x := 0; x < fixtureWidth; x++ {
			v := uint8(0xff)
			switch {
			case x >= 10 && x < 30 && y >= 8 && y < 22:
				v = 0
			case x >= 9 && x < 31 && y >= 7 && y < 23:
				v = 0x80
			}
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 0xff})
		}
	}
	return img
}

func fixtureImage(filename string, offset int) image.Image {
	switch filename {
	case "horse.png":
		return horseFixture()
	case "astronaut.png", "ihc.png", "chelsea.png", "coffee.png", "hubble_deep_field.jpg", "rocket.jpg":
		return colorFixture(offset)
	}
	return grayFixture(offset)
}

func encodeFixture(t *testing.T, filename string, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	if strings.HasSuffix(filename, ".jpg") {
		require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	} else {
		require.NoError(t, png.Encode(&buf, img))
	}
	return buf.Bytes()
}

// writeCatalog writes a small stand-in for every catalog file into a temporary
// directory and returns it.
func writeCatalog(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for i, e := range Catalog() {
		if e.Removed {
			continue
		}
		raw := encodeFixture(t, e.Filename, fixtureImage(e.Filename, i*17))
		require.NoError(t, os.WriteFile(filepath.Join(dir, e.Filename), raw, 0o644))
	}
	return dir
}

func newTestLoader(t *testing.T) (*Loader, string) {
	t.Helper()

	dir := writeCatalog(t)
	dec, err := codec.Open("native")
	require.NoError(t, err)
	return NewLoader(dir, dec), dir
}
