package cli

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/nvr-ai/go-sampledata/data"
	"github.com/nvr-ai/go-sampledata/images"
	"github.com/nvr-ai/go-sampledata/logger"
	"github.com/pkg/errors"
)

// DefaultQuality is used for lossy JPEG and WebP output.
const DefaultQuality = 90

func runExport(e *env, args []string) error {
	fs := newFlagSet(e, "export")
	gray := fs.Bool("gray", false, "Collapse color channels")
	maxSize := fs.Int("max", 0, "Shrink to fit within N x N pixels (0 keeps the size)")
	quality := fs.Int("quality", DefaultQuality, "JPEG and WebP quality, 1-100")
	output := fs.String("o", "", "Output file; the extension picks png, jpg or webp (default <name>.png)")
	if err := parse(fs, args, 1); err != nil {
		return err
	}
	if *quality < 1 || *quality > 100 {
		return usageErrorf("export: -quality must be between 1 and 100")
	}
	target := fs.Arg(0)
	if *output == "" {
		*output = strings.TrimSuffix(target, "."+string(images.FormatFromExtension(target))) + ".png"
	}
	loader, err := e.loader()
	if err != nil {
		return err
	}

	img, err := loadTarget(loader, target, *gray, false)
	if err != nil {
		return err
	}
	if *maxSize > 0 {
		if img, err = images.Thumbnail(img, *maxSize, *maxSize); err != nil {
			return err
		}
	}

	if err := writeImage(*output, img, *quality); err != nil {
		return err
	}
	logger.Info.Printf("Exported %s as %s to %s", target, img, *output)
	return nil
}

func runBlobs(e *env, args []string) error {
	fs := newFlagSet(e, "blobs")
	length := fs.Int("length", data.DefaultBlobLength, "Side length in pixels")
	fraction := fs.Float64("fraction", data.DefaultBlobSizeFraction, "Blob size as a fraction of length")
	volume := fs.Float64("volume", data.DefaultBlobVolumeFraction, "Fraction of pixels set")
	seed := fs.Int64("seed", -1, "Random seed (-1 picks one)")
	output := fs.String("o", "blobs.png", "Output file")
	if err := parse(fs, args, 0); err != nil {
		return err
	}

	opts := []data.BlobOption{
		data.WithLength(*length),
		data.WithBlobSizeFraction(*fraction),
		data.WithVolumeFraction(*volume),
	}
	if *seed >= 0 {
		opts = append(opts, data.WithSeed(*seed))
	}

	blobs, err := data.BinaryBlobs(opts...)
	if err != nil {
		return usageErrorf("blobs: %v", err)
	}
	return writeImage(*output, blobs, DefaultQuality)
}

// writeImage encodes img in the format named by path's extension.
func writeImage(path string, img *images.Image, quality int) error {
	format := images.FormatFromExtension(path)
	switch format {
	case images.FormatPNG, images.FormatJPEG, images.FormatWebP:
	default:
		return usageErrorf("unsupported output format %q: use .png, .jpg or .webp", path)
	}

	src, err := img.ToImage()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create output file")
	}

	if err := encode(f, src, format, quality); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to encode %s", format)
	}
	return f.Close()
}

func encode(w io.Writer, img image.Image, format images.ImageFormat, quality int) error {
	switch format {
	case images.FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case images.FormatWebP:
		return webp.Encode(w, img, &webp.Options{Quality: float32(quality)})
	default:
		return png.Encode(w, img)
	}
}
