package data

import (
	"math"
	"math/rand"
	"time"

	"github.com/nvr-ai/go-sampledata/images"
	"github.com/pkg/errors"
)

// Blob generator defaults.
const (
	DefaultBlobLength         = 512
	DefaultBlobSizeFraction   = 0.1
	DefaultBlobDims           = 2
	DefaultBlobVolumeFraction = 0.5
)

// BlobOption configures BinaryBlobs.
type BlobOption func(*blobOptions)

type blobOptions struct {
	length   int
	fraction float64
	nDim     int
	volume   float64
	seed     int64
	seeded   bool
}

// WithLength sets the side length of the output.
func WithLength(length int) BlobOption {
	return func(o *blobOptions) { o.length = length }
}

// WithBlobSizeFraction sets the typical blob radius as a fraction of length.
// Smaller values give more, smaller blobs.
func WithBlobSizeFraction(fraction float64) BlobOption {
	return func(o *blobOptions) { o.fraction = fraction }
}

// WithDims sets the number of dimensions, 1 to 3.
func WithDims(nDim int) BlobOption {
	return func(o *blobOptions) { o.nDim = nDim }
}

// WithVolumeFraction sets the fraction of samples that end up true.
func WithVolumeFraction(volume float64) BlobOption {
	return func(o *blobOptions) { o.volume = volume }
}

// WithSeed makes the output reproducible.
func WithSeed(seed int64) BlobOption {
	return func(o *blobOptions) {
		o.seed = seed
		o.seeded = true
	}
}

// BinaryBlobs generates a synthetic bool image of blob-like structures.
//
// Random points are scattered in a zero array, smoothed with a Gaussian of
// sigma 0.25*length*fraction and thresholded so that about volume of the
// samples are true.
//
// Arguments:
// - opts: Overrides for length (512), blob size fraction (0.1), dims (2),
// volume fraction (0.5) and the seed (random).
//
// Returns:
// - A tensor.Bool image. Two dimensions give [L, L], three give [L, L, L] and a
// single dimension is returned as one row, [1, L].
// - error if an option is out of range.
//
// @example
//
//	blobs, err := data.BinaryBlobs(data.WithLength(256), data.WithSeed(1))
func BinaryBlobs(opts ...BlobOption) (*images.Image, error) {
	o := blobOptions{
		length:   DefaultBlobLength,
		fraction: DefaultBlobSizeFraction,
		nDim:     DefaultBlobDims,
		volume:   DefaultBlobVolumeFraction,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}

	switch {
	case o.length <= 0:
		return nil, errors.Errorf("blob length must be positive, got %d", o.length)
	case o.fraction <= 0 || o.fraction > 1:
		return nil, errors.Errorf("blob size fraction must be in (0, 1], got %g", o.fraction)
	case o.nDim < 1 || o.nDim > 3:
		return nil, errors.Errorf("blob dims must be 1, 2 or 3, got %d", o.nDim)
	case o.volume <= 0 || o.volume > 1:
		return nil, errors.Errorf("blob volume fraction must be in (0, 1], got %g", o.volume)
	}

	shape := make([]int, o.nDim)
	size := 1
	for d := range shape {
		shape[d] = o.length
		size *= o.length
	}

	rng := rand.New(rand.NewSource(o.seed))
	nPts := int(math.Pow(float64(int(1/o.fraction)), float64(o.nDim)))
	if nPts < 1 {
		nPts = 1
	}

	// Coordinates are drawn axis by axis, all points for one axis at a time.
	coords := make([][]int, o.nDim)
	for d := range coords {
		coords[d] = make([]int, nPts)
		for p := range coords[d] {
			coords[d][p] = int(float64(o.length) * rng.Float64())
		}
	}

	mask := make([]float64, size)
	for p := 0; p < nPts; p++ {
		idx := 0
		for d := range coords {
			idx = idx*o.length + coords[d][p]
		}
		mask[idx] = 1
	}

	smooth := images.GaussianFilter(mask, shape, 0.25*float64(o.length)*o.fraction, images.ClampEdgeMode)
	threshold := images.Percentile(smooth, 100*(1-o.volume))

	// Samples at the threshold are kept, so a volume of 1 sets every sample.
	out := make([]bool, size)
	for i, v := range smooth {
		out[i] = v >= threshold
	}

	if o.nDim == 1 {
		return images.New(out, 1, o.length)
	}
	return images.New(out, shape...)
}
