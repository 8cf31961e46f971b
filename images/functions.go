package images

import (
	"math"
	"runtime"
	"sort"
	"sync"
)

// EdgeMode defines how to handle coordinates that are out of bounds.
type EdgeMode string

const (
	// ClampEdgeMode repeats the edge sample.
	ClampEdgeMode EdgeMode = "clamp"
	// MirrorEdgeMode reflects about the edge, repeating the edge sample (d c b a | a b c d).
	MirrorEdgeMode EdgeMode = "mirror"
	// WrapEdgeMode tiles the array.
	WrapEdgeMode EdgeMode = "wrap"
)

// GaussianTruncate is the kernel radius in standard deviations.
const GaussianTruncate = 4.0

// MapCoord maps a coordinate to a valid index in [0, max) based on the edge mode.
//
// Arguments:
// - coord: The coordinate to map.
// - max: The length of the axis.
// - mode: The edge mode to use.
func MapCoord(coord, max int, mode EdgeMode) int {
	switch mode {
	case MirrorEdgeMode:
		for coord < 0 || coord >= max {
			if coord < 0 {
				coord = -coord - 1
			} else {
				coord = 2*max - coord - 1
			}
		}
		return coord
	case WrapEdgeMode:
		return (coord%max + max) % max
	default:
		if coord < 0 {
			return 0
		} else if coord >= max {
			return max - 1
		}
		return coord
	}
}

// GaussianKernel creates a normalized 1D Gaussian kernel of radius
// int(GaussianTruncate*sigma + 0.5).
//
// Arguments:
// - sigma: Standard deviation of the Gaussian. Must be positive.
//
// Returns:
// - The kernel, of length 2*radius + 1, summing to 1.
//
// @example
// kernel := GaussianKernel(1.5)
func GaussianKernel(sigma float64) []float64 {
	radius := int(GaussianTruncate*sigma + 0.5)
	kernel := make([]float64, 2*radius+1)

	// The 1/(sqrt(2*pi)*sigma) factor cancels out in the normalization.
	denom := 2.0 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - radius)
		kernel[i] = math.Exp(-(x * x) / denom)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}

// GaussianFilter smooths a row-major n-dimensional array with a separable
// Gaussian, one axis at a time.
//
// Arguments:
// - data: The samples, len(data) == product(shape).
// - shape: The array shape.
// - sigma: Standard deviation along every axis. Values <= 0 return a copy.
// - mode: How samples past the array edge are synthesized.
//
// Returns:
// - A new filtered array.
//
// @example
// smooth := GaussianFilter(mask, []int{512, 512}, 12.8, MirrorEdgeMode)
func GaussianFilter(data []float64, shape []int, sigma float64, mode EdgeMode) []float64 {
	src := append([]float64(nil), data...)
	if sigma <= 0 {
		return src
	}

	kernel := GaussianKernel(sigma)
	radius := len(kernel) / 2
	dst := make([]float64, len(src))

	for axis, n := range shape {
		inner := 1
		for _, s := range shape[axis+1:] {
			inner *= s
		}
		outer := len(src) / (n * inner)

		Parallel(outer*inner, func(start, end int) {
			for line := start; line < end; line++ {
				base := (line/inner)*n*inner + line%inner
				for i := 0; i < n; i++ {
					acc := 0.0
					for k, weight := range kernel {
						j := MapCoord(i+k-radius, n, mode)
						acc += src[base+j*inner] * weight
					}
					dst[base+i*inner] = acc
				}
			}
		})
		src, dst = dst, src
	}

	return src
}

// Percentile returns the q-th percentile (0..100) of values using linear
// interpolation between the closest ranks.
func Percentile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	pos := Clamp(q, 0, 100) / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Clamp restricts value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Parallel executes a function in Parallel across multiple goroutines.
//
// Arguments:
// - dataSize: The size of the data to process.
// - fn: Function to execute for each partition (receives start and end indices).
//
// @example
//
//	Parallel(height, func(start, end int) {
//	    for y := start; y < end; y++ {
//	        // Process row y
//	    }
//	})
func Parallel(dataSize int, fn func(partStart, partEnd int)) {
	numGoroutines := runtime.NumCPU()

	// Small inputs are not worth the goroutine overhead.
	if dataSize < numGoroutines*2 {
		fn(0, dataSize)
		return
	}

	partSize := dataSize / numGoroutines

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		partStart := i * partSize
		partEnd := partStart + partSize

		// Last partition gets any remaining data.
		if i == numGoroutines-1 {
			partEnd = dataSize
		}

		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(partStart, partEnd)
	}
	wg.Wait()
}
