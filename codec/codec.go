// Package codec - Image decoding backends.
//
// A backend turns encoded bytes into an image.Image. Backends register
// themselves by name, the way image formats register with the standard
// library, and are selected once when a loader is built:
//
//	import _ "github.com/nvr-ai/go-sampledata/codec/imaging"
//
//	dec, err := codec.Open("imaging")
//
// The "native" backend is always registered.
package codec

import (
	"image"
	"sort"
	"sync"

	"github.com/nvr-ai/go-sampledata/images"
	"github.com/nvr-ai/go-sampledata/logger"
	"github.com/pkg/errors"
)

// DefaultBackend is the backend used when none is configured.
const DefaultBackend = "native"

var (
	// ErrUnknownBackend is returned by Open for names nobody registered.
	ErrUnknownBackend = errors.New("unknown decoder backend")
	// ErrUnsupportedFormat is returned when a backend cannot decode the sniffed format.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrEmpty is returned when there are no bytes to decode.
	ErrEmpty = errors.New("image data is empty")
)

// Options tune a single decode.
type Options struct {
	// Grayscale asks the backend to collapse color channels while decoding.
	// Backends without a native grayscale path may ignore it; callers that need
	// a single channel result convert afterwards.
	Grayscale bool
}

// Decoder decodes encoded image bytes.
type Decoder interface {
	// Name is the registered backend name.
	Name() string
	// Formats is the set of formats the backend can decode.
	Formats() []images.ImageFormat
	// Decode decodes data. It must not retain data after returning.
	Decode(data []byte, opts Options) (image.Image, error)
}

// Factory initializes a backend. It may fail when a native library is missing.
type Factory func() (Decoder, error)

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register makes a backend available by name. It panics if the name is taken
// or the factory is nil.
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()

	if factory == nil {
		panic("codec: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("codec: Register called twice for backend " + name)
	}
	factories[name] = factory
}

// Open initializes the named backend.
//
// Arguments:
// - name: A registered backend name. Empty selects DefaultBackend.
//
// Returns:
// - The initialized Decoder.
// - error wrapping ErrUnknownBackend, or the factory's own failure.
//
// @example
//
//	dec, err := codec.Open("native")
//	if err != nil {
//	    return err
//	}
func Open(name string) (Decoder, error) {
	if name == "" {
		name = DefaultBackend
	}

	mu.RLock()
	factory, ok := factories[name]
	mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownBackend, "%q (registered: %v)", name, Backends())
	}

	dec, err := factory()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to initialize %s backend", name)
	}
	logger.Debug.Printf("Initialized %s decoder backend", name)
	return dec, nil
}

// Backends lists the registered backend names in sorted order.
func Backends() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supports reports whether dec lists format among its capabilities.
func Supports(dec Decoder, format images.ImageFormat) bool {
	for _, f := range dec.Formats() {
		if f == format {
			return true
		}
	}
	return false
}

// Check sniffs data and verifies dec can decode it. Backends call it first so
// empty, unknown and unsupported inputs fail the same way everywhere.
//
// Returns:
// - The sniffed format.
// - error wrapping ErrEmpty or ErrUnsupportedFormat.
func Check(dec Decoder, data []byte) (images.ImageFormat, error) {
	format, err := Sniff(data)
	if err != nil {
		return images.FormatUnknown, err
	}
	if !Supports(dec, format) {
		return format, errors.Wrapf(ErrUnsupportedFormat, "%s backend cannot decode %s", dec.Name(), format)
	}
	return format, nil
}
