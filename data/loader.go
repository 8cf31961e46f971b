// Package data loads the bundled sample images by name.
//
// A Loader is built once around a data directory and a decoder backend and is
// then safe for concurrent use. Every operation returns *Error on failure; use
// errors.Is with the Err* sentinels or KindOf to branch on the failure class.
package data

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/nvr-ai/go-sampledata/codec"
	"github.com/nvr-ai/go-sampledata/config"
	"github.com/nvr-ai/go-sampledata/images"
	"github.com/nvr-ai/go-sampledata/logger"
	"github.com/pkg/errors"
)

// Loader reads catalog images from a data directory.
type Loader struct {
	dir     string
	fsys    fs.FS
	decoder codec.Decoder
}

// NewLoader creates a loader for the images under dir.
//
// Arguments:
// - dir: The data directory. It is not checked here; see Open.
// - decoder: The backend used for every load. A nil decoder makes every load
// fail with KindBackendUnavailable.
//
// @example
//
//	dec, _ := codec.Open("native")
//	loader := data.NewLoader("/usr/share/sampledata", dec)
//	img, err := loader.Camera()
func NewLoader(dir string, decoder codec.Decoder) *Loader {
	return &Loader{
		dir:     dir,
		fsys:    os.DirFS(dir),
		decoder: decoder,
	}
}

// NewLoaderFS creates a loader reading from fsys, e.g. an embed.FS.
func NewLoaderFS(fsys fs.FS, decoder codec.Decoder) *Loader {
	return &Loader{fsys: fsys, decoder: decoder}
}

// Open validates cfg, checks the data directory and opens its backend.
//
// Arguments:
// - cfg: The configuration, usually from config.Load followed by ApplyEnv.
//
// Returns:
// - The Loader.
// - error: *Error of KindFileNotFound if DataDir is not a directory, or
// KindBackendUnavailable if the backend cannot be opened.
func Open(cfg config.Config) (*Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	info, err := os.Stat(cfg.DataDir)
	if err != nil {
		return nil, &Error{Kind: KindFileNotFound, Path: cfg.DataDir, Err: err}
	}
	if !info.IsDir() {
		return nil, &Error{Kind: KindFileNotFound, Path: cfg.DataDir, Err: errors.New("not a directory")}
	}

	dec, err := codec.Open(cfg.Backend)
	if err != nil {
		return nil, &Error{Kind: KindBackendUnavailable, Name: cfg.Backend, Err: err}
	}

	logger.Info.Printf("Sample data loader ready: dir=%s backend=%s", cfg.DataDir, dec.Name())
	return NewLoader(cfg.DataDir, dec), nil
}

// Dir is the data directory, empty for loaders built with NewLoaderFS.
func (l *Loader) Dir() string {
	return l.dir
}

// Backend names the decoder backend, or "" if there is none.
func (l *Loader) Backend() string {
	if l.decoder == nil {
		return ""
	}
	return l.decoder.Name()
}

// LoadOption tunes a single Load call.
type LoadOption func(*loadOptions)

type loadOptions struct {
	grayscale bool
}

// Grayscale collapses color channels so the result is always [H, W].
func Grayscale() LoadOption {
	return func(o *loadOptions) {
		o.grayscale = true
	}
}

// Load reads and decodes a file from the data directory.
//
// Arguments:
// - filename: A slash separated path relative to the data directory.
// - opts: Load options such as Grayscale.
//
// Returns:
// - A freshly decoded image owned by the caller.
// - error: *Error of KindFileNotFound, KindBackendUnavailable or KindDecode.
//
// @example
//
//	img, err := loader.Load("coffee.png", data.Grayscale())
//	if errors.Is(err, data.ErrFileNotFound) {
//	    // ...
//	}
func (l *Loader) Load(filename string, opts ...LoadOption) (*images.Image, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}
	return l.load(filename, o)
}

// LoadBool loads a file and thresholds it into a bool mask, warning when the
// conversion discards information.
func (l *Loader) LoadBool(filename string, opts ...LoadOption) (*images.Image, error) {
	img, err := l.Load(filename, opts...)
	if err != nil {
		return nil, err
	}
	mask, lossy := images.ToBool(img)
	if lossy {
		logger.Warn.Printf("Possible precision loss converting %s (%s) to bool", filename, img)
	}
	return mask, nil
}

// ByName loads a catalog image by its name, e.g. "coins".
func (l *Loader) ByName(name string) (*images.Image, error) {
	entry, ok := Lookup(name)
	if !ok {
		return nil, &Error{Kind: KindFileNotFound, Name: name, Err: errors.New("no such catalog entry")}
	}
	return l.loadEntry(entry)
}

func (l *Loader) loadEntry(e Entry) (*images.Image, error) {
	if e.Removed {
		return nil, removed(e)
	}
	img, err := l.load(e.Filename, loadOptions{grayscale: e.Grayscale})
	if err != nil {
		return nil, err
	}
	if e.Boolean {
		// Anti-aliased edges are expected; the lossy flag is ignored.
		img, _ = images.ToBool(img)
	}
	return img, nil
}

func (l *Loader) load(filename string, o loadOptions) (*images.Image, error) {
	start := time.Now()
	logger.Debug.Printf("Loading %s (grayscale=%t, backend=%s)", filename, o.grayscale, l.Backend())

	raw, err := l.read(filename)
	if err != nil {
		return nil, err
	}

	if l.decoder == nil {
		return nil, &Error{Kind: KindBackendUnavailable, Name: filename, Err: errors.New("no decoder configured")}
	}

	decoded, err := l.decoder.Decode(raw, codec.Options{Grayscale: o.grayscale})
	if err != nil {
		return nil, &Error{Kind: KindDecode, Name: filename, Path: l.path(filename), Err: err}
	}

	img, err := images.FromImage(decoded, o.grayscale)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Name: filename, Path: l.path(filename), Err: err}
	}

	logger.Trace.Printf("Loaded %s as %s in %s", filename, img, time.Since(start))
	return img, nil
}

// read returns the file contents, mapping every failure to KindFileNotFound.
func (l *Loader) read(filename string) ([]byte, error) {
	name := filepath.ToSlash(filename)
	if name == "" || !fs.ValidPath(name) {
		return nil, &Error{Kind: KindFileNotFound, Name: filename, Err: fs.ErrInvalid}
	}

	raw, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, &Error{Kind: KindFileNotFound, Name: filename, Path: l.path(filename), Err: err}
	}
	return raw, nil
}

func (l *Loader) path(filename string) string {
	if l.dir == "" {
		return filename
	}
	return filepath.Join(l.dir, filename)
}

func removed(e Entry) error {
	return &Error{
		Kind: KindRemoved,
		Name: e.Name,
		Err:  errors.New("this image has been removed due to copyright concerns"),
	}
}
