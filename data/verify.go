package data

import (
	"io/fs"
	"path/filepath"

	"github.com/nvr-ai/go-sampledata/codec"
	"github.com/nvr-ai/go-sampledata/images"
	"github.com/nvr-ai/go-sampledata/logger"
	"github.com/pkg/errors"
)

// FileInfo describes a catalog file without decoding its pixels.
type FileInfo struct {
	Entry  Entry         `json:"entry" yaml:"entry"`
	Path   string        `json:"path" yaml:"path"`
	Size   int64         `json:"size" yaml:"size"`
	Header *codec.Header `json:"header" yaml:"header"`
}

// Info probes the header of a catalog image.
//
// Arguments:
// - name: The catalog name.
//
// Returns:
// - The file info, including EXIF fields for JPEG files.
// - error: *Error of KindRemoved, KindFileNotFound or KindDecode.
func (l *Loader) Info(name string) (*FileInfo, error) {
	e, ok := Lookup(name)
	if !ok {
		return nil, &Error{Kind: KindFileNotFound, Name: name, Err: errors.New("no such catalog entry")}
	}
	if e.Removed {
		return nil, removed(e)
	}

	raw, err := l.read(e.Filename)
	if err != nil {
		return nil, err
	}

	header, err := codec.Probe(raw)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Name: e.Filename, Path: l.path(e.Filename), Err: err}
	}

	return &FileInfo{
		Entry:  e,
		Path:   l.path(e.Filename),
		Size:   int64(len(raw)),
		Header: header,
	}, nil
}

// VerifyResult is the outcome of checking one catalog file.
type VerifyResult struct {
	Entry  Entry              `json:"entry" yaml:"entry"`
	Size   int64              `json:"size" yaml:"size"`
	Format images.ImageFormat `json:"format" yaml:"format"`
	Err    error              `json:"-" yaml:"-"`
}

// OK reports whether the file passed.
func (r VerifyResult) OK() bool {
	return r.Err == nil
}

// Verify checks every non-removed catalog file: it must exist, be non-empty
// and its content must match the format its extension names. Pixels are not
// decoded.
//
// Returns:
// - One result per checked entry, in catalog order.
func (l *Loader) Verify() []VerifyResult {
	var results []VerifyResult
	for _, e := range catalog {
		if e.Removed {
			continue
		}
		r := l.verify(e)
		if r.OK() {
			logger.Debug.Printf("Verified %s: %s, %d bytes", e.Filename, r.Format, r.Size)
		} else {
			logger.Warn.Printf("Verification failed for %s: %v", e.Filename, r.Err)
		}
		results = append(results, r)
	}
	return results
}

func (l *Loader) verify(e Entry) VerifyResult {
	r := VerifyResult{Entry: e}

	stat, err := fs.Stat(l.fsys, filepath.ToSlash(e.Filename))
	if err != nil {
		r.Err = &Error{Kind: KindFileNotFound, Name: e.Filename, Path: l.path(e.Filename), Err: err}
		return r
	}
	r.Size = stat.Size()

	raw, err := l.read(e.Filename)
	if err != nil {
		r.Err = err
		return r
	}

	format, err := codec.Sniff(raw)
	if err != nil {
		r.Err = &Error{Kind: KindDecode, Name: e.Filename, Path: l.path(e.Filename), Err: err}
		return r
	}
	r.Format = format

	if want := images.FormatFromExtension(e.Filename); want != format {
		r.Err = &Error{
			Kind: KindDecode,
			Name: e.Filename,
			Path: l.path(e.Filename),
			Err:  errors.Errorf("content is %s, extension says %s", format, want),
		}
	}
	return r
}
