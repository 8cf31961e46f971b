package data

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies loader failures.
type Kind int

const (
	// KindUnknown is reported by KindOf for errors that did not come from a Loader.
	KindUnknown Kind = iota
	// KindFileNotFound means the path does not resolve to a readable file under
	// the data directory.
	KindFileNotFound
	// KindDecode means the bytes were read but the backend could not decode them.
	KindDecode
	// KindBackendUnavailable means no decoder backend could be initialized.
	KindBackendUnavailable
	// KindRemoved means the image was withdrawn on purpose. Retrying cannot help.
	KindRemoved
)

func (k Kind) String() string {
	switch k {
	case KindFileNotFound:
		return "file not found"
	case KindDecode:
		return "decode error"
	case KindBackendUnavailable:
		return "backend unavailable"
	case KindRemoved:
		return "removed"
	}
	return "unknown"
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrFileNotFound       = &Error{Kind: KindFileNotFound}
	ErrDecode             = &Error{Kind: KindDecode}
	ErrBackendUnavailable = &Error{Kind: KindBackendUnavailable}
	ErrRemoved            = &Error{Kind: KindRemoved}
)

// Error is returned by every Loader operation.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// Name is the catalog name or the requested filename.
	Name string
	// Path is the resolved path, when one was resolved.
	Path string
	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Name != "" {
		msg = fmt.Sprintf("%s: %s", e.Name, msg)
	}
	if e.Path != "" && e.Path != e.Name {
		msg = fmt.Sprintf("%s (%s)", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
