package domtree

import (
	"errors"
	"fmt"
)

// ErrMalformedDocument means the token stream did not describe a single balanced element.
var ErrMalformedDocument = errors.New("malformed document")

// ErrUnsupportedTag is returned by RemoveTag for tags it does not know how to remove.
var ErrUnsupportedTag = errors.New("unsupported tag")

// ErrBadOperation means an operation line or script entry could not be parsed.
var ErrBadOperation = errors.New("bad operation")

// A SyntaxError locates a construction failure in the input.
// It always wraps ErrMalformedDocument.
type SyntaxError struct {
	Filename string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	if len(e.Filename) == 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.Filename, e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrMalformedDocument
}
