package stl

import (
	"errors"
	"fmt"
)

// ErrFormat matches every truncation error below via errors.Is.
var ErrFormat = errors.New("stl: malformed binary file")

var (
	ErrTruncatedHeader   = &formatError{"stl: truncated header (want 80 bytes)"}
	ErrTruncatedCount    = &formatError{"stl: truncated triangle count (want 4 bytes)"}
	ErrTruncatedTriangle = &formatError{"stl: truncated triangle record"}
)

type formatError struct{ msg string }

func (e *formatError) Error() string        { return e.msg }
func (e *formatError) Is(target error) bool { return target == ErrFormat }

// TruncatedTriangleError reports a triangle record with fewer than 50 bytes
// left in the stream. Index is zero-based.
type TruncatedTriangleError struct {
	Index int
}

func (e *TruncatedTriangleError) Error() string {
	return fmt.Sprintf("stl: truncated triangle record %d (want %d bytes)", e.Index, TriangleSize)
}

func (e *TruncatedTriangleError) Is(target error) bool {
	return target == ErrTruncatedTriangle || target == ErrFormat
}

// ReadError wraps a failure of the underlying byte source.
type ReadError struct {
	Op  string
	Err error
}

func (e *ReadError) Error() string {
	return "stl: " + e.Op + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error { return e.Err }
