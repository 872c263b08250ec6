package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrBadLayout indicates a party layout with inconsistent offsets.
	ErrBadLayout = errors.New("format: invalid party layout")
)
