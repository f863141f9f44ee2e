package ritotex

import "errors"

var (
	// ErrInvalidSignature indicates a container magic mismatch.
	ErrInvalidSignature = errors.New("invalid container signature")
	// ErrUnsupportedFormat indicates an unrecognized or undecodable format tag.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrTruncatedData indicates a payload shorter than the header requires.
	ErrTruncatedData = errors.New("truncated data")
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrBufferSize indicates a pixel buffer length mismatch.
	ErrBufferSize = errors.New("pixel buffer size mismatch")
	// ErrEmptyLevels indicates a container without any level payload.
	ErrEmptyLevels = errors.New("container has no levels")
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
)
