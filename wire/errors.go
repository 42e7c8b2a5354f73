package wire

import "github.com/pkg/errors"

// Errors returned by the encoder and decoder. Decode wraps these with
// positional context; use errors.Cause to match them. I/O failures
// from the caller-supplied Reader or Writer are never converted into
// these values and propagate as-is.
var (
	// ErrNameTooLong is returned by the encoder when a section name,
	// list name, or key exceeds MaxNameLen bytes.
	ErrNameTooLong = errors.New("name exceeds 255 bytes")

	// ErrValueTooLong is returned by the encoder when a value or list
	// item exceeds MaxValueLen bytes.
	ErrValueTooLong = errors.New("value exceeds 65535 bytes")

	// ErrUnexpectedTag is returned by the decoder when a tag byte is
	// outside the element type set.
	ErrUnexpectedTag = errors.New("unexpected element tag")

	// ErrUnexpectedEOF is returned by the decoder when the input ends
	// partway through an element.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrFrameKindMismatch is returned by the decoder when an element
	// is not valid inside the currently open section or list, such as
	// a list item outside a list or a list end closing a section.
	ErrFrameKindMismatch = errors.New("element not valid in current frame")

	// ErrUnterminatedStructure is returned by the decoder when the
	// input ends with sections or lists still open.
	ErrUnterminatedStructure = errors.New("input ended with unterminated structure")

	// ErrMaxDepthExceeded is returned by the decoder when nesting
	// exceeds the configured maximum depth.
	ErrMaxDepthExceeded = errors.New("nesting depth exceeds maximum")
)
