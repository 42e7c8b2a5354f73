package wire

import (
	"bytes"
	"io"
)

// DefaultMaxDepth is the maximum section/list nesting depth the
// default Codec will decode before stopping early.
const DefaultMaxDepth = 256

// Codec holds decoding limits. The zero value uses DefaultMaxDepth.
type Codec struct {
	// MaxDepth is the maximum number of nested sections and lists the
	// decoder will enter. Untrusted input cannot grow the frame stack
	// past this bound.
	MaxDepth int
}

var defaultCodec = &Codec{
	MaxDepth: DefaultMaxDepth,
}

// Encode writes the message rooted at root to w using the default
// Codec.
func Encode(w io.Writer, root *Section) error {
	return defaultCodec.Encode(w, root)
}

// EncodeToBytes encodes the message rooted at root into a byte slice
// using the default Codec.
func EncodeToBytes(root *Section) ([]byte, error) {
	return defaultCodec.EncodeToBytes(root)
}

// Decode reads one complete message from r using the default Codec.
func Decode(r io.Reader) (*Section, error) {
	return defaultCodec.Decode(r)
}

// DecodeBytes decodes the message contained in data using the default
// Codec.
func DecodeBytes(data []byte) (*Section, error) {
	return defaultCodec.DecodeBytes(data)
}

// Scan reads elements from r using the default Codec, invoking h once
// per element.
func Scan(r io.Reader, h Handler) error {
	return defaultCodec.Scan(r, h)
}

func (c *Codec) maxDepth() int {
	if c.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return c.MaxDepth
}

// EncodeToBytes encodes the message rooted at root into a byte slice.
func (c *Codec) EncodeToBytes(root *Section) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeBytes decodes the message contained in data.
func (c *Codec) DecodeBytes(data []byte) (*Section, error) {
	return c.Decode(bytes.NewReader(data))
}
