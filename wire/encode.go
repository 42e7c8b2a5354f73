package wire

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Encode writes the message rooted at root to w. The root section is
// encoded as a bare element sequence with no enclosing start/end
// markers. Length violations abort before any byte of the offending
// element is written; bytes emitted for prior elements remain in w, so
// callers that need atomic output should encode into a buffer first.
func (c *Codec) Encode(w io.Writer, root *Section) error {
	if root == nil {
		return nil
	}
	return encodeSection(w, root)
}

func encodeSection(w io.Writer, s *Section) error {
	for _, key := range s.Keys() {
		v, _ := s.Get(key)
		switch val := v.(type) {
		case Scalar:
			if err := encodeKeyValue(w, key, val); err != nil {
				return err
			}
		case *Section:
			if err := writeNamed(w, ElementSectionStart, key); err != nil {
				return err
			}
			if err := encodeSection(w, val); err != nil {
				return err
			}
			if err := writeTag(w, ElementSectionEnd); err != nil {
				return err
			}
		case List:
			if err := encodeList(w, key, val); err != nil {
				return err
			}
		default:
			return errors.Errorf("cannot encode value of type %T under key %q", v, key)
		}
	}
	return nil
}

func encodeKeyValue(w io.Writer, key string, value Scalar) error {
	if len(key) > MaxNameLen {
		return errors.Wrapf(ErrNameTooLong, "key is %d bytes", len(key))
	}
	if len(value) > MaxValueLen {
		return errors.Wrapf(ErrValueTooLong, "value for key %q is %d bytes", key, len(value))
	}
	if err := writeTag(w, ElementKeyValue); err != nil {
		return err
	}
	if err := writeName(w, key); err != nil {
		return err
	}
	return writeValue(w, value)
}

func encodeList(w io.Writer, name string, items List) error {
	if err := writeNamed(w, ElementListStart, name); err != nil {
		return err
	}
	for i, item := range items {
		if len(item) > MaxValueLen {
			return errors.Wrapf(ErrValueTooLong, "item %d of list %q is %d bytes", i, name, len(item))
		}
		if err := writeTag(w, ElementListItem); err != nil {
			return err
		}
		if err := writeValue(w, item); err != nil {
			return err
		}
	}
	return writeTag(w, ElementListEnd)
}

// writeNamed emits a section or list start: the tag, a u8 name length,
// and the name. The length check happens before the tag is written.
func writeNamed(w io.Writer, tag ElementType, name string) error {
	if len(name) > MaxNameLen {
		return errors.Wrapf(ErrNameTooLong, "name %q is %d bytes", name, len(name))
	}
	if err := writeTag(w, tag); err != nil {
		return err
	}
	return writeName(w, name)
}

func writeTag(w io.Writer, tag ElementType) error {
	_, err := w.Write([]byte{byte(tag)})
	return err
}

func writeName(w io.Writer, name string) error {
	if _, err := w.Write([]byte{byte(len(name))}); err != nil {
		return err
	}
	_, err := io.WriteString(w, name)
	return err
}

func writeValue(w io.Writer, value []byte) error {
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(value)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(value)
	return err
}
