package wire

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Handler receives one callback per element while Scan walks a wire
// stream. Callbacks arrive in stream order; Scan has already verified
// the element is valid for the currently open frame. Returning an
// error aborts the scan and propagates the error unchanged.
type Handler interface {
	BeginSection(name string) error
	EndSection() error
	KeyValue(key string, value []byte) error
	BeginList(name string) error
	ListItem(value []byte) error
	EndList() error
}

// Decode reads one complete message from r and returns its value
// tree. The input is untrusted: unknown tags, truncated elements,
// misplaced elements, unterminated sections or lists, and nesting
// beyond MaxDepth all fail with a typed error. Errors returned by r
// itself propagate unchanged.
func (c *Codec) Decode(r io.Reader) (*Section, error) {
	b := newTreeBuilder()
	if err := c.Scan(r, b); err != nil {
		return nil, err
	}
	return b.root(), nil
}

// Scan reads elements from r until the input is exhausted, invoking h
// once per element. It enforces the full grammar but builds no tree,
// so structural-mapping layers can consume a stream without
// materializing it.
func (c *Codec) Scan(r io.Reader, h Handler) error {
	s := &scanner{
		r:        r,
		maxDepth: c.maxDepth(),
	}
	return s.run(h)
}

type frameKind uint8

const (
	frameSection frameKind = iota
	frameList
)

// scanner is the decode state machine. The frame stack tracks the
// kind of each open structure; byte positions are carried for error
// reporting only.
type scanner struct {
	r        io.Reader
	frames   []frameKind
	maxDepth int
	pos      int
}

func (s *scanner) run(h Handler) error {
	for {
		tag, ok, err := s.readTag()
		if err != nil {
			return err
		}
		if !ok {
			if n := len(s.frames); n > 0 {
				return errors.Wrapf(ErrUnterminatedStructure, "%d frames open at position %d", n, s.pos)
			}
			return nil
		}

		switch ElementType(tag) {
		case ElementSectionStart:
			if err := s.push(frameSection); err != nil {
				return err
			}
			name, err := s.readName()
			if err != nil {
				return err
			}
			if err := h.BeginSection(name); err != nil {
				return err
			}
		case ElementSectionEnd:
			if err := s.pop(frameSection); err != nil {
				return err
			}
			if err := h.EndSection(); err != nil {
				return err
			}
		case ElementKeyValue:
			if s.inList() {
				return errors.Wrapf(ErrFrameKindMismatch, "key/value inside list at position %d", s.pos)
			}
			key, err := s.readName()
			if err != nil {
				return err
			}
			value, err := s.readValue()
			if err != nil {
				return err
			}
			if err := h.KeyValue(key, value); err != nil {
				return err
			}
		case ElementListStart:
			if err := s.push(frameList); err != nil {
				return err
			}
			name, err := s.readName()
			if err != nil {
				return err
			}
			if err := h.BeginList(name); err != nil {
				return err
			}
		case ElementListItem:
			if !s.inList() {
				return errors.Wrapf(ErrFrameKindMismatch, "list item outside list at position %d", s.pos)
			}
			value, err := s.readValue()
			if err != nil {
				return err
			}
			if err := h.ListItem(value); err != nil {
				return err
			}
		case ElementListEnd:
			if err := s.pop(frameList); err != nil {
				return err
			}
			if err := h.EndList(); err != nil {
				return err
			}
		default:
			return errors.Wrapf(ErrUnexpectedTag, "tag 0x%02x at position %d", tag, s.pos)
		}
	}
}

func (s *scanner) inList() bool {
	return len(s.frames) > 0 && s.frames[len(s.frames)-1] == frameList
}

// push opens a new frame. Sections and lists may only open inside a
// section frame, and the stack must stay within the depth bound.
func (s *scanner) push(kind frameKind) error {
	if s.inList() {
		return errors.Wrapf(ErrFrameKindMismatch, "%s inside list at position %d", kindName(kind), s.pos)
	}
	if len(s.frames) >= s.maxDepth {
		return errors.Wrapf(ErrMaxDepthExceeded, "depth %d at position %d", s.maxDepth, s.pos)
	}
	s.frames = append(s.frames, kind)
	return nil
}

func (s *scanner) pop(kind frameKind) error {
	if len(s.frames) == 0 {
		return errors.Wrapf(ErrFrameKindMismatch, "%s end with no open frame at position %d", kindName(kind), s.pos)
	}
	if top := s.frames[len(s.frames)-1]; top != kind {
		return errors.Wrapf(ErrFrameKindMismatch, "%s end closes open %s at position %d", kindName(kind), kindName(top), s.pos)
	}
	s.frames = s.frames[:len(s.frames)-1]
	return nil
}

func kindName(kind frameKind) string {
	if kind == frameList {
		return "list"
	}
	return "section"
}

// readTag reads the next tag byte. A clean end of input between
// elements returns ok=false rather than an error.
func (s *scanner) readTag() (byte, bool, error) {
	var buf [1]byte
	n, err := io.ReadFull(s.r, buf[:])
	s.pos += n
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return buf[0], true, nil
}

func (s *scanner) readName() (string, error) {
	var lenBuf [1]byte
	if err := s.readFull(lenBuf[:], "name length"); err != nil {
		return "", err
	}
	name := make([]byte, lenBuf[0])
	if err := s.readFull(name, "name"); err != nil {
		return "", err
	}
	return string(name), nil
}

func (s *scanner) readValue() ([]byte, error) {
	var lenBuf [2]byte
	if err := s.readFull(lenBuf[:], "value length"); err != nil {
		return nil, err
	}
	value := make([]byte, binary.BigEndian.Uint16(lenBuf[:]))
	if err := s.readFull(value, "value"); err != nil {
		return nil, err
	}
	return value, nil
}

// readFull reads exactly len(buf) bytes. Running out of input mid
// element is a truncation error; any other failure is the reader's
// own and propagates unchanged.
func (s *scanner) readFull(buf []byte, what string) error {
	n, err := io.ReadFull(s.r, buf)
	s.pos += n
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.Wrapf(ErrUnexpectedEOF, "reading %s at position %d", what, s.pos)
	}
	return err
}

// treeBuilder is the Handler behind Decode. The scanner has already
// validated frame discipline, so the builder only accumulates.
type treeBuilder struct {
	stack []*builderFrame
}

type builderFrame struct {
	name    string
	section *Section
	list    List
}

func newTreeBuilder() *treeBuilder {
	return &treeBuilder{
		stack: []*builderFrame{{section: NewSection()}},
	}
}

func (b *treeBuilder) root() *Section {
	return b.stack[0].section
}

func (b *treeBuilder) top() *builderFrame {
	return b.stack[len(b.stack)-1]
}

func (b *treeBuilder) BeginSection(name string) error {
	b.stack = append(b.stack, &builderFrame{name: name, section: NewSection()})
	return nil
}

func (b *treeBuilder) EndSection() error {
	done := b.top()
	b.stack = b.stack[:len(b.stack)-1]
	b.top().section.Set(done.name, done.section)
	return nil
}

func (b *treeBuilder) KeyValue(key string, value []byte) error {
	b.top().section.Set(key, Scalar(value))
	return nil
}

func (b *treeBuilder) BeginList(name string) error {
	b.stack = append(b.stack, &builderFrame{name: name, list: List{}})
	return nil
}

func (b *treeBuilder) ListItem(value []byte) error {
	f := b.top()
	f.list = append(f.list, Scalar(value))
	return nil
}

func (b *treeBuilder) EndList() error {
	done := b.top()
	b.stack = b.stack[:len(b.stack)-1]
	b.top().section.Set(done.name, done.list)
	return nil
}
