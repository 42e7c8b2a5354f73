package wire

import "bytes"

// Kind discriminates the three shapes a Value can take.
type Kind uint8

const (
	KindScalar Kind = iota
	KindSection
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSection:
		return "section"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is one node in a message tree: a Scalar, a *Section, or a List.
type Value interface {
	Kind() Kind
	Equals(other Value) bool
}

// Scalar is an opaque byte string. Text values are UTF-8; raw binary
// values (certificate data and the like) use the same representation.
type Scalar []byte

func (s Scalar) Kind() Kind {
	return KindScalar
}

func (s Scalar) Equals(other Value) bool {
	o, ok := other.(Scalar)
	return ok && bytes.Equal(s, o)
}

func (s Scalar) String() string {
	return string(s)
}

// List is an ordered sequence of scalar items. The grammar does not
// admit sections or nested lists as items.
type List []Scalar

func (l List) Kind() Kind {
	return KindList
}

func (l List) Equals(other Value) bool {
	o, ok := other.(List)
	if !ok || len(l) != len(o) {
		return false
	}
	for i, item := range l {
		if !item.Equals(o[i]) {
			return false
		}
	}
	return true
}

// Strings returns the list items as strings.
func (l List) Strings() []string {
	out := make([]string, len(l))
	for i, item := range l {
		out[i] = string(item)
	}
	return out
}

// Section is an insertion-ordered mapping of names to values. The zero
// value is an empty section ready for use, though callers should
// prefer NewSection.
type Section struct {
	keys   []string
	values map[string]Value
}

func NewSection() *Section {
	return &Section{
		values: make(map[string]Value),
	}
}

func (s *Section) Kind() Kind {
	return KindSection
}

// Set inserts or replaces the value stored under key. Replacing keeps
// the key's original position, so duplicate keys on decode resolve
// last-write-wins without reordering.
func (s *Section) Set(key string, value Value) {
	if s.values == nil {
		s.values = make(map[string]Value)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

func (s *Section) Get(key string) (Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// GetScalar returns the scalar stored under key, or nil if the key is
// absent or holds a different shape.
func (s *Section) GetScalar(key string) Scalar {
	v, ok := s.values[key]
	if !ok {
		return nil
	}
	sc, _ := v.(Scalar)
	return sc
}

// GetSection returns the subsection stored under key, or nil.
func (s *Section) GetSection(key string) *Section {
	v, ok := s.values[key]
	if !ok {
		return nil
	}
	sub, _ := v.(*Section)
	return sub
}

// GetList returns the list stored under key, or nil.
func (s *Section) GetList(key string) List {
	v, ok := s.values[key]
	if !ok {
		return nil
	}
	l, _ := v.(List)
	return l
}

// Keys returns the section's keys in insertion order. The returned
// slice is shared with the section and must not be mutated.
func (s *Section) Keys() []string {
	return s.keys
}

func (s *Section) Len() int {
	return len(s.keys)
}

// Equals reports structural equality: same keys in the same order,
// each mapped to an equal value.
func (s *Section) Equals(other Value) bool {
	o, ok := other.(*Section)
	if !ok || len(s.keys) != len(o.keys) {
		return false
	}
	for i, key := range s.keys {
		if o.keys[i] != key {
			return false
		}
		if !s.values[key].Equals(o.values[key]) {
			return false
		}
	}
	return true
}
