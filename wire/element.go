package wire

// ElementType identifies one tag-prefixed unit in the wire stream.
type ElementType uint8

const (
	ElementSectionStart ElementType = iota + 1
	ElementSectionEnd
	ElementKeyValue
	ElementListStart
	ElementListItem
	ElementListEnd
)

const (
	// MaxNameLen is the maximum length in bytes of a section name,
	// list name, or key.
	MaxNameLen = 255

	// MaxValueLen is the maximum length in bytes of a key's value or
	// a list item.
	MaxValueLen = 65535
)

func (t ElementType) String() string {
	switch t {
	case ElementSectionStart:
		return "SectionStart"
	case ElementSectionEnd:
		return "SectionEnd"
	case ElementKeyValue:
		return "KeyValue"
	case ElementListStart:
		return "ListStart"
	case ElementListItem:
		return "ListItem"
	case ElementListEnd:
		return "ListEnd"
	default:
		return "unknown"
	}
}
