package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"vwire/wire"
)

func printTree(w io.Writer, s *wire.Section, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, key := range s.Keys() {
		v, _ := s.Get(key)
		switch val := v.(type) {
		case wire.Scalar:
			fmt.Fprintf(w, "%s%s = %s\n", indent, key, renderScalar(val))
		case *wire.Section:
			fmt.Fprintf(w, "%s%s {\n", indent, key)
			printTree(w, val, depth+1)
			fmt.Fprintf(w, "%s}\n", indent)
		case wire.List:
			items := make([]string, len(val))
			for i, item := range val {
				items[i] = renderScalar(item)
			}
			fmt.Fprintf(w, "%s%s = [%s]\n", indent, key, strings.Join(items, ", "))
		}
	}
}

func flattenSection(s *wire.Section, prefix string) [][]string {
	var rows [][]string
	for _, key := range s.Keys() {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		v, _ := s.Get(key)
		switch val := v.(type) {
		case wire.Scalar:
			rows = append(rows, []string{path, renderScalar(val)})
		case *wire.Section:
			rows = append(rows, flattenSection(val, path)...)
		case wire.List:
			items := make([]string, len(val))
			for i, item := range val {
				items[i] = renderScalar(item)
			}
			rows = append(rows, []string{path, strings.Join(items, ", ")})
		}
	}
	return rows
}

func sectionToJSON(s *wire.Section) map[string]interface{} {
	out := make(map[string]interface{}, s.Len())
	for _, key := range s.Keys() {
		v, _ := s.Get(key)
		switch val := v.(type) {
		case wire.Scalar:
			out[key] = renderScalar(val)
		case *wire.Section:
			out[key] = sectionToJSON(val)
		case wire.List:
			items := make([]string, len(val))
			for i, item := range val {
				items[i] = renderScalar(item)
			}
			out[key] = items
		}
	}
	return out
}

// renderScalar shows text values as-is and binary values as hex.
func renderScalar(s wire.Scalar) string {
	isControl := func(r rune) bool {
		return r < 0x20 && r != '\t'
	}
	if utf8.Valid(s) && strings.IndexFunc(string(s), isControl) < 0 {
		return string(s)
	}
	return "0x" + hex.EncodeToString(s)
}
