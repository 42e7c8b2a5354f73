/*
Package marshal maps typed Go records onto the generic wire value tree
and back. It is the only layer that decides how field names, optional
values, and scalar representations appear on the wire; package wire
itself moves opaque bytes.

Struct fields use the `vici` tag for wire names ("-" skips a field,
",omitempty" drops zero values); untagged exported fields use the
lowercased field name. Scalars follow the daemon's conventions: bools
are "yes"/"no", integers and floats are decimal strings, strings and
[]byte pass through verbatim. Slices of scalars become wire lists;
slices of structs or maps become a section of numbered subsections
("0", "1", ...), which is how the daemon represents them. Nil pointers
marshal to an empty value, and an empty value unmarshals into a nil
pointer.
*/
package marshal
