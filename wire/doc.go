/*
Package wire implements the tag-length-value message encoding used to
exchange hierarchical configuration and command data with the daemon.

A message is a flat sequence of tagged elements. Six element types exist:

	- Section start (0x01): u8 name length, followed by the name.
	- Section end (0x02): no payload.
	- Key/value (0x03): u8 key length, the key, u16 big-endian value
	  length, the value.
	- List start (0x04): u8 name length, followed by the name.
	- List item (0x05): u16 big-endian item length, followed by the item.
	- List end (0x06): no payload.

Values are opaque byte strings; whether they carry UTF-8 text or raw
binary data is decided by the layer mapping typed records onto the tree
(see package marshal). Names and keys are at most 255 bytes, values at
most 65535 bytes. The root of a message is an implicit, unnamed section
with no enclosing start/end markers, so an empty message is zero bytes
long.

In memory a message is a Value tree: Scalar, *Section or List. Sections
preserve insertion order, and a decoded section that contains the same
key twice keeps the last value (last-write-wins).

The easiest way to use this package is the Encode/Decode pair:

	root := wire.NewSection()
	root.Set("key1", wire.Scalar("value1"))
	err := wire.Encode(w, root)

	root, err := wire.Decode(r)

Callers that want to consume a message without building the tree can
implement Handler and use Scan, which emits one callback per element in
stream order while enforcing the same grammar.

Decoding limits are configured through Codec; the package-level
functions use a default Codec with a maximum nesting depth of
DefaultMaxDepth.
*/
package wire
