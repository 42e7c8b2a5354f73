package wire

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// canonicalBytes is the encoding example from the protocol
// documentation, reproduced byte for byte.
var canonicalBytes = []byte{
	// key1 = value1
	3, 4, 'k', 'e', 'y', '1', 0, 6, 'v', 'a', 'l', 'u', 'e', '1',
	// section1
	1, 8, 's', 'e', 'c', 't', 'i', 'o', 'n', '1',
	// sub-section
	1, 11, 's', 'u', 'b', '-', 's', 'e', 'c', 't', 'i', 'o', 'n',
	// key2 = value2
	3, 4, 'k', 'e', 'y', '2', 0, 6, 'v', 'a', 'l', 'u', 'e', '2',
	// sub-section end
	2,
	// list1
	4, 5, 'l', 'i', 's', 't', '1',
	// item1
	5, 0, 5, 'i', 't', 'e', 'm', '1',
	// item2
	5, 0, 5, 'i', 't', 'e', 'm', '2',
	// list1 end
	6,
	// section1 end
	2,
}

func canonicalTree() *Section {
	sub := NewSection()
	sub.Set("key2", Scalar("value2"))

	section1 := NewSection()
	section1.Set("sub-section", sub)
	section1.Set("list1", List{Scalar("item1"), Scalar("item2")})

	root := NewSection()
	root.Set("key1", Scalar("value1"))
	root.Set("section1", section1)
	return root
}

func TestEncode_CanonicalExample(t *testing.T) {
	data, err := EncodeToBytes(canonicalTree())
	require.NoError(t, err)
	require.Equal(t, canonicalBytes, data)
}

func TestEncode_EmptyRoot(t *testing.T) {
	data, err := EncodeToBytes(NewSection())
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestEncode_BoundaryLengths(t *testing.T) {
	maxName := strings.Repeat("n", MaxNameLen)
	maxValue := Scalar(bytes.Repeat([]byte{0xab}, MaxValueLen))

	root := NewSection()
	root.Set(maxName, maxValue)
	data, err := EncodeToBytes(root)
	require.NoError(t, err)

	decoded, err := DecodeBytes(data)
	require.NoError(t, err)
	require.True(t, root.Equals(decoded))
}

func TestEncode_NameTooLong(t *testing.T) {
	longName := strings.Repeat("n", MaxNameLen+1)

	root := NewSection()
	root.Set(longName, Scalar("v"))
	_, err := EncodeToBytes(root)
	require.Equal(t, ErrNameTooLong, errors.Cause(err))

	root = NewSection()
	root.Set(longName, NewSection())
	_, err = EncodeToBytes(root)
	require.Equal(t, ErrNameTooLong, errors.Cause(err))

	root = NewSection()
	root.Set(longName, List{})
	_, err = EncodeToBytes(root)
	require.Equal(t, ErrNameTooLong, errors.Cause(err))
}

func TestEncode_ValueTooLong(t *testing.T) {
	longValue := Scalar(make([]byte, MaxValueLen+1))

	root := NewSection()
	root.Set("key", longValue)
	_, err := EncodeToBytes(root)
	require.Equal(t, ErrValueTooLong, errors.Cause(err))

	root = NewSection()
	root.Set("list", List{longValue})
	_, err = EncodeToBytes(root)
	require.Equal(t, ErrValueTooLong, errors.Cause(err))
}

func TestEncode_NoPartialElementOnFailure(t *testing.T) {
	first := NewSection()
	first.Set("ok", Scalar("fine"))
	firstBytes, err := EncodeToBytes(first)
	require.NoError(t, err)

	// The invalid second element must not contribute any bytes.
	root := NewSection()
	root.Set("ok", Scalar("fine"))
	root.Set(strings.Repeat("n", MaxNameLen+1), Scalar("v"))

	var buf bytes.Buffer
	err = Encode(&buf, root)
	require.Equal(t, ErrNameTooLong, errors.Cause(err))
	require.Equal(t, firstBytes, buf.Bytes())
}

func TestEncode_ReencodeIdempotent(t *testing.T) {
	data, err := EncodeToBytes(canonicalTree())
	require.NoError(t, err)
	decoded, err := DecodeBytes(data)
	require.NoError(t, err)
	again, err := EncodeToBytes(decoded)
	require.NoError(t, err)
	require.Equal(t, data, again)
}
