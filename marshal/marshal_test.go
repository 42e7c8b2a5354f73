package marshal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vwire/wire"
)

type rootSection struct {
	Key1     string      `vici:"key1"`
	Section1 mainSection `vici:"section1"`
}

type mainSection struct {
	SubSection subSection `vici:"sub-section"`
	List1      []string   `vici:"list1"`
}

type subSection struct {
	Key2 string `vici:"key2"`
}

// The encoding example from the protocol documentation.
var exampleBytes = []byte{
	3, 4, 'k', 'e', 'y', '1', 0, 6, 'v', 'a', 'l', 'u', 'e', '1',
	1, 8, 's', 'e', 'c', 't', 'i', 'o', 'n', '1',
	1, 11, 's', 'u', 'b', '-', 's', 'e', 'c', 't', 'i', 'o', 'n',
	3, 4, 'k', 'e', 'y', '2', 0, 6, 'v', 'a', 'l', 'u', 'e', '2',
	2,
	4, 5, 'l', 'i', 's', 't', '1',
	5, 0, 5, 'i', 't', 'e', 'm', '1',
	5, 0, 5, 'i', 't', 'e', 'm', '2',
	6,
	2,
}

func exampleRecord() rootSection {
	return rootSection{
		Key1: "value1",
		Section1: mainSection{
			SubSection: subSection{Key2: "value2"},
			List1:      []string{"item1", "item2"},
		},
	}
}

func TestMarshalMessage_EncodingExample(t *testing.T) {
	data, err := MarshalMessage(exampleRecord())
	require.NoError(t, err)
	require.Equal(t, exampleBytes, data)
}

func TestUnmarshalMessage_EncodingExample(t *testing.T) {
	var decoded rootSection
	require.NoError(t, UnmarshalMessage(exampleBytes, &decoded))
	require.Equal(t, exampleRecord(), decoded)
}

type pool struct {
	Base    string  `vici:"base"`
	Size    uint32  `vici:"size"`
	Online  uint32  `vici:"online"`
	Offline uint32  `vici:"offline"`
	Leases  []lease `vici:"leases"`
}

type lease struct {
	Address  string  `vici:"address"`
	Identity *string `vici:"identity"`
	Status   string  `vici:"status"`
}

func strPtr(s string) *string {
	return &s
}

func poolRecord() map[string]pool {
	return map[string]pool{
		"pool-01": {
			Base:    "192.0.2.1",
			Size:    4,
			Online:  3,
			Offline: 1,
			Leases: []lease{
				{Address: "192.0.2.2", Identity: strPtr("identity-01"), Status: "online"},
				{Address: "192.0.2.3", Identity: strPtr("identity-02"), Status: "online"},
				{Address: "192.0.2.4", Identity: strPtr("identity-03"), Status: "online"},
				{Address: "192.0.2.5", Identity: nil, Status: "offline"},
			},
		},
	}
}

func poolSection() *wire.Section {
	leaseSec := func(addr, identity, status string) *wire.Section {
		s := wire.NewSection()
		s.Set("address", wire.Scalar(addr))
		s.Set("identity", wire.Scalar(identity))
		s.Set("status", wire.Scalar(status))
		return s
	}

	leases := wire.NewSection()
	leases.Set("0", leaseSec("192.0.2.2", "identity-01", "online"))
	leases.Set("1", leaseSec("192.0.2.3", "identity-02", "online"))
	leases.Set("2", leaseSec("192.0.2.4", "identity-03", "online"))
	leases.Set("3", leaseSec("192.0.2.5", "", "offline"))

	p := wire.NewSection()
	p.Set("base", wire.Scalar("192.0.2.1"))
	p.Set("size", wire.Scalar("4"))
	p.Set("online", wire.Scalar("3"))
	p.Set("offline", wire.Scalar("1"))
	p.Set("leases", leases)

	root := wire.NewSection()
	root.Set("pool-01", p)
	return root
}

// A slice of records marshals as a section of numbered subsections,
// the way the daemon reports lease pools.
func TestMarshal_NumberedSubsections(t *testing.T) {
	sec, err := Marshal(poolRecord())
	require.NoError(t, err)
	require.True(t, poolSection().Equals(sec), "marshaled tree differs from expected")
}

func TestUnmarshal_NumberedSubsections(t *testing.T) {
	data, err := wire.EncodeToBytes(poolSection())
	require.NoError(t, err)

	var decoded map[string]pool
	require.NoError(t, UnmarshalMessage(data, &decoded))
	require.Equal(t, poolRecord(), decoded)
}

type kitchenSink struct {
	Name     string            `vici:"name"`
	Enabled  bool              `vici:"enabled"`
	Count    int               `vici:"count"`
	Ratio    float64           `vici:"ratio"`
	Raw      []byte            `vici:"raw"`
	Tags     []string          `vici:"tags"`
	Options  map[string]string `vici:"options"`
	Ignored  string            `vici:"-"`
	Optional string            `vici:"optional,omitempty"`
	Untagged uint16
}

func TestMarshal_RoundTrip(t *testing.T) {
	in := kitchenSink{
		Name:     "test",
		Enabled:  true,
		Count:    -42,
		Ratio:    0.25,
		Raw:      []byte{0x00, 0xff},
		Tags:     []string{"a", "b"},
		Options:  map[string]string{"k1": "v1", "k2": "v2"},
		Ignored:  "dropped",
		Untagged: 7,
	}

	data, err := MarshalMessage(in)
	require.NoError(t, err)

	var out kitchenSink
	require.NoError(t, UnmarshalMessage(data, &out))

	in.Ignored = ""
	require.Equal(t, in, out)
}

func TestMarshal_OmitEmpty(t *testing.T) {
	sec, err := Marshal(kitchenSink{Name: "n"})
	require.NoError(t, err)
	_, ok := sec.Get("optional")
	require.False(t, ok)
	// Without omitempty the zero value is still emitted.
	_, ok = sec.Get("name")
	require.True(t, ok)
}

func TestMarshal_ScalarConventions(t *testing.T) {
	sec, err := Marshal(struct {
		Yes bool `vici:"yes-field"`
		No  bool `vici:"no-field"`
	}{Yes: true})
	require.NoError(t, err)
	require.Equal(t, wire.Scalar("yes"), sec.GetScalar("yes-field"))
	require.Equal(t, wire.Scalar("no"), sec.GetScalar("no-field"))
}

func TestMarshal_Errors(t *testing.T) {
	_, err := Marshal(nil)
	require.Error(t, err)

	_, err = Marshal("not a record")
	require.Error(t, err)

	_, err = Marshal(struct {
		C chan int `vici:"c"`
	}{})
	require.Error(t, err)

	_, err = Marshal(map[int]string{1: "x"})
	require.Error(t, err)
}

func TestUnmarshal_Errors(t *testing.T) {
	sec := wire.NewSection()
	sec.Set("enabled", wire.Scalar("maybe"))

	var out kitchenSink
	require.Error(t, Unmarshal(sec, out))
	require.Error(t, Unmarshal(sec, &out))

	sec = wire.NewSection()
	sec.Set("count", wire.Scalar("not-a-number"))
	require.Error(t, Unmarshal(sec, &out))
}
