package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSection_SetReplacesInPlace(t *testing.T) {
	s := NewSection()
	s.Set("a", Scalar("1"))
	s.Set("b", Scalar("2"))
	s.Set("a", Scalar("3"))

	require.Equal(t, []string{"a", "b"}, s.Keys())
	require.Equal(t, Scalar("3"), s.GetScalar("a"))
	require.Equal(t, 2, s.Len())
}

func TestSection_TypedGetters(t *testing.T) {
	s := NewSection()
	s.Set("scalar", Scalar("v"))
	s.Set("section", NewSection())
	s.Set("list", List{Scalar("x")})

	require.NotNil(t, s.GetSection("section"))
	require.Nil(t, s.GetSection("scalar"))
	require.Nil(t, s.GetScalar("list"))
	require.Equal(t, []string{"x"}, s.GetList("list").Strings())
	require.Nil(t, s.GetList("missing"))
}

func TestEquals_OrderSensitive(t *testing.T) {
	a := NewSection()
	a.Set("x", Scalar("1"))
	a.Set("y", Scalar("2"))

	b := NewSection()
	b.Set("y", Scalar("2"))
	b.Set("x", Scalar("1"))

	require.False(t, a.Equals(b))

	c := NewSection()
	c.Set("x", Scalar("1"))
	c.Set("y", Scalar("2"))
	require.True(t, a.Equals(c))
}

func TestEquals_ShapeMismatch(t *testing.T) {
	require.False(t, Scalar("x").Equals(List{Scalar("x")}))
	require.False(t, List{}.Equals(NewSection()))
	require.False(t, NewSection().Equals(Scalar("")))
}
