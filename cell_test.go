package readcell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCell(t *testing.T) {
	c := NewCell(1)
	require.Equal(t, 1, c.Get())

	c.Set(2)
	require.Equal(t, 2, c.Get())

	require.Equal(t, 2, c.Replace(3))
	require.Equal(t, 3, c.Get())
	require.Equal(t, 3, c.IntoInner())
}

func TestCell_Swap(t *testing.T) {
	a, b := NewCell("a"), NewCell("b")
	a.Swap(b)
	require.Equal(t, "b", a.Get())
	require.Equal(t, "a", b.Get())

	a.Swap(a)
	require.Equal(t, "b", a.Get(), "self swap is a no-op")
}

func TestCell_Take(t *testing.T) {
	c := NewCell([]byte("data"))
	require.Equal(t, []byte("data"), c.Take())
	require.Nil(t, c.Get())
}

func TestCell_FromMut(t *testing.T) {
	v := 10
	c := FromMut(&v)
	require.Equal(t, 10, c.Get())

	c.Set(20)
	require.Equal(t, 20, v, "cell writes land in the original location")

	v = 30
	require.Equal(t, 30, c.Get(), "cell reads observe the original location")
}

func TestCell_GetMut(t *testing.T) {
	c := NewCell(5)
	*c.GetMut() = 8
	require.Equal(t, 8, c.Get())
	require.Equal(t, 8, *(*int)(c.Ptr()))
}
