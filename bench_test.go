package readcell

import "testing"

func BenchmarkReadCell_Get(b *testing.B) {
	c := New(int64(42))
	b.ReportAllocs()

	var v int64
	for i := 0; i < b.N; i++ {
		v = c.Get()
	}
	if v != 42 {
		b.Fatal("bad value")
	}
}

func BenchmarkFromCell(b *testing.B) {
	c := NewCell(int64(42))
	b.ReportAllocs()

	var v int64
	for i := 0; i < b.N; i++ {
		v = FromCell(c).Get()
	}
	if v != 42 {
		b.Fatal("bad value")
	}
}

func BenchmarkAsSliceOfCells(b *testing.B) {
	s := make([]int64, 1024)
	c := FromRef(&s)
	b.SetBytes(int64(len(s)) * 8)
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		cells := AsSliceOfCells(c)
		if len(cells) != len(s) {
			b.Fatal("bad length")
		}
	}
}
