package vector

import (
	"testing"

	"github.com/joshuapare/vectorkit/alloc"
)

// BenchmarkPushBack measures amortized append cost from empty.
func BenchmarkPushBack(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		v := New[int](nil)
		for i := range 1024 {
			if err := v.PushBack(i); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkPushBack_Reserved measures append with no reallocation.
func BenchmarkPushBack_Reserved(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		v := New[int](nil)
		if err := v.Reserve(1024); err != nil {
			b.Fatal(err)
		}
		for i := range 1024 {
			if err := v.PushBack(i); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkPushBack_Pool reuses released blocks across iterations.
func BenchmarkPushBack_Pool(b *testing.B) {
	opts := &Options[int]{Allocator: alloc.NewPool[int](nil)}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		v := New(opts)
		for i := range 256 {
			if err := v.PushBack(i); err != nil {
				b.Fatal(err)
			}
		}
		v.Release()
	}
}

// BenchmarkInsert_Front measures the shift cost of front insertion.
func BenchmarkInsert_Front(b *testing.B) {
	v := New[int](nil)
	if err := v.Reserve(b.N + 1); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := range b.N {
		if _, err := v.Insert(v.Begin(), i); err != nil {
			b.Fatal(err)
		}
		if v.Size() >= 512 {
			v.Clear()
		}
	}
}
