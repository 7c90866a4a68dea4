package arena

import "testing"

func BenchmarkPush(b *testing.B) {
	b.ReportAllocs()

	a := New[int]()
	var sink Handle
	for b.Loop() {
		sink = a.Push(1)
	}
	_ = sink
}

// BenchmarkChurn measures the steady-state insert/remove cycle where every
// insert reuses the slot the previous remove just vacated.
func BenchmarkChurn(b *testing.B) {
	b.ReportAllocs()

	a := New[int]()
	h := a.Push(0)
	b.ResetTimer()
	for b.Loop() {
		a.Remove(h)
		h = a.Insert(1)
	}
}

func BenchmarkGet(b *testing.B) {
	b.ReportAllocs()

	a := New[int]()
	handles := make([]Handle, 1024)
	for i := range handles {
		handles[i] = a.Push(i)
	}

	var sink int
	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		v, _ := a.Get(handles[i&1023])
		sink = v
	}
	_ = sink
}

func BenchmarkGetStale(b *testing.B) {
	b.ReportAllocs()

	a := New[int]()
	h := a.Push(0)
	a.Remove(h)
	a.Insert(1) // reoccupy the slot so the stamp check does the work

	b.ResetTimer()
	for b.Loop() {
		if _, ok := a.Get(h); ok {
			b.Fatal("stale handle validated")
		}
	}
}

func BenchmarkValues(b *testing.B) {
	b.ReportAllocs()

	a := New[int]()
	for i := 0; i < 1024; i++ {
		h := a.Push(i)
		if i%3 == 0 {
			a.Remove(h)
		}
	}

	var sink int
	b.ResetTimer()
	for b.Loop() {
		for v := range a.Values() {
			sink += v
		}
	}
	_ = sink
}
