package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandle_Zero(t *testing.T) {
	assert.True(t, Handle{}.IsZero())

	a := New[string]()
	h := a.Push("Foo")
	assert.False(t, h.IsZero(), "issued handles are never the zero Handle")
	assert.Equal(t, uint64(1), h.Generation(), "stamps start at 1")
	assert.Equal(t, uint32(0), h.Slot())
}

func TestHandle_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b Handle
		want int
	}{
		{"equal", Handle{gen: 2, slot: 1}, Handle{gen: 2, slot: 1}, 0},
		{"slot dominates", Handle{gen: 9, slot: 0}, Handle{gen: 1, slot: 1}, -1},
		{"slot dominates reversed", Handle{gen: 1, slot: 1}, Handle{gen: 9, slot: 0}, 1},
		{"generation breaks ties", Handle{gen: 1, slot: 3}, Handle{gen: 2, slot: 3}, -1},
		{"generation breaks ties reversed", Handle{gen: 2, slot: 3}, Handle{gen: 1, slot: 3}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
		})
	}
}

func TestHandle_MapKey(t *testing.T) {
	a := New[string]()
	names := make(map[Handle]string)

	h0 := a.Push("Foo")
	h1 := a.Push("Bar")
	names[h0] = "first"
	names[h1] = "second"

	assert.Equal(t, "first", names[h0])
	assert.Equal(t, "second", names[h1])

	// A recycled slot yields a distinct key.
	a.Remove(h0)
	h2 := a.Insert("Baz")
	assert.Equal(t, h0.Slot(), h2.Slot())
	_, ok := names[h2]
	assert.False(t, ok)
}

func TestHandle_String(t *testing.T) {
	assert.Equal(t, "Handle{slot: 3, gen: 7}", Handle{gen: 7, slot: 3}.String())
}
