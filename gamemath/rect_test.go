package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersectsSymmetric(t *testing.T) {
	rects := []Rect{
		NewRect(0, 0, 10, 10),
		NewRect(5, 5, 10, 10),
		NewRect(10, 0, 10, 10), // touches the first on its right edge
		NewRect(-3, -3, 2, 2),
		NewRect(2, 2, 0, 5),
		NewRect(2, 2, 5, 0),
		NewRect(-100, -100, 1000, 1000),
	}

	for i, a := range rects {
		for j, b := range rects {
			assert.Equal(t, a.Intersects(b), b.Intersects(a), "pair %d/%d", i, j)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 2, 2, 2), true},
		{"touching_x", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"touching_y", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"apart", NewRect(0, 0, 10, 10), NewRect(30, 30, 1, 1), false},
		{"zero_width", NewRect(2, 2, 0, 5), NewRect(0, 0, 10, 10), false},
		{"zero_height", NewRect(2, 2, 5, 0), NewRect(0, 0, 10, 10), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.a.Intersects(c.b))
		})
	}
}

func TestEmptyRectNeverIntersectsItself(t *testing.T) {
	for _, r := range []Rect{{}, NewRect(4, 4, 0, 10), NewRect(4, 4, 10, 0), NewRect(1, 1, -2, 3)} {
		assert.False(t, r.Intersects(r))
	}
}

func TestRectInflate(t *testing.T) {
	r := NewRect(0, 0, 100, 50).Inflate(-10, -10)
	assert.Equal(t, NewRect(10, 10, 80, 30), r)

	r = NewRect(0, 0, 100, 50).Inflate(5, 5)
	assert.Equal(t, NewRect(-5, -5, 110, 60), r)
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	assert.True(t, r.Contains(Vector{X: 0, Y: 0}))
	assert.True(t, r.Contains(Vector{X: 9.9, Y: 5}))
	assert.False(t, r.Contains(Vector{X: 10, Y: 5}))
	assert.False(t, r.Contains(Vector{X: -1, Y: 5}))
}
