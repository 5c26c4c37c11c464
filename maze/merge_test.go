package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/ringmaze/circular"
)

func TestBorderSet_Merge(t *testing.T) {
	a, b, c, d := circular.At(2, 0, 1), circular.At(2, 1, 6), circular.At(2, 1, 3), circular.At(2, 1, 2)

	cases := []struct {
		name  string
		walls [][2]circular.Coordinate
		want  []Border
	}{
		{"Forward", [][2]circular.Coordinate{{a, b}, {b, c}}, []Border{{a, c}}},
		{"Backward", [][2]circular.Coordinate{{b, c}, {a, b}}, []Border{{a, c}}},
		{"Bridge", [][2]circular.Coordinate{{a, b}, {c, d}, {b, c}}, []Border{{a, d}}},
		{"Apart", [][2]circular.Coordinate{{a, b}, {c, d}}, []Border{{a, b}, {c, d}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newBorderSet(0)
			for _, w := range tc.walls {
				s.merge(w[0], w[1])
			}
			assert.Equal(t, tc.want, s.list())
			assert.Equal(t, len(tc.want), s.count())
		})
	}
}

// TestBorderSet_Closes joins the two halves of a two-coordinate ring.
func TestBorderSet_Closes(t *testing.T) {
	a, b := circular.At(1, 0, 1), circular.At(1, 1, 2)
	s := newBorderSet(0)
	s.merge(a, b)
	got := s.merge(b, a)

	assert.True(t, got.IsClosed())
	assert.Equal(t, []Border{{a, a}}, s.list())

	// Closed borders are not indexed, so a later wall starts a new border.
	s.merge(a, b)
	assert.Equal(t, 2, s.count())
}

// TestBorderSet_TypesStayApart keeps a line and an arc through the same point separate.
func TestBorderSet_TypesStayApart(t *testing.T) {
	in, mid, out := circular.At(0, 0, 1), circular.At(1, 0, 1), circular.At(2, 0, 1)
	side := circular.At(1, 1, 4)

	s := newBorderSet(0)
	s.merge(in, mid)
	s.merge(mid, side)
	s.merge(mid, out)

	assert.Equal(t, []Border{{mid, side}, {in, out}}, s.list())
	assert.Equal(t, Arc, s.list()[0].Type())
	assert.Equal(t, Line, s.list()[1].Type())
}

func TestAdjacent(t *testing.T) {
	c := circular.At(1, 1, 4)
	assert.True(t, adjacent(c, circular.At(2, 1, 4), circular.Outward))
	assert.True(t, adjacent(c, circular.At(0, 1, 4), circular.Inward))
	assert.True(t, adjacent(c, circular.At(1, 3, 8), circular.Clockwise))
	assert.False(t, adjacent(c, circular.At(2, 3, 8), circular.Outward))
	assert.False(t, adjacent(c, circular.At(2, 1, 4), circular.Inward))
	assert.False(t, adjacent(c, circular.At(0, 1, 4), circular.CounterClockwise))
}
