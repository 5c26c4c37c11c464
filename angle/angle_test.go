package angle_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringmaze/angle"
)

// TestNew_Reduces verifies lowest-terms storage and wrapping into [0,1).
func TestNew_Reduces(t *testing.T) {
	cases := []struct {
		name     string
		num, den uint32
		wantNum  uint32
		wantDen  uint32
	}{
		{"AlreadyReduced", 1, 3, 1, 3},
		{"Reduce", 6, 8, 3, 4},
		{"ZeroNumerator", 0, 17, 0, 1},
		{"WholeTurn", 5, 5, 0, 1},
		{"Wraps", 9, 4, 1, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := angle.New(tc.num, tc.den)
			assert.Equal(t, tc.wantNum, a.Num())
			assert.Equal(t, tc.wantDen, a.Den())
		})
	}
}

// TestNew_ZeroDenominatorPanics keeps the programmer-error contract.
func TestNew_ZeroDenominatorPanics(t *testing.T) {
	require.Panics(t, func() { angle.New(1, 0) })
}

// TestEquality checks that equal fractions compare equal as map keys.
func TestEquality(t *testing.T) {
	seen := map[angle.Angle]bool{angle.New(2, 4): true}
	assert.True(t, seen[angle.New(1, 2)])
	assert.True(t, seen[angle.New(50, 100)])
	assert.False(t, seen[angle.New(1, 3)])
	assert.Equal(t, angle.Zero, angle.New(0, 9))
}

// TestZeroValue checks that the zero value is a usable 0/1.
func TestZeroValue(t *testing.T) {
	var a angle.Angle
	assert.Equal(t, angle.Zero, a)
	assert.Equal(t, angle.New(0, 1), a)
	assert.Equal(t, uint32(1), a.Den())
	assert.Equal(t, "0/1", a.String())
	assert.Equal(t, 0, a.Cmp(angle.New(0, 7)))
	assert.Equal(t, angle.New(1, 4), a.Add(angle.New(1, 4)))

	seen := map[angle.Angle]bool{angle.New(0, 5): true}
	assert.True(t, seen[a])
}

// TestAddSub covers wrap-around in both directions.
func TestAddSub(t *testing.T) {
	assert.Equal(t, angle.New(5, 6), angle.New(1, 2).Add(angle.New(1, 3)))
	assert.Equal(t, angle.New(1, 12), angle.New(3, 4).Add(angle.New(1, 3)))
	assert.Equal(t, angle.Zero, angle.New(34, 35).Add(angle.New(1, 35)))
	assert.Equal(t, angle.New(34, 35), angle.Zero.Sub(angle.New(1, 35)))
	assert.Equal(t, angle.New(1, 6), angle.New(1, 2).Sub(angle.New(1, 3)))
	assert.Equal(t, angle.New(5, 6), angle.New(1, 6).Sub(angle.New(1, 3)))
}

// TestAddSub_RoundTrip checks next(prev(x)) == x over a full lattice.
func TestAddSub_RoundTrip(t *testing.T) {
	const den = 35
	step := angle.New(1, den)
	for k := uint32(0); k < den; k++ {
		a := angle.New(k, den)
		require.Equal(t, a, a.Add(step).Sub(step), "k=%d", k)
		require.Equal(t, a, a.Sub(step).Add(step), "k=%d", k)
	}
}

// TestCmp verifies exact ordering, including values that floats confuse.
func TestCmp(t *testing.T) {
	assert.Equal(t, -1, angle.New(3, 20).Cmp(angle.New(1, 4)))
	assert.Equal(t, 1, angle.New(3, 4).Cmp(angle.New(1, 2)))
	assert.Equal(t, 0, angle.New(2, 6).Cmp(angle.New(1, 3)))
	assert.True(t, angle.Zero.Less(angle.New(1, 65536)))

	// 1/3 and 21845/65535 are equal; 21845/65536 is strictly smaller.
	assert.Equal(t, 0, angle.New(1, 3).Cmp(angle.New(21845, 65535)))
	assert.True(t, angle.New(21845, 65536).Less(angle.New(1, 3)))

	as := []angle.Angle{angle.New(3, 4), angle.Zero, angle.New(1, 7), angle.New(1, 2)}
	sort.Slice(as, func(i, j int) bool { return as[i].Less(as[j]) })
	assert.Equal(t, []angle.Angle{angle.Zero, angle.New(1, 7), angle.New(1, 2), angle.New(3, 4)}, as)
}

// TestMultipleOf checks lattice membership and the scaled index.
func TestMultipleOf(t *testing.T) {
	a := angle.New(2, 3)
	assert.True(t, a.MultipleOf(3))
	assert.True(t, a.MultipleOf(6))
	assert.False(t, a.MultipleOf(4))
	assert.False(t, a.MultipleOf(0))
	assert.True(t, angle.Zero.MultipleOf(5))

	k, ok := a.Scaled(12)
	require.True(t, ok)
	assert.Equal(t, uint32(8), k)

	_, ok = angle.New(1, 4).Scaled(6)
	assert.False(t, ok)
}

// TestConversions checks the float views used by renderers.
func TestConversions(t *testing.T) {
	assert.InDelta(t, 0.25, angle.New(1, 4).Turns(), 1e-12)
	assert.InDelta(t, math.Pi, angle.New(1, 2).Radians(), 1e-12)
	assert.Equal(t, "3/4", angle.New(6, 8).String())
	assert.Equal(t, "0/1", angle.Zero.String())
}
