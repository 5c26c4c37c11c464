package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSweepAngles(t *testing.T) {
	cases := []struct {
		name       string
		a1, a2     float64
		wantSweep  float64
		wantLarger bool
	}{
		{"Forward", -math.Pi / 2, 0, math.Pi / 2, false},
		{"WrapsPastPi", 3 * math.Pi / 4, -3 * math.Pi / 4, math.Pi / 2, false},
		{"ThreeQuarters", 0, -math.Pi / 2, 3 * math.Pi / 2, true},
		{"SamePoint", 1, 1, 2 * math.Pi, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a1, a2 := sweepAngles(tc.a1, tc.a2)
			assert.Equal(t, tc.a1, a1)
			assert.Greater(t, a2, a1)
			assert.InDelta(t, tc.wantSweep, a2-a1, 1e-12)
			assert.Equal(t, tc.wantLarger, a2-a1 > math.Pi)
		})
	}
}
