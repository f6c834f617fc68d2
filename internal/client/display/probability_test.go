package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollisionProbability_ZeroForSmallN(t *testing.T) {
	assert.Equal(t, 0.0, CollisionProbability(0))
	assert.Equal(t, 0.0, CollisionProbability(1))
	assert.Equal(t, 0.0, CollisionProbability(-5))
	assert.Equal(t, "0%", FormatProbability(0, false))
	assert.Equal(t, "0%", FormatProbability(1, true))
}

func TestCollisionProbability_Monotonic(t *testing.T) {
	prev := CollisionProbability(0)
	for _, n := range []int64{1, 2, 3, 10, 100, 1_000, 123_456, 10_000_000, 1 << 40, 1 << 60} {
		p := CollisionProbability(n)
		assert.GreaterOrEqual(t, p, prev, "n=%d", n)
		prev = p
	}
}

func TestCollisionProbability_Formula(t *testing.T) {
	assert.InDelta(t, 4*100/1.06e37, CollisionProbability(2), 1e-50)
}

func TestFormatProbability(t *testing.T) {
	tests := []struct {
		name    string
		n       int64
		compact bool
		want    string
	}{
		// 2 -> 3.77e-35
		{"expanded", 2, false, "0." + strings.Repeat("0", 34) + "4%"},
		{"compact", 2, true, "4*10^-35%"},
		// 1e15 -> 9.43e-6
		{"expanded large", 1_000_000_000_000_000, false, "0.000009%"},
		{"compact large", 1_000_000_000_000_000, true, "9*10^-6%"},
		// 3.3e17 -> ~1.03%
		{"plain percent", 330_000_000_000_000_000, false, "1.03%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatProbability(tt.n, tt.compact))
		})
	}
}

func TestSplitExponent(t *testing.T) {
	coeff, exp := splitExponent(3.77e-35)
	assert.Equal(t, "4", coeff)
	assert.Equal(t, -35, exp)

	coeff, exp = splitExponent(0.0005)
	assert.Equal(t, "5", coeff)
	assert.Equal(t, -4, exp)
}
