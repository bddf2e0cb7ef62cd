package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRSIInsufficientData(t *testing.T) {
	t.Parallel()

	_, ok := RSI(nil, 14)
	assert.False(t, ok)

	_, ok = RSI([]float64{100, 101, 102}, 14)
	assert.False(t, ok)

	_, ok = RSI([]float64{100, 101}, 0)
	assert.False(t, ok)
}

func TestRSIAllGains(t *testing.T) {
	t.Parallel()

	rsi, ok := RSI([]float64{100, 101, 102, 103, 104}, 5)
	assert.True(t, ok)
	assert.InDelta(t, 100, rsi, 1e-3)
}

func TestRSIAllLosses(t *testing.T) {
	t.Parallel()

	rsi, ok := RSI([]float64{104, 103, 102, 101, 100}, 5)
	assert.True(t, ok)
	assert.InDelta(t, 0, rsi, 1e-3)
}

func TestRSIBalanced(t *testing.T) {
	t.Parallel()

	// One gain of 1 and one loss of 1 in the window: rs = 1, RSI = 50.
	rsi, ok := RSI([]float64{10, 11, 10}, 2)
	assert.True(t, ok)
	assert.InDelta(t, 50, rsi, 1e-6)
}

func TestRSIUsesOnlyWindow(t *testing.T) {
	t.Parallel()

	// Heavy losses outside the window must not matter.
	rsi, ok := RSI([]float64{50, 40, 30, 31, 32}, 2)
	assert.True(t, ok)
	assert.InDelta(t, 100, rsi, 1e-3)
}

func TestRSIBounded(t *testing.T) {
	t.Parallel()

	seqs := [][]float64{
		{1, 1, 1, 1, 1},
		{100, 90, 110, 95, 105, 92, 108},
		{0.5, 0.25, 0.125, 0.5, 1.0},
		{212, 213.5, 212, 214, 215, 213, 212.5, 216},
	}
	for _, prices := range seqs {
		for period := 1; period <= len(prices); period++ {
			rsi, ok := RSI(prices, period)
			assert.True(t, ok)
			assert.GreaterOrEqual(t, rsi, 0.0)
			assert.LessOrEqual(t, rsi, 100.0)
		}
	}
}

func TestRSIDeterministic(t *testing.T) {
	t.Parallel()

	prices := []float64{100, 98, 97, 99, 102, 101, 103, 100, 99, 104}
	a, okA := RSI(prices, 5)
	b, okB := RSI(prices, 5)
	assert.True(t, okA)
	assert.True(t, okB)
	assert.Equal(t, a, b)
}
