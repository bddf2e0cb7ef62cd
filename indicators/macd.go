package indicators

// MACDValue is the MACD triple for the newest price in a window.
type MACDValue struct {
	Line   float64 // fast EMA minus slow EMA
	Signal float64 // EMA of the MACD line
	Hist   float64 // Line minus Signal
}

// MACD computes the Moving Average Convergence/Divergence over the full
// window. EMAs are plain recursive EMAs seeded with the first sample (no
// bias-correction pass), smoothing factor 2/(span+1). Reports ok=false until
// at least `slow` prices exist.
func MACD(prices []float64, fast, slow, signal int) (MACDValue, bool) {
	if fast <= 0 || slow <= 0 || signal <= 0 || len(prices) < slow {
		return MACDValue{}, false
	}

	line := make([]float64, len(prices))
	emaFast := newEMA(fast)
	emaSlow := newEMA(slow)
	for i, p := range prices {
		line[i] = emaFast.update(p) - emaSlow.update(p)
	}

	sig := newEMA(signal)
	var sigVal float64
	for _, v := range line {
		sigVal = sig.update(v)
	}

	last := line[len(line)-1]
	return MACDValue{
		Line:   last,
		Signal: sigVal,
		Hist:   last - sigVal,
	}, true
}

// ema is a recursive exponential moving average seeded with its first input.
type ema struct {
	alpha  float64
	value  float64
	seeded bool
}

func newEMA(span int) ema {
	return ema{alpha: 2.0 / float64(span+1)}
}

func (e *ema) update(x float64) float64 {
	if !e.seeded {
		e.value = x
		e.seeded = true
		return x
	}
	e.value = e.alpha*x + (1-e.alpha)*e.value
	return e.value
}
