package indicators

// rsiEpsilon keeps the relative-strength ratio finite when the window has no
// losses.
const rsiEpsilon = 1e-9

// RSI computes the Relative Strength Index over the last `period` samples of
// the difference series. The first sample has no predecessor and contributes
// a zero difference. Reports ok=false until at least `period` prices exist.
//
// The returned value is always within [0, 100] once defined.
func RSI(prices []float64, period int) (float64, bool) {
	if period <= 0 || len(prices) < period {
		return 0, false
	}

	var gainSum, lossSum float64
	// Walk the last `period` entries of the diff-aligned series. Index 0 of
	// the series is a zero diff, so diffs start at price index 1.
	for i := len(prices) - period; i < len(prices); i++ {
		if i == 0 {
			continue
		}
		d := prices[i] - prices[i-1]
		if d > 0 {
			gainSum += d
		} else {
			lossSum += -d
		}
	}

	meanGain := gainSum / float64(period)
	meanLoss := lossSum / float64(period)

	rs := meanGain / (meanLoss + rsiEpsilon)
	return 100 - 100/(1+rs), true
}
