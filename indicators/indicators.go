// Package indicators provides the technical analysis math used by the
// signal engine. All functions are pure: for a fixed price sequence and
// parameters the output is exactly reproducible.
//
// Short input is not an error. Every function reports ok=false until it has
// enough samples; callers treat that as "hold".
package indicators

// Params are the indicator periods for one strategy instance.
type Params struct {
	RSIPeriod  int
	MACDFast   int
	MACDSlow   int
	MACDSignal int
}

// Snapshot is the per-tick indicator view derived from a price window. It is
// ephemeral: recomputed every tick, never persisted.
type Snapshot struct {
	RSI  float64
	MACD MACDValue
}

// Compute evaluates RSI and MACD over prices (oldest to newest). ok is false
// until both are defined.
func Compute(prices []float64, p Params) (Snapshot, bool) {
	rsi, rsiOK := RSI(prices, p.RSIPeriod)
	macd, macdOK := MACD(prices, p.MACDFast, p.MACDSlow, p.MACDSignal)
	if !rsiOK || !macdOK {
		return Snapshot{}, false
	}
	return Snapshot{RSI: rsi, MACD: macd}, true
}
