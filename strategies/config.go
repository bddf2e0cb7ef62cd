package strategies

import "fmt"

// Config holds all tunables for one RSIMACD instance. The two preset
// constructors mirror the intraday and long-term parameter sets this engine
// was originally tuned with; nothing in the engine assumes either.
type Config struct {
	Symbol string `json:"symbol" yaml:"symbol"`

	RSIPeriod  int     `json:"rsi_period" yaml:"rsi_period"`
	Oversold   float64 `json:"oversold" yaml:"oversold"`
	Overbought float64 `json:"overbought" yaml:"overbought"`

	MACDFast   int `json:"macd_fast" yaml:"macd_fast"`
	MACDSlow   int `json:"macd_slow" yaml:"macd_slow"`
	MACDSignal int `json:"macd_signal" yaml:"macd_signal"`

	// Fraction of available cash allocated per entry, drawn from
	// [AllocMin, AllocMax).
	AllocMin float64 `json:"alloc_min" yaml:"alloc_min"`
	AllocMax float64 `json:"alloc_max" yaml:"alloc_max"`

	StopLossPct   float64 `json:"stop_loss_pct" yaml:"stop_loss_pct"`     // 0.05 = exit 5% below entry
	TakeProfitPct float64 `json:"take_profit_pct" yaml:"take_profit_pct"` // 0.02 = exit 2% above entry

	Window int `json:"window" yaml:"window"` // price history capacity
}

// IntradayDefaults is the tighter variant: quick exits, small allocations.
func IntradayDefaults(symbol string) Config {
	return Config{
		Symbol:        symbol,
		RSIPeriod:     14,
		Oversold:      40,
		Overbought:    60,
		MACDFast:      5,
		MACDSlow:      15,
		MACDSignal:    5,
		AllocMin:      0.02,
		AllocMax:      0.03,
		StopLossPct:   0.05,
		TakeProfitPct: 0.02,
		Window:        60,
	}
}

// LongTermDefaults is the patient variant: wider stops, larger allocations.
func LongTermDefaults(symbol string) Config {
	return Config{
		Symbol:        symbol,
		RSIPeriod:     10,
		Oversold:      40,
		Overbought:    65,
		MACDFast:      5,
		MACDSlow:      20,
		MACDSignal:    5,
		AllocMin:      0.03,
		AllocMax:      0.05,
		StopLossPct:   0.06,
		TakeProfitPct: 0.04,
		Window:        60,
	}
}

// Validate is the construction-time gate: a bad configuration must stop the
// run before any tick is processed.
func (c Config) Validate() error {
	if c.Symbol == "" {
		return fmt.Errorf("strategy config: symbol is required")
	}
	if c.RSIPeriod <= 0 {
		return fmt.Errorf("strategy config: rsi_period must be positive, got %d", c.RSIPeriod)
	}
	if c.MACDFast <= 0 || c.MACDSlow <= 0 || c.MACDSignal <= 0 {
		return fmt.Errorf("strategy config: MACD periods must be positive, got %d/%d/%d",
			c.MACDFast, c.MACDSlow, c.MACDSignal)
	}
	if c.MACDSlow <= c.MACDFast {
		return fmt.Errorf("strategy config: macd_slow (%d) must exceed macd_fast (%d)",
			c.MACDSlow, c.MACDFast)
	}
	if c.Window <= 0 {
		return fmt.Errorf("strategy config: window must be positive, got %d", c.Window)
	}
	if c.Window < c.MACDSlow || c.Window < c.RSIPeriod {
		return fmt.Errorf("strategy config: window %d too small for periods (rsi %d, macd slow %d)",
			c.Window, c.RSIPeriod, c.MACDSlow)
	}
	if c.Oversold <= 0 || c.Overbought >= 100 || c.Oversold >= c.Overbought {
		return fmt.Errorf("strategy config: need 0 < oversold < overbought < 100, got %v/%v",
			c.Oversold, c.Overbought)
	}
	if c.AllocMin <= 0 || c.AllocMax >= 1 || c.AllocMin > c.AllocMax {
		return fmt.Errorf("strategy config: need 0 < alloc_min <= alloc_max < 1, got %v/%v",
			c.AllocMin, c.AllocMax)
	}
	if c.StopLossPct <= 0 || c.StopLossPct >= 1 {
		return fmt.Errorf("strategy config: stop_loss_pct must be in (0,1), got %v", c.StopLossPct)
	}
	if c.TakeProfitPct <= 0 {
		return fmt.Errorf("strategy config: take_profit_pct must be positive, got %v", c.TakeProfitPct)
	}
	return nil
}
