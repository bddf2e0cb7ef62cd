package strategies

import (
	"fmt"
	"math"

	"github.com/KorNxHaidar/Trade-Sim/indicators"
	"github.com/KorNxHaidar/Trade-Sim/ledger"
	"github.com/KorNxHaidar/Trade-Sim/market"
)

// Exit reasons recorded on sell outcomes.
const (
	ReasonStopLoss   = "StopLoss"
	ReasonTakeProfit = "TakeProfit"
	ReasonSignal     = "Signal"
)

// RSIMACD trades a single instrument long-only:
//
//   - enter when RSI is oversold and the MACD line crosses strictly above
//     its signal line, sizing the order from a random fraction of available
//     cash;
//   - exit on stop-loss, take-profit, or an overbought RSI combined with a
//     strict downward MACD crossover, in that priority order.
//
// It emits at most one order intent per tick and holds whenever the
// indicators are still warming up. State only changes when the handler
// accepts the intent; a rejected intent is dropped and reported in the
// Outcome.
type RSIMACD struct {
	cfg     Config
	params  indicators.Params
	handler Handler
	alloc   AllocFunc
	hist    *market.History

	long       bool
	volume     int64
	entryPrice float64
	stopLoss   float64
	takeProfit float64

	prevLine   float64
	prevSignal float64
	havePrev   bool
}

// NewRSIMACD validates cfg and builds an engine. The allocation source is
// required so sizing is never implicitly tied to global randomness.
func NewRSIMACD(cfg Config, h Handler, alloc AllocFunc) (*RSIMACD, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("strategy config: order handler is required")
	}
	if alloc == nil {
		return nil, fmt.Errorf("strategy config: allocation source is required")
	}
	return &RSIMACD{
		cfg:     cfg,
		handler: h,
		alloc:   alloc,
		hist:    market.NewHistory(cfg.Window),
		params: indicators.Params{
			RSIPeriod:  cfg.RSIPeriod,
			MACDFast:   cfg.MACDFast,
			MACDSlow:   cfg.MACDSlow,
			MACDSignal: cfg.MACDSignal,
		},
	}, nil
}

// Symbol returns the instrument this engine trades.
func (s *RSIMACD) Symbol() string { return s.cfg.Symbol }

// Long reports whether the engine currently holds a position.
func (s *RSIMACD) Long() bool { return s.long }

// OnTick consumes the next tick for this instrument. The caller must have
// validated the tick; malformed ticks must never reach the price history.
func (s *RSIMACD) OnTick(t market.Tick) Outcome {
	if t.Symbol != s.cfg.Symbol {
		return Outcome{Action: Hold}
	}

	s.hist.Append(t.Price)

	snap, ok := indicators.Compute(s.hist.Prices(), s.params)
	if !ok {
		return Outcome{Action: Hold}
	}

	// Crossover detection needs the previous tick's MACD pair.
	crossUp := s.havePrev && s.prevLine <= s.prevSignal && snap.MACD.Line > snap.MACD.Signal
	crossDown := s.havePrev && s.prevLine >= s.prevSignal && snap.MACD.Line < snap.MACD.Signal
	s.prevLine = snap.MACD.Line
	s.prevSignal = snap.MACD.Signal
	s.havePrev = true

	if s.long {
		return s.checkExit(t, snap, crossDown)
	}
	if snap.RSI < s.cfg.Oversold && crossUp {
		return s.enter(t)
	}
	return Outcome{Action: Hold}
}

func (s *RSIMACD) checkExit(t market.Tick, snap indicators.Snapshot, crossDown bool) Outcome {
	var reason string
	switch {
	case t.Price <= s.stopLoss:
		reason = ReasonStopLoss
	case t.Price >= s.takeProfit:
		reason = ReasonTakeProfit
	case snap.RSI > s.cfg.Overbought && crossDown:
		reason = ReasonSignal
	default:
		return Outcome{Action: Hold}
	}

	intent := ledger.OrderIntent{
		Symbol: s.cfg.Symbol,
		Side:   ledger.Sell,
		Volume: s.volume,
		Price:  t.Price,
		Time:   t.Time,
	}
	if rej := s.submit(intent); rej != nil {
		return Outcome{Action: Hold, Reject: rej, Reason: reason}
	}

	s.long = false
	s.volume = 0
	s.entryPrice = 0
	s.stopLoss = 0
	s.takeProfit = 0
	return Outcome{Action: Sell, Order: &intent, Reason: reason}
}

func (s *RSIMACD) enter(t market.Tick) Outcome {
	frac := s.alloc(s.cfg.AllocMin, s.cfg.AllocMax)
	volume := int64(math.Floor(s.handler.CashBalance() * frac / t.Price))
	if volume <= 0 {
		// Not enough cash for a single share: no entry, no error.
		return Outcome{Action: Hold}
	}

	intent := ledger.OrderIntent{
		Symbol: s.cfg.Symbol,
		Side:   ledger.Buy,
		Volume: volume,
		Price:  t.Price,
		Time:   t.Time,
	}
	if rej := s.submit(intent); rej != nil {
		return Outcome{Action: Hold, Reject: rej}
	}

	s.long = true
	s.volume = volume
	s.entryPrice = t.Price
	s.stopLoss = t.Price * (1 - s.cfg.StopLossPct)
	s.takeProfit = t.Price * (1 + s.cfg.TakeProfitPct)
	return Outcome{Action: Buy, Order: &intent}
}

func (s *RSIMACD) submit(intent ledger.OrderIntent) *ledger.RejectError {
	err := s.handler.SubmitOrder(intent)
	if err == nil {
		return nil
	}
	if rej, ok := err.(*ledger.RejectError); ok {
		return rej
	}
	// Transport-level failures are not expected from a synchronous handler;
	// treat them like a rejection so the run keeps going.
	return &ledger.RejectError{Intent: intent, Reason: ledger.RejectReason(err.Error())}
}
