// Package strategies contains the per-instrument signal engines that turn
// indicator values into buy/sell order intents.
package strategies

import (
	"math/rand"

	"github.com/KorNxHaidar/Trade-Sim/ledger"
)

// Handler is the order-routing capability a strategy is given. It is the
// narrow interface between a signal engine and whatever executes orders; in
// simulation the ledger implements it.
type Handler interface {
	SubmitOrder(ledger.OrderIntent) error
	CashBalance() float64
}

// Action summarizes what a strategy did on one tick.
type Action int

const (
	Hold Action = iota
	Buy
	Sell
)

func (a Action) String() string {
	switch a {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "HOLD"
	}
}

// Outcome is the per-tick result the driver consumes instead of a swallowed
// exception: a hold, an accepted order, or a dropped intent.
type Outcome struct {
	Action Action
	Order  *ledger.OrderIntent // the accepted intent, nil on hold
	Reject *ledger.RejectError // set when the handler dropped the intent
	Reason string              // exit reason for sells: StopLoss, TakeProfit, Signal
}

// AllocFunc returns an allocation fraction in [min, max) for sizing a buy.
// Injecting it keeps position sizing deterministic under test.
type AllocFunc func(min, max float64) float64

// UniformAlloc draws the allocation fraction uniformly from [min, max).
func UniformAlloc(rng *rand.Rand) AllocFunc {
	return func(min, max float64) float64 {
		return min + rng.Float64()*(max-min)
	}
}
