// Package ledger implements order execution and portfolio accounting for a
// simulation run: one cash balance, per-instrument positions, and the
// append-only trading statement the end-of-run summary is derived from.
package ledger

import (
	"fmt"
	"time"

	"github.com/KorNxHaidar/Trade-Sim/internal/id"
)

// Side of an order.
type Side string

const (
	Buy  Side = "Buy"
	Sell Side = "Sell"
)

// RejectReason classifies why an order intent was dropped.
type RejectReason string

const (
	InsufficientCash  RejectReason = "InsufficientCash"
	NonPositiveVolume RejectReason = "NonPositiveVolume"
	NoPosition        RejectReason = "NoPosition"
)

// RejectError is returned by SubmitOrder when an intent is not accepted.
// The ledger is left untouched; the caller simply drops the intent.
type RejectError struct {
	Reason RejectReason
	Intent OrderIntent
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("order rejected (%s): %s %s vol=%d px=%.4f",
		e.Reason, e.Intent.Side, e.Intent.Symbol, e.Intent.Volume, e.Intent.Price)
}

// OrderIntent is a request to trade at the current tick price. At most one is
// produced per instrument per tick.
type OrderIntent struct {
	Symbol string
	Side   Side
	Volume int64
	Price  float64
	Time   time.Time
}

// Position is the ledger's view of one instrument's holdings.
type Position struct {
	Symbol     string
	Volume     int64
	AmountCost float64 // total cost of the held volume
	AvgCost    float64 // AmountCost / Volume while Volume > 0, else 0
}

// StatementEntry is one accepted order. Entries are append-only and never
// mutated; they form the audit trail for the summary.
type StatementEntry struct {
	ID        string
	Time      time.Time
	Symbol    string
	Side      Side
	Volume    int64
	Price     float64
	Amount    float64 // Volume × Price
	CashAfter float64 // cash balance after the trade ("end line available")
}

// Ledger owns the cash balance and all position records for a run. It is the
// only component allowed to mutate them. Single-threaded by design: the
// driver replays ticks one at a time.
type Ledger struct {
	startCash float64
	cash      float64
	positions map[string]*Position
	lastPrice map[string]float64
	statement []StatementEntry

	wins    int
	matched int
}

// New returns a ledger starting with the given cash. A carried-over balance
// from a previous run is passed the same way.
func New(initialCash float64) *Ledger {
	return &Ledger{
		startCash: initialCash,
		cash:      initialCash,
		positions: make(map[string]*Position),
		lastPrice: make(map[string]float64),
	}
}

// CashBalance returns the available cash. Part of the handler capability
// consumed by strategies.
func (l *Ledger) CashBalance() float64 { return l.cash }

// InitialCash returns the balance the run started with.
func (l *Ledger) InitialCash() float64 { return l.startCash }

// MarkPrice records the last traded price for an instrument. The driver
// calls this for every valid tick so market values can be derived at end of
// run.
func (l *Ledger) MarkPrice(symbol string, price float64) {
	l.lastPrice[symbol] = price
}

// Position returns a copy of the position for symbol, if one was ever
// opened.
func (l *Ledger) Position(symbol string) (Position, bool) {
	p, ok := l.positions[symbol]
	if !ok {
		return Position{}, false
	}
	return *p, true
}

// Statement returns the accepted-order log, oldest first.
func (l *Ledger) Statement() []StatementEntry { return l.statement }

// SubmitOrder validates and applies an order intent. On rejection it returns
// a *RejectError and leaves all state unchanged.
func (l *Ledger) SubmitOrder(o OrderIntent) error {
	if o.Volume <= 0 {
		return &RejectError{Reason: NonPositiveVolume, Intent: o}
	}

	switch o.Side {
	case Buy:
		return l.buy(o)
	case Sell:
		return l.sell(o)
	default:
		return fmt.Errorf("unknown order side %q", o.Side)
	}
}

func (l *Ledger) buy(o OrderIntent) error {
	cost := float64(o.Volume) * o.Price
	if l.cash < cost {
		return &RejectError{Reason: InsufficientCash, Intent: o}
	}

	pos, ok := l.positions[o.Symbol]
	if !ok {
		pos = &Position{Symbol: o.Symbol}
		l.positions[o.Symbol] = pos
	}

	l.cash -= cost
	pos.Volume += o.Volume
	pos.AmountCost += cost
	pos.AvgCost = pos.AmountCost / float64(pos.Volume)

	l.append(o, o.Volume, cost)
	return nil
}

func (l *Ledger) sell(o OrderIntent) error {
	pos, ok := l.positions[o.Symbol]
	if !ok || pos.Volume <= 0 {
		return &RejectError{Reason: NoPosition, Intent: o}
	}

	// Selling more than held is not an error; the fill is capped.
	realized := o.Volume
	if realized > pos.Volume {
		realized = pos.Volume
	}

	revenue := float64(realized) * o.Price
	costOfSold := float64(realized) * pos.AvgCost

	if o.Price > pos.AvgCost {
		l.wins++
	}
	l.matched++

	l.cash += revenue
	pos.Volume -= realized
	pos.AmountCost -= costOfSold
	if pos.Volume > 0 {
		pos.AvgCost = pos.AmountCost / float64(pos.Volume)
	} else {
		// Flat again: clear cost tracking entirely, including float residue.
		pos.AmountCost = 0
		pos.AvgCost = 0
	}

	l.append(o, realized, revenue)
	return nil
}

func (l *Ledger) append(o OrderIntent, volume int64, amount float64) {
	l.statement = append(l.statement, StatementEntry{
		ID:        id.New(),
		Time:      o.Time,
		Symbol:    o.Symbol,
		Side:      o.Side,
		Volume:    volume,
		Price:     o.Price,
		Amount:    amount,
		CashAfter: l.cash,
	})
}
