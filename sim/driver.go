package sim

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/KorNxHaidar/Trade-Sim/ledger"
	"github.com/KorNxHaidar/Trade-Sim/market"
	"github.com/KorNxHaidar/Trade-Sim/strategies"
)

// Driver replays a tick stream through one signal engine per instrument,
// all trading against a single shared ledger.
type Driver struct {
	book    *ledger.Ledger
	engines map[string]*strategies.RSIMACD
	symbols []string
	log     *slog.Logger
}

// Report is the outcome of a full replay.
type Report struct {
	TicksSeen    int
	TicksSkipped int
	Buys         int
	Sells        int
	Rejected     int

	Statement []ledger.StatementEntry
	Portfolio []ledger.PortfolioRow
	Summary   ledger.Summary
}

// NewDriver builds every per-instrument engine up front. A config whose
// symbol repeats, or that fails validation, is a construction error rather
// than something discovered mid-replay.
func NewDriver(initialCash float64, cfgs []strategies.Config, seed int64, log *slog.Logger) (*Driver, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if len(cfgs) == 0 {
		return nil, fmt.Errorf("sim: at least one strategy config is required")
	}

	book := ledger.New(initialCash)
	alloc := strategies.UniformAlloc(rand.New(rand.NewSource(seed)))

	d := &Driver{
		book:    book,
		engines: make(map[string]*strategies.RSIMACD, len(cfgs)),
		log:     log,
	}
	for _, cfg := range cfgs {
		if _, dup := d.engines[cfg.Symbol]; dup {
			return nil, fmt.Errorf("sim: duplicate strategy for %q", cfg.Symbol)
		}
		eng, err := strategies.NewRSIMACD(cfg, book, alloc)
		if err != nil {
			return nil, fmt.Errorf("sim: %q: %w", cfg.Symbol, err)
		}
		d.engines[cfg.Symbol] = eng
		d.symbols = append(d.symbols, cfg.Symbol)
	}
	return d, nil
}

// Ledger exposes the shared book, mainly so results can be journaled after a
// run.
func (d *Driver) Ledger() *ledger.Ledger { return d.book }

// Symbols lists the instruments the driver was built with, in config order.
func (d *Driver) Symbols() []string { return d.symbols }

// Run replays ticks in the order given. Malformed ticks are counted and
// skipped; they never reach a price history or the ledger. Ticks for
// instruments without an engine still mark the book so end-of-run market
// values stay current.
func (d *Driver) Run(ticks []market.Tick) Report {
	var rep Report

	for _, t := range ticks {
		rep.TicksSeen++
		if err := t.Validate(); err != nil {
			rep.TicksSkipped++
			d.log.Warn("skipping malformed tick", "symbol", t.Symbol, "error", err)
			continue
		}

		d.book.MarkPrice(t.Symbol, t.Price)

		eng, ok := d.engines[t.Symbol]
		if !ok {
			continue
		}

		out := eng.OnTick(t)
		switch out.Action {
		case strategies.Buy:
			rep.Buys++
			d.log.Debug("buy", "symbol", t.Symbol, "price", out.Order.Price, "volume", out.Order.Volume)
		case strategies.Sell:
			rep.Sells++
			d.log.Debug("sell", "symbol", t.Symbol, "price", out.Order.Price,
				"volume", out.Order.Volume, "reason", out.Reason)
		}
		if out.Reject != nil {
			rep.Rejected++
			d.log.Warn("order rejected", "symbol", t.Symbol, "reason", out.Reject.Reason)
		}
	}

	rep.Statement = d.book.Statement()
	rep.Portfolio = d.book.PortfolioRows()
	rep.Summary = d.book.Summarize()
	return rep
}

// Replay merges per-instrument series into one time-ordered stream and runs
// it.
func (d *Driver) Replay(series ...[]market.Tick) Report {
	return d.Run(market.MergeSorted(series...))
}
