// Package market holds the tick and price-history primitives shared by the
// indicator, strategy, and simulation layers.
package market

import (
	"fmt"
	"sort"
	"time"
)

// Tick is one trade print for a single instrument. Ticks are produced by an
// external feed and are read-only inside the engine.
type Tick struct {
	Symbol string
	Time   time.Time
	Price  float64 // last traded price
	Volume int64   // traded volume, non-negative
	Flag   string  // exchange flag, opaque passthrough
}

// MalformedTickError describes a tick that cannot be processed. The driver
// skips such ticks and keeps going; they must never reach a price history.
type MalformedTickError struct {
	Tick   Tick
	Reason string
}

func (e *MalformedTickError) Error() string {
	return fmt.Sprintf("malformed tick %q: %s", e.Tick.Symbol, e.Reason)
}

// Validate reports whether the tick is usable.
func (t Tick) Validate() error {
	if t.Symbol == "" {
		return &MalformedTickError{Tick: t, Reason: "empty symbol"}
	}
	if t.Time.IsZero() {
		return &MalformedTickError{Tick: t, Reason: "zero timestamp"}
	}
	if t.Price <= 0 {
		return &MalformedTickError{Tick: t, Reason: fmt.Sprintf("non-positive price %v", t.Price)}
	}
	if t.Volume < 0 {
		return &MalformedTickError{Tick: t, Reason: fmt.Sprintf("negative volume %d", t.Volume)}
	}
	return nil
}

// MergeSorted merges per-instrument tick sequences into one global stream
// ordered by timestamp. The sort is stable: ticks with equal timestamps keep
// their relative order across input sequences.
func MergeSorted(series ...[]Tick) []Tick {
	n := 0
	for _, s := range series {
		n += len(s)
	}
	merged := make([]Tick, 0, n)
	for _, s := range series {
		merged = append(merged, s...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Time.Before(merged[j].Time)
	})
	return merged
}
