package market

// History is a bounded, append-only price window. Once full, appending a new
// price evicts the oldest. Each strategy instance owns one History for its
// instrument; nothing else writes to it.
type History struct {
	prices []float64
	cap    int
}

// NewHistory returns an empty window with the given capacity.
// Capacity must be positive; callers validate via their own config.
func NewHistory(capacity int) *History {
	return &History{
		prices: make([]float64, 0, capacity),
		cap:    capacity,
	}
}

// Append adds a price, evicting the oldest sample when full.
func (h *History) Append(price float64) {
	if len(h.prices) == h.cap {
		copy(h.prices, h.prices[1:])
		h.prices[len(h.prices)-1] = price
		return
	}
	h.prices = append(h.prices, price)
}

// Prices returns the window oldest to newest. The slice is shared with the
// History; callers must not modify it.
func (h *History) Prices() []float64 { return h.prices }

func (h *History) Len() int { return len(h.prices) }

func (h *History) Cap() int { return h.cap }
