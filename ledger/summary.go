package ledger

import "sort"

// PortfolioRow is the end-of-run view of one instrument, valued at the last
// observed tick price.
type PortfolioRow struct {
	Symbol          string
	Volume          int64
	AvgCost         float64
	MarketPrice     float64
	MarketValue     float64
	AmountCost      float64
	UnrealizedPL    float64
	UnrealizedPLPct float64
}

// Summary is the run-level result derived from the statement and the final
// positions. It is computed once, after the last tick; nothing mutates the
// ledger afterwards.
type Summary struct {
	NAV            float64
	PortfolioValue float64
	StartLine      float64 // initial cash
	EndLine        float64 // cash after the last accepted order
	Wins           int
	MatchedTrades  int
	Transactions   int
	NetAmount      float64
	UnrealizedPL   float64
	UnrealizedPct  float64
	RealizedPL     float64
	MaxEndLine     float64
	MinEndLine     float64
	WinRate        float64 // percent
	ReturnPct      float64

	// Kept as zero placeholders, matching the original statement format.
	CalmarRatio      float64
	RelativeDrawdown float64
	MaxDrawdown      float64
}

// PortfolioRows returns one row per instrument that ever traded, sorted by
// symbol for reproducible output.
func (l *Ledger) PortfolioRows() []PortfolioRow {
	rows := make([]PortfolioRow, 0, len(l.positions))
	for sym, pos := range l.positions {
		mp := l.lastPrice[sym]
		mv := float64(pos.Volume) * mp
		unreal := mv - pos.AmountCost
		pct := 0.0
		if pos.AmountCost != 0 {
			pct = unreal / pos.AmountCost * 100
		}
		rows = append(rows, PortfolioRow{
			Symbol:          sym,
			Volume:          pos.Volume,
			AvgCost:         pos.AvgCost,
			MarketPrice:     mp,
			MarketValue:     mv,
			AmountCost:      pos.AmountCost,
			UnrealizedPL:    unreal,
			UnrealizedPLPct: pct,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Symbol < rows[j].Symbol })
	return rows
}

// Summarize derives the run summary. An empty statement yields a summary
// built from the initial cash alone: NAV equals initial cash, win rate 0.
func (l *Ledger) Summarize() Summary {
	var portfolioValue, unreal float64
	for _, row := range l.PortfolioRows() {
		portfolioValue += row.MarketValue
		unreal += row.UnrealizedPL
	}

	nav := portfolioValue + l.cash

	s := Summary{
		NAV:            nav,
		PortfolioValue: portfolioValue,
		StartLine:      l.startCash,
		EndLine:        l.cash,
		Wins:           l.wins,
		MatchedTrades:  l.matched,
		Transactions:   len(l.statement),
		UnrealizedPL:   unreal,
		RealizedPL:     nav - l.startCash - unreal,
		MaxEndLine:     l.startCash,
		MinEndLine:     l.startCash,
	}

	for _, e := range l.statement {
		s.NetAmount += e.Amount
	}
	if len(l.statement) > 0 {
		s.MaxEndLine = l.statement[0].CashAfter
		s.MinEndLine = l.statement[0].CashAfter
		for _, e := range l.statement[1:] {
			if e.CashAfter > s.MaxEndLine {
				s.MaxEndLine = e.CashAfter
			}
			if e.CashAfter < s.MinEndLine {
				s.MinEndLine = e.CashAfter
			}
		}
	}

	if l.matched > 0 {
		s.WinRate = float64(l.wins) / float64(l.matched) * 100
	}
	if l.startCash != 0 {
		s.UnrealizedPct = unreal / l.startCash * 100
		s.ReturnPct = (nav - l.startCash) / l.startCash * 100
	}
	return s
}
