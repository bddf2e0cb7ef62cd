package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryEmptyRun(t *testing.T) {
	t.Parallel()

	l := New(10_000_000)
	s := l.Summarize()

	assert.Equal(t, 10_000_000.0, s.NAV)
	assert.Equal(t, 0.0, s.PortfolioValue)
	assert.Equal(t, 10_000_000.0, s.StartLine)
	assert.Equal(t, 10_000_000.0, s.EndLine)
	assert.Equal(t, 0.0, s.WinRate)
	assert.Equal(t, 0, s.Transactions)
	assert.Equal(t, 0.0, s.RealizedPL)
	assert.Equal(t, 0.0, s.ReturnPct)
	assert.Equal(t, 10_000_000.0, s.MaxEndLine)
	assert.Equal(t, 10_000_000.0, s.MinEndLine)
	assert.Empty(t, l.PortfolioRows())
}

func TestSummaryNAVConservation(t *testing.T) {
	t.Parallel()

	l := New(1000)
	require.NoError(t, l.SubmitOrder(intent("EA", Buy, 5, 100)))
	l.MarkPrice("EA", 120)

	s := l.Summarize()
	assert.InDelta(t, 600.0, s.PortfolioValue, 1e-12)
	assert.InDelta(t, 1100.0, s.NAV, 1e-12)
	assert.InDelta(t, 100.0, s.UnrealizedPL, 1e-12)
	// All profit still unrealized: realized component is zero.
	assert.InDelta(t, 0.0, s.RealizedPL, 1e-12)

	// Close the position at the marked price: profit becomes realized.
	require.NoError(t, l.SubmitOrder(intent("EA", Sell, 5, 120)))
	s = l.Summarize()
	assert.InDelta(t, 1100.0, s.NAV, 1e-12)
	assert.InDelta(t, 0.0, s.UnrealizedPL, 1e-12)
	assert.InDelta(t, 100.0, s.RealizedPL, 1e-12)
	assert.InDelta(t, 10.0, s.ReturnPct, 1e-12)
	assert.Equal(t, 100.0, s.WinRate)
}

func TestSummaryStatementDerivedFields(t *testing.T) {
	t.Parallel()

	l := New(1000)
	require.NoError(t, l.SubmitOrder(intent("GULF", Buy, 4, 100)))  // cash 600
	require.NoError(t, l.SubmitOrder(intent("GULF", Sell, 4, 110))) // cash 1040

	s := l.Summarize()
	assert.Equal(t, 2, s.Transactions)
	assert.InDelta(t, 400.0+440.0, s.NetAmount, 1e-12)
	assert.InDelta(t, 1040.0, s.MaxEndLine, 1e-12)
	assert.InDelta(t, 600.0, s.MinEndLine, 1e-12)
	assert.InDelta(t, 1040.0, s.EndLine, 1e-12)
}

func TestSummaryZeroInitialCash(t *testing.T) {
	t.Parallel()

	l := New(0)
	s := l.Summarize()
	assert.Equal(t, 0.0, s.ReturnPct)
	assert.Equal(t, 0.0, s.UnrealizedPct)
	assert.Equal(t, 0.0, s.NAV)
}

func TestPortfolioRows(t *testing.T) {
	t.Parallel()

	l := New(100_000)
	require.NoError(t, l.SubmitOrder(intent("PTT", Buy, 100, 33)))
	require.NoError(t, l.SubmitOrder(intent("AOT", Buy, 50, 60)))
	l.MarkPrice("PTT", 35)
	l.MarkPrice("AOT", 58)

	rows := l.PortfolioRows()
	require.Len(t, rows, 2)
	// Sorted by symbol.
	assert.Equal(t, "AOT", rows[0].Symbol)
	assert.Equal(t, "PTT", rows[1].Symbol)

	aot := rows[0]
	assert.Equal(t, int64(50), aot.Volume)
	assert.InDelta(t, 60.0, aot.AvgCost, 1e-12)
	assert.InDelta(t, 2900.0, aot.MarketValue, 1e-12)
	assert.InDelta(t, -100.0, aot.UnrealizedPL, 1e-12)
	assert.InDelta(t, -100.0/3000.0*100, aot.UnrealizedPLPct, 1e-9)
}
