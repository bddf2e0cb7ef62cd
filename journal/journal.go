package journal

import (
	"github.com/KorNxHaidar/Trade-Sim/ledger"
)

// Journal persists the results of a replay run: the accepted-order
// statement, the end-of-run portfolio, and the run summary.
type Journal interface {
	RecordStatement(ledger.StatementEntry) error
	RecordPosition(ledger.PortfolioRow) error
	RecordSummary(ledger.Summary) error
	Close() error
}

// Record writes an entire finished run to j, statement first so downstream
// readers see orders before derived rows.
func Record(j Journal, statement []ledger.StatementEntry, portfolio []ledger.PortfolioRow, summary ledger.Summary) error {
	for _, e := range statement {
		if err := j.RecordStatement(e); err != nil {
			return err
		}
	}
	for _, row := range portfolio {
		if err := j.RecordPosition(row); err != nil {
			return err
		}
	}
	return j.RecordSummary(summary)
}

// Nop discards everything. Useful when a run only needs the printed report.
type Nop struct{}

func (Nop) RecordStatement(ledger.StatementEntry) error { return nil }
func (Nop) RecordPosition(ledger.PortfolioRow) error    { return nil }
func (Nop) RecordSummary(ledger.Summary) error          { return nil }
func (Nop) Close() error                                { return nil }
