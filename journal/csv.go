package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/KorNxHaidar/Trade-Sim/ledger"
)

// CSVJournal writes each run table to its own file with a header row.
type CSVJournal struct {
	statement  *csv.Writer
	portfolio  *csv.Writer
	summary    *csv.Writer
	sf, pf, mf *os.File
}

func NewCSV(statementPath, portfolioPath, summaryPath string) (*CSVJournal, error) {
	sf, err := os.Create(statementPath)
	if err != nil {
		return nil, err
	}
	pf, err := os.Create(portfolioPath)
	if err != nil {
		sf.Close()
		return nil, err
	}
	mf, err := os.Create(summaryPath)
	if err != nil {
		sf.Close()
		pf.Close()
		return nil, err
	}

	j := &CSVJournal{
		statement: csv.NewWriter(sf),
		portfolio: csv.NewWriter(pf),
		summary:   csv.NewWriter(mf),
		sf:        sf,
		pf:        pf,
		mf:        mf,
	}

	if err := j.statement.Write([]string{
		"entry_id", "time", "symbol", "side", "volume", "price", "amount", "cash_after",
	}); err != nil {
		j.Close()
		return nil, err
	}
	if err := j.portfolio.Write([]string{
		"symbol", "volume", "avg_cost", "market_price", "market_value",
		"amount_cost", "unrealized_pl", "unrealized_pl_pct",
	}); err != nil {
		j.Close()
		return nil, err
	}
	if err := j.summary.Write([]string{
		"nav", "portfolio_value", "start_line", "end_line", "wins",
		"matched_trades", "transactions", "net_amount", "unrealized_pl",
		"unrealized_pct", "realized_pl", "max_end_line", "min_end_line",
		"win_rate", "return_pct",
	}); err != nil {
		j.Close()
		return nil, err
	}

	j.statement.Flush()
	j.portfolio.Flush()
	j.summary.Flush()
	for _, w := range []*csv.Writer{j.statement, j.portfolio, j.summary} {
		if err := w.Error(); err != nil {
			j.Close()
			return nil, err
		}
	}
	return j, nil
}

func (j *CSVJournal) RecordStatement(e ledger.StatementEntry) error {
	err := j.statement.Write([]string{
		e.ID,
		e.Time.Format(time.RFC3339Nano),
		e.Symbol,
		string(e.Side),
		strconv.FormatInt(e.Volume, 10),
		f(e.Price),
		f(e.Amount),
		f(e.CashAfter),
	})
	if err != nil {
		return err
	}
	j.statement.Flush()
	return j.statement.Error()
}

func (j *CSVJournal) RecordPosition(r ledger.PortfolioRow) error {
	err := j.portfolio.Write([]string{
		r.Symbol,
		strconv.FormatInt(r.Volume, 10),
		f(r.AvgCost),
		f(r.MarketPrice),
		f(r.MarketValue),
		f(r.AmountCost),
		f(r.UnrealizedPL),
		f(r.UnrealizedPLPct),
	})
	if err != nil {
		return err
	}
	j.portfolio.Flush()
	return j.portfolio.Error()
}

func (j *CSVJournal) RecordSummary(s ledger.Summary) error {
	err := j.summary.Write([]string{
		f(s.NAV),
		f(s.PortfolioValue),
		f(s.StartLine),
		f(s.EndLine),
		strconv.Itoa(s.Wins),
		strconv.Itoa(s.MatchedTrades),
		strconv.Itoa(s.Transactions),
		f(s.NetAmount),
		f(s.UnrealizedPL),
		f(s.UnrealizedPct),
		f(s.RealizedPL),
		f(s.MaxEndLine),
		f(s.MinEndLine),
		f(s.WinRate),
		f(s.ReturnPct),
	})
	if err != nil {
		return err
	}
	j.summary.Flush()
	return j.summary.Error()
}

func (j *CSVJournal) Close() error {
	j.statement.Flush()
	j.portfolio.Flush()
	j.summary.Flush()
	for _, w := range []*csv.Writer{j.statement, j.portfolio, j.summary} {
		if err := w.Error(); err != nil {
			return err
		}
	}
	for _, fh := range []*os.File{j.sf, j.pf, j.mf} {
		if err := fh.Close(); err != nil {
			return err
		}
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
