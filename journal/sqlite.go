package journal

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/KorNxHaidar/Trade-Sim/internal/id"
	"github.com/KorNxHaidar/Trade-Sim/ledger"
)

// SQLiteJournal persists runs into a single database file. Every row is
// keyed by a run ID assigned at open, so one file can accumulate many runs.
type SQLiteJournal struct {
	db    *sql.DB
	runID string
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteJournal{db: db, runID: id.New()}, nil
}

// RunID identifies the rows written by this journal instance.
func (j *SQLiteJournal) RunID() string { return j.runID }

func (j *SQLiteJournal) RecordStatement(e ledger.StatementEntry) error {
	_, err := j.db.Exec(`
		INSERT INTO statement
		(entry_id, run_id, time, symbol, side, volume, price, amount, cash_after)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, j.runID, e.Time, e.Symbol, string(e.Side),
		e.Volume, e.Price, e.Amount, e.CashAfter,
	)
	return err
}

func (j *SQLiteJournal) RecordPosition(r ledger.PortfolioRow) error {
	_, err := j.db.Exec(`
		INSERT INTO portfolio
		(run_id, symbol, volume, avg_cost, market_price, market_value, amount_cost, unrealized_pl, unrealized_pl_pct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.runID, r.Symbol, r.Volume, r.AvgCost, r.MarketPrice,
		r.MarketValue, r.AmountCost, r.UnrealizedPL, r.UnrealizedPLPct,
	)
	return err
}

func (j *SQLiteJournal) RecordSummary(s ledger.Summary) error {
	_, err := j.db.Exec(`
		INSERT INTO summary
		(run_id, nav, portfolio_value, start_line, end_line, wins, matched_trades,
		 transactions, net_amount, unrealized_pl, unrealized_pct, realized_pl,
		 max_end_line, min_end_line, win_rate, return_pct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.runID, s.NAV, s.PortfolioValue, s.StartLine, s.EndLine,
		s.Wins, s.MatchedTrades, s.Transactions, s.NetAmount,
		s.UnrealizedPL, s.UnrealizedPct, s.RealizedPL,
		s.MaxEndLine, s.MinEndLine, s.WinRate, s.ReturnPct,
	)
	return err
}

// ListStatement returns this run's statement rows ordered by time.
func (j *SQLiteJournal) ListStatement() ([]ledger.StatementEntry, error) {
	rows, err := j.db.Query(`
		SELECT entry_id, time, symbol, side, volume, price, amount, cash_after
		FROM statement WHERE run_id = ? ORDER BY time`, j.runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ledger.StatementEntry
	for rows.Next() {
		var e ledger.StatementEntry
		var side string
		var when time.Time
		if err := rows.Scan(&e.ID, &when, &e.Symbol, &side,
			&e.Volume, &e.Price, &e.Amount, &e.CashAfter); err != nil {
			return nil, err
		}
		e.Time = when
		e.Side = ledger.Side(side)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
