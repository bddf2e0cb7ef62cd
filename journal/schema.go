package journal

const Schema = `
CREATE TABLE IF NOT EXISTS statement (
	entry_id TEXT PRIMARY KEY,
	run_id TEXT NOT NULL,
	time DATETIME NOT NULL,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	volume INTEGER NOT NULL,
	price REAL NOT NULL,
	amount REAL NOT NULL,
	cash_after REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS portfolio (
	run_id TEXT NOT NULL,
	symbol TEXT NOT NULL,
	volume INTEGER NOT NULL,
	avg_cost REAL NOT NULL,
	market_price REAL NOT NULL,
	market_value REAL NOT NULL,
	amount_cost REAL NOT NULL,
	unrealized_pl REAL NOT NULL,
	unrealized_pl_pct REAL NOT NULL,
	PRIMARY KEY (run_id, symbol)
);

CREATE TABLE IF NOT EXISTS summary (
	run_id TEXT PRIMARY KEY,
	nav REAL NOT NULL,
	portfolio_value REAL NOT NULL,
	start_line REAL NOT NULL,
	end_line REAL NOT NULL,
	wins INTEGER NOT NULL,
	matched_trades INTEGER NOT NULL,
	transactions INTEGER NOT NULL,
	net_amount REAL NOT NULL,
	unrealized_pl REAL NOT NULL,
	unrealized_pct REAL NOT NULL,
	realized_pl REAL NOT NULL,
	max_end_line REAL NOT NULL,
	min_end_line REAL NOT NULL,
	win_rate REAL NOT NULL,
	return_pct REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_statement_run ON statement(run_id, time);
`
