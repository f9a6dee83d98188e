package journal

const Schema = `
CREATE TABLE IF NOT EXISTS pricings (
	record_id TEXT PRIMARY KEY,
	run_id TEXT NOT NULL,
	option_type TEXT NOT NULL,
	spot REAL NOT NULL,
	strike REAL NOT NULL,
	expiry REAL NOT NULL,
	rate REAL NOT NULL,
	volatility REAL NOT NULL,
	dividend_yield REAL NOT NULL,
	price REAL NOT NULL,
	delta REAL NOT NULL,
	gamma REAL NOT NULL,
	theta REAL NOT NULL,
	vega REAL NOT NULL,
	rho REAL NOT NULL,
	time DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS indicators (
	record_id TEXT PRIMARY KEY,
	run_id TEXT NOT NULL,
	name TEXT NOT NULL,
	period INTEGER NOT NULL,
	samples INTEGER NOT NULL,
	final REAL NOT NULL,
	time DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_pricings_run ON pricings(run_id);
CREATE INDEX IF NOT EXISTS idx_indicators_run ON indicators(run_id);
`
