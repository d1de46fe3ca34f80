package journal

// Amounts are TEXT so decimals round-trip exactly.
const Schema = `
CREATE TABLE IF NOT EXISTS transactions (
	tx_id TEXT PRIMARY KEY,
	account_id TEXT NOT NULL,
	kind TEXT NOT NULL,
	amount TEXT NOT NULL,
	fee TEXT NOT NULL,
	balance TEXT NOT NULL,
	time DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_time ON transactions(time);
CREATE INDEX IF NOT EXISTS idx_transactions_account ON transactions(account_id, time);
`
