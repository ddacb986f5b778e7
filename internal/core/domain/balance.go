package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one entry of the externally supplied transaction log.
// Only the fields the balance computation reads are modelled; anything
// else in the log is ignored.
type Transaction struct {
	IBAN   string
	Amount decimal.Decimal
}

// BalanceSnapshot is the computed balance of one account at one instant.
// Snapshots are appended to the balances ledger, so the full history of
// computations is kept rather than a single current value.
type BalanceSnapshot struct {
	IBAN    string
	Time    float64 // capture time, UTC Unix seconds
	Balance decimal.Decimal
}

// NewBalanceSnapshot builds a snapshot record, stamping capturedAt as the
// computation time.
func NewBalanceSnapshot(iban string, balance decimal.Decimal, capturedAt time.Time) BalanceSnapshot {
	return BalanceSnapshot{
		IBAN:    iban,
		Time:    UnixSeconds(capturedAt),
		Balance: balance,
	}
}
