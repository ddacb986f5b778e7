package mapping

import (
	"github.com/shopspring/decimal"

	"github.com/uc3m-money/account_management_app/internal/core/domain"
	"github.com/uc3m-money/account_management_app/internal/models"
)

// ToModelBalanceSnapshot converts a domain balance snapshot to its on-disk record.
func ToModelBalanceSnapshot(s domain.BalanceSnapshot) models.BalanceSnapshot {
	return models.BalanceSnapshot{
		IBAN:    s.IBAN,
		Time:    s.Time,
		Balance: s.Balance.InexactFloat64(),
	}
}

// ToDomainBalanceSnapshot converts an on-disk balance record back to the domain type.
func ToDomainBalanceSnapshot(m models.BalanceSnapshot) domain.BalanceSnapshot {
	return domain.BalanceSnapshot{
		IBAN:    m.IBAN,
		Time:    m.Time,
		Balance: decimal.NewFromFloat(m.Balance),
	}
}

// ToDomainBalanceSnapshots converts a slice of on-disk balance records.
func ToDomainBalanceSnapshots(ms []models.BalanceSnapshot) []domain.BalanceSnapshot {
	snapshots := make([]domain.BalanceSnapshot, 0, len(ms))
	for _, m := range ms {
		snapshots = append(snapshots, ToDomainBalanceSnapshot(m))
	}
	return snapshots
}

// ToDomainTransaction converts a transaction log entry to the domain type.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		IBAN:   m.IBAN,
		Amount: decimal.NewFromFloat(m.Amount),
	}
}

// ToDomainTransactions converts a slice of transaction log entries.
func ToDomainTransactions(ms []models.Transaction) []domain.Transaction {
	txns := make([]domain.Transaction, 0, len(ms))
	for _, m := range ms {
		txns = append(txns, ToDomainTransaction(m))
	}
	return txns
}
