package repositories

import (
	"context"

	"github.com/uc3m-money/account_management_app/internal/core/domain"
)

// BalanceReader defines read operations over the balances store
type BalanceReader interface {
	// ListBalanceSnapshots returns every recorded snapshot, oldest first.
	ListBalanceSnapshots(ctx context.Context) ([]domain.BalanceSnapshot, error)
}

// BalanceWriter defines write operations over the balances store
type BalanceWriter interface {
	// SaveBalanceSnapshot appends a computed balance snapshot to the store.
	SaveBalanceSnapshot(ctx context.Context, snapshot domain.BalanceSnapshot) error
}

// TransactionReader reads the externally maintained transactions log
type TransactionReader interface {
	// ListTransactions returns the full transaction log. The log is a
	// required input: a missing file is an error, not an empty log.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// BalanceRepositoryFacade combines all balance-related repository interfaces
type BalanceRepositoryFacade interface {
	BalanceReader
	BalanceWriter
	TransactionReader
}
