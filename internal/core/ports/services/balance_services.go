package services

import (
	"context"

	"github.com/uc3m-money/account_management_app/internal/core/domain"
)

// BalanceCalculatorSvc defines the balance computation operation
type BalanceCalculatorSvc interface {
	// CalculateBalance sums the transaction log entries for the given IBAN
	// and appends a snapshot of the result to the balances store.
	CalculateBalance(ctx context.Context, iban string) (*domain.BalanceSnapshot, error)
}

// BalanceReaderSvc defines read operations for recorded balance snapshots
type BalanceReaderSvc interface {
	// ListBalanceSnapshots returns the snapshots recorded for the given
	// IBAN, oldest first.
	ListBalanceSnapshots(ctx context.Context, iban string) ([]domain.BalanceSnapshot, error)
}

// BalanceSvcFacade combines all balance-related service interfaces
type BalanceSvcFacade interface {
	BalanceCalculatorSvc
	BalanceReaderSvc
}
