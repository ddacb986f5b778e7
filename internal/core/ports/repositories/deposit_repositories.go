package repositories

import (
	"context"

	"github.com/uc3m-money/account_management_app/internal/core/domain"
)

// DepositReader defines read operations over the deposit ledger
type DepositReader interface {
	// ListDeposits returns every recorded deposit, oldest first.
	ListDeposits(ctx context.Context) ([]domain.AccountDeposit, error)
}

// DepositWriter defines write operations over the deposit ledger
type DepositWriter interface {
	// SaveDeposit appends a deposit to the ledger.
	SaveDeposit(ctx context.Context, deposit domain.AccountDeposit) error
}

// DepositInputReader reads externally supplied deposit request files
type DepositInputReader interface {
	// ReadDepositInput decodes the deposit payload stored at path. A
	// missing file is an error; the payload is returned unvalidated.
	ReadDepositInput(ctx context.Context, path string) (domain.DepositInput, error)
}

// DepositRepositoryFacade combines all deposit-related repository interfaces
type DepositRepositoryFacade interface {
	DepositReader
	DepositWriter
	DepositInputReader
}
