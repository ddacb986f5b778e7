package services

import (
	"context"

	"github.com/uc3m-money/account_management_app/internal/core/domain"
	"github.com/uc3m-money/account_management_app/internal/dto"
)

// DepositReaderSvc defines read operations for recorded deposits
type DepositReaderSvc interface {
	// ListDeposits returns recorded deposits, oldest first. A limit of
	// zero returns the full ledger.
	ListDeposits(ctx context.Context, limit, offset int) ([]domain.AccountDeposit, error)
}

// DepositWriterSvc defines operations that record new deposits
type DepositWriterSvc interface {
	// CreateDeposit validates a deposit payload and records the deposit,
	// returning the stored record with its signature.
	CreateDeposit(ctx context.Context, req dto.CreateDepositRequest) (*domain.AccountDeposit, error)

	// CreateDepositFromFile reads a deposit payload from an input file on
	// the server and records it like CreateDeposit.
	CreateDepositFromFile(ctx context.Context, path string) (*domain.AccountDeposit, error)
}

// DepositSvcFacade combines all deposit-related service interfaces
type DepositSvcFacade interface {
	DepositReaderSvc
	DepositWriterSvc
}
