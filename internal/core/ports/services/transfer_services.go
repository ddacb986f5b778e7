package services

import (
	"context"

	"github.com/uc3m-money/account_management_app/internal/core/domain"
	"github.com/uc3m-money/account_management_app/internal/dto"
)

// TransferReaderSvc defines read operations for recorded transfers
type TransferReaderSvc interface {
	// ListTransfers returns recorded transfers, oldest first. A limit of
	// zero returns the full ledger.
	ListTransfers(ctx context.Context, limit, offset int) ([]domain.TransferRequest, error)
}

// TransferWriterSvc defines operations that record new transfers
type TransferWriterSvc interface {
	// CreateTransfer validates and records a transfer, returning the
	// stored record with its transfer code.
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) (*domain.TransferRequest, error)
}

// TransferSvcFacade combines all transfer-related service interfaces
type TransferSvcFacade interface {
	TransferReaderSvc
	TransferWriterSvc
}
