package repositories

import (
	"context"

	"github.com/uc3m-money/account_management_app/internal/core/domain"
)

// TransferReader defines read operations over the transfer ledger
type TransferReader interface {
	// ListTransfers returns every recorded transfer, oldest first.
	ListTransfers(ctx context.Context) ([]domain.TransferRequest, error)
}

// TransferWriter defines write operations over the transfer ledger
type TransferWriter interface {
	// SaveTransfer appends a transfer to the ledger.
	SaveTransfer(ctx context.Context, transfer domain.TransferRequest) error
}

// TransferRepositoryFacade combines all transfer-related repository interfaces
type TransferRepositoryFacade interface {
	TransferReader
	TransferWriter
}
