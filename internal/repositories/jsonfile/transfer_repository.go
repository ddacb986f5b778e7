package jsonfile

import (
	"context"

	"github.com/uc3m-money/account_management_app/internal/core/domain"
	portsrepo "github.com/uc3m-money/account_management_app/internal/core/ports/repositories"
	"github.com/uc3m-money/account_management_app/internal/models"
	"github.com/uc3m-money/account_management_app/internal/utils/mapping"
)

// TransferRepository persists transfers in a JSON array ledger file.
type TransferRepository struct {
	store *Store[models.Transfer]
}

// newTransferRepository creates a repository over the transfer ledger at path.
func newTransferRepository(path string) portsrepo.TransferRepositoryFacade {
	return &TransferRepository{store: NewStore[models.Transfer](path)}
}

// Ensure TransferRepository implements portsrepo.TransferRepositoryFacade
var _ portsrepo.TransferRepositoryFacade = (*TransferRepository)(nil)

// ListTransfers returns every recorded transfer, oldest first.
func (r *TransferRepository) ListTransfers(ctx context.Context) ([]domain.TransferRequest, error) {
	records, err := r.store.LoadOrEmpty()
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransfers(records), nil
}

// SaveTransfer appends a transfer to the ledger.
func (r *TransferRepository) SaveTransfer(ctx context.Context, transfer domain.TransferRequest) error {
	return r.store.Append(mapping.ToModelTransfer(transfer))
}
