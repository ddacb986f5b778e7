package jsonfile

import (
	"context"

	"github.com/uc3m-money/account_management_app/internal/core/domain"
	portsrepo "github.com/uc3m-money/account_management_app/internal/core/ports/repositories"
	"github.com/uc3m-money/account_management_app/internal/models"
	"github.com/uc3m-money/account_management_app/internal/utils/mapping"
)

// DepositRepository persists deposits in a JSON array ledger file and reads
// externally supplied deposit input files.
type DepositRepository struct {
	store *Store[models.Deposit]
}

// newDepositRepository creates a repository over the deposit ledger at path.
func newDepositRepository(path string) portsrepo.DepositRepositoryFacade {
	return &DepositRepository{store: NewStore[models.Deposit](path)}
}

// Ensure DepositRepository implements portsrepo.DepositRepositoryFacade
var _ portsrepo.DepositRepositoryFacade = (*DepositRepository)(nil)

// ListDeposits returns every recorded deposit, oldest first.
func (r *DepositRepository) ListDeposits(ctx context.Context) ([]domain.AccountDeposit, error) {
	records, err := r.store.LoadOrEmpty()
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainDeposits(records), nil
}

// SaveDeposit appends a deposit to the ledger.
func (r *DepositRepository) SaveDeposit(ctx context.Context, deposit domain.AccountDeposit) error {
	return r.store.Append(mapping.ToModelDeposit(deposit))
}

// ReadDepositInput decodes the deposit payload stored at path. The payload
// is returned unvalidated; missing keys stay nil.
func (r *DepositRepository) ReadDepositInput(ctx context.Context, path string) (domain.DepositInput, error) {
	record, err := ReadInput[models.DepositInput](path)
	if err != nil {
		return domain.DepositInput{}, err
	}
	return mapping.ToDomainDepositInput(record), nil
}
