package jsonfile

import (
	"context"

	"github.com/uc3m-money/account_management_app/internal/core/domain"
	portsrepo "github.com/uc3m-money/account_management_app/internal/core/ports/repositories"
	"github.com/uc3m-money/account_management_app/internal/models"
	"github.com/uc3m-money/account_management_app/internal/utils/mapping"
)

// BalanceRepository persists balance snapshots in a JSON array store and
// reads the externally maintained transactions log.
type BalanceRepository struct {
	store        *Store[models.BalanceSnapshot]
	transactions *Store[models.Transaction]
}

// newBalanceRepository creates a repository over the balances store at
// balancesPath, reading transactions from transactionsPath.
func newBalanceRepository(balancesPath, transactionsPath string) portsrepo.BalanceRepositoryFacade {
	return &BalanceRepository{
		store:        NewStore[models.BalanceSnapshot](balancesPath),
		transactions: NewStore[models.Transaction](transactionsPath),
	}
}

// Ensure BalanceRepository implements portsrepo.BalanceRepositoryFacade
var _ portsrepo.BalanceRepositoryFacade = (*BalanceRepository)(nil)

// ListBalanceSnapshots returns every recorded snapshot, oldest first.
func (r *BalanceRepository) ListBalanceSnapshots(ctx context.Context) ([]domain.BalanceSnapshot, error) {
	records, err := r.store.LoadOrEmpty()
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainBalanceSnapshots(records), nil
}

// SaveBalanceSnapshot appends a computed balance snapshot to the store.
func (r *BalanceRepository) SaveBalanceSnapshot(ctx context.Context, snapshot domain.BalanceSnapshot) error {
	return r.store.Append(mapping.ToModelBalanceSnapshot(snapshot))
}

// ListTransactions returns the full transaction log. The log is written by
// an upstream system, so here a missing file means a misconfigured path and
// is an error rather than an empty log.
func (r *BalanceRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	records, err := r.transactions.LoadStrict()
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactions(records), nil
}
