package jsonfile

import (
	portsrepo "github.com/uc3m-money/account_management_app/internal/core/ports/repositories"
)

// StorePaths names the ledger files backing each repository.
type StorePaths struct {
	Transfers    string
	Deposits     string
	Balances     string
	Transactions string
}

// NewRepositoryProvider builds the JSON file backed repositories over the
// given store paths.
func NewRepositoryProvider(paths StorePaths) portsrepo.RepositoryProvider {
	transferRepo := newTransferRepository(paths.Transfers)
	depositRepo := newDepositRepository(paths.Deposits)
	balanceRepo := newBalanceRepository(paths.Balances, paths.Transactions)

	return portsrepo.RepositoryProvider{
		TransferRepo: transferRepo,
		DepositRepo:  depositRepo,
		BalanceRepo:  balanceRepo,
	}
}
