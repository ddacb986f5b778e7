package services

import (
	portsrepo "github.com/uc3m-money/account_management_app/internal/core/ports/repositories"
	portssvc "github.com/uc3m-money/account_management_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transfer: NewTransferService(repos.TransferRepo),
		Deposit:  NewDepositService(repos.DepositRepo),
		Balance:  NewBalanceService(repos.BalanceRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransferSvcFacade = (*TransferService)(nil)
	_ portssvc.DepositSvcFacade  = (*DepositService)(nil)
	_ portssvc.BalanceSvcFacade  = (*BalanceService)(nil)
)
