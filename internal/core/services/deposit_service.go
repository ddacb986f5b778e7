package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/uc3m-money/account_management_app/internal/core/domain"
	portsrepo "github.com/uc3m-money/account_management_app/internal/core/ports/repositories"
	"github.com/uc3m-money/account_management_app/internal/dto"
	"github.com/uc3m-money/account_management_app/internal/middleware"
	"github.com/uc3m-money/account_management_app/internal/utils/pagination"
)

// DepositService validates and records account deposits.
type DepositService struct {
	depositRepo portsrepo.DepositRepositoryFacade
}

// NewDepositService creates a new DepositService.
func NewDepositService(repo portsrepo.DepositRepositoryFacade) *DepositService {
	return &DepositService{depositRepo: repo}
}

// CreateDeposit validates the payload and appends the deposit to the
// ledger. Deposits are never deduplicated; every accepted payload becomes
// a new record.
func (s *DepositService) CreateDeposit(ctx context.Context, req dto.CreateDepositRequest) (*domain.AccountDeposit, error) {
	return s.record(ctx, req.ToDomainInput())
}

// CreateDepositFromFile reads a deposit payload from an input file on the
// server and records it like CreateDeposit.
func (s *DepositService) CreateDepositFromFile(ctx context.Context, path string) (*domain.AccountDeposit, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	input, err := s.depositRepo.ReadDepositInput(ctx, path)
	if err != nil {
		logger.Error("Failed to read deposit input file", slog.String("path", path), slog.String("error", err.Error()))
		return nil, err
	}
	return s.record(ctx, input)
}

func (s *DepositService) record(ctx context.Context, input domain.DepositInput) (*domain.AccountDeposit, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	iban, amount, err := domain.ValidateDepositInput(input)
	if err != nil {
		return nil, err
	}

	deposit := domain.NewAccountDeposit(iban, amount, time.Now().UTC())
	if err := s.depositRepo.SaveDeposit(ctx, deposit); err != nil {
		logger.Error("Failed to save deposit in repository", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Deposit recorded",
		slog.String("to_iban", deposit.ToIBAN),
		slog.String("deposit_signature", deposit.Signature()),
	)
	return &deposit, nil
}

// ListDeposits returns recorded deposits, oldest first. A limit of zero
// returns the full ledger.
func (s *DepositService) ListDeposits(ctx context.Context, limit, offset int) ([]domain.AccountDeposit, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	deposits, err := s.depositRepo.ListDeposits(ctx)
	if err != nil {
		logger.Error("Failed to list deposits from repository", slog.String("error", err.Error()))
		return nil, err
	}
	return pagination.Window(deposits, limit, offset), nil
}
