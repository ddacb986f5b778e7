package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uc3m-money/account_management_app/internal/apperrors"
	"github.com/uc3m-money/account_management_app/internal/core/domain"
	portsrepo "github.com/uc3m-money/account_management_app/internal/core/ports/repositories"
	"github.com/uc3m-money/account_management_app/internal/middleware"
	"github.com/uc3m-money/account_management_app/internal/utils/accounting"
)

// BalanceService computes account balances from the transactions log and
// records the results in the balances store.
type BalanceService struct {
	balanceRepo portsrepo.BalanceRepositoryFacade
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(repo portsrepo.BalanceRepositoryFacade) *BalanceService {
	return &BalanceService{balanceRepo: repo}
}

// CalculateBalance sums every transaction booked against iban and appends
// a snapshot of the result. The transactions log must exist, and an IBAN
// with no entries at all is an unknown account, not a zero balance.
func (s *BalanceService) CalculateBalance(ctx context.Context, iban string) (*domain.BalanceSnapshot, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := domain.ValidateIBAN(iban); err != nil {
		return nil, err
	}

	transactions, err := s.balanceRepo.ListTransactions(ctx)
	if err != nil {
		logger.Error("Failed to read transactions log", slog.String("error", err.Error()))
		return nil, err
	}

	total, matched := accounting.SumForIBAN(transactions, iban)
	if matched == 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrIBANNotFound, iban)
	}

	snapshot := domain.NewBalanceSnapshot(iban, total, time.Now().UTC())
	if err := s.balanceRepo.SaveBalanceSnapshot(ctx, snapshot); err != nil {
		logger.Error("Failed to save balance snapshot", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Balance snapshot recorded",
		slog.String("iban", iban),
		slog.String("balance", total.String()),
		slog.Int("transactions", matched),
	)
	return &snapshot, nil
}

// ListBalanceSnapshots returns the snapshots recorded for iban, oldest
// first. An account with no snapshots yet lists empty; that is not an
// error.
func (s *BalanceService) ListBalanceSnapshots(ctx context.Context, iban string) ([]domain.BalanceSnapshot, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := domain.ValidateIBAN(iban); err != nil {
		return nil, err
	}

	all, err := s.balanceRepo.ListBalanceSnapshots(ctx)
	if err != nil {
		logger.Error("Failed to list balance snapshots from repository", slog.String("error", err.Error()))
		return nil, err
	}

	matching := make([]domain.BalanceSnapshot, 0, len(all))
	for _, snapshot := range all {
		if snapshot.IBAN == iban {
			matching = append(matching, snapshot)
		}
	}
	return matching, nil
}
