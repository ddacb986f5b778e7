package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/uc3m-money/account_management_app/internal/apperrors"
	"github.com/uc3m-money/account_management_app/internal/core/domain"
	portsrepo "github.com/uc3m-money/account_management_app/internal/core/ports/repositories"
	"github.com/uc3m-money/account_management_app/internal/dto"
	"github.com/uc3m-money/account_management_app/internal/middleware"
	"github.com/uc3m-money/account_management_app/internal/utils/pagination"
)

// TransferService validates and records inter-account transfers.
type TransferService struct {
	transferRepo portsrepo.TransferRepositoryFacade

	// submitMu serializes the duplicate scan with the append that follows
	// it; without it two identical concurrent submissions could both pass
	// the scan and both be recorded.
	submitMu sync.Mutex
}

// NewTransferService creates a new TransferService.
func NewTransferService(repo portsrepo.TransferRepositoryFacade) *TransferService {
	return &TransferService{transferRepo: repo}
}

// CreateTransfer validates the request, rejects resubmissions of an already
// recorded transfer, appends the new record and returns it. Validation is
// fail fast: the first failing check decides the error, nothing is written.
func (s *TransferService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) (*domain.TransferRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()

	if _, err := domain.ValidateIBAN(req.FromIBAN); err != nil {
		return nil, err
	}
	if _, err := domain.ValidateIBAN(req.ToIBAN); err != nil {
		return nil, err
	}
	if err := domain.ValidateConcept(req.Concept); err != nil {
		return nil, err
	}
	transferType := domain.TransferType(req.Type)
	if err := transferType.Validate(); err != nil {
		return nil, err
	}
	if _, err := domain.ValidateTransferDate(req.Date, now); err != nil {
		return nil, err
	}
	amount, err := domain.ValidateTransferAmount(decimal.NewFromFloat(req.Amount))
	if err != nil {
		return nil, err
	}

	transfer := domain.NewTransferRequest(req.FromIBAN, req.ToIBAN, req.Concept, transferType, req.Date, amount, now)

	s.submitMu.Lock()
	defer s.submitMu.Unlock()

	existing, err := s.transferRepo.ListTransfers(ctx)
	if err != nil {
		logger.Error("Failed to load transfer ledger", slog.String("error", err.Error()))
		return nil, err
	}
	for _, recorded := range existing {
		if transfer.SameBusinessOperation(recorded) {
			logger.Warn("Duplicate transfer rejected",
				slog.String("from_iban", transfer.FromIBAN),
				slog.String("to_iban", transfer.ToIBAN),
			)
			return nil, apperrors.ErrDuplicateTransfer
		}
	}

	if err := s.transferRepo.SaveTransfer(ctx, transfer); err != nil {
		logger.Error("Failed to save transfer in repository", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Transfer recorded", slog.String("transfer_code", transfer.TransferCode()))
	return &transfer, nil
}

// ListTransfers returns recorded transfers, oldest first. A limit of zero
// returns the full ledger.
func (s *TransferService) ListTransfers(ctx context.Context, limit, offset int) ([]domain.TransferRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	transfers, err := s.transferRepo.ListTransfers(ctx)
	if err != nil {
		logger.Error("Failed to list transfers from repository", slog.String("error", err.Error()))
		return nil, err
	}
	return pagination.Window(transfers, limit, offset), nil
}
