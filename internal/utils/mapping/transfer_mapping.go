package mapping

import (
	"github.com/shopspring/decimal"

	"github.com/uc3m-money/account_management_app/internal/core/domain"
	"github.com/uc3m-money/account_management_app/internal/models"
)

// ToModelTransfer converts a domain transfer request to its on-disk record,
// deriving the transfer code from the canonical fields.
func ToModelTransfer(t domain.TransferRequest) models.Transfer {
	return models.Transfer{
		FromIBAN:  t.FromIBAN,
		ToIBAN:    t.ToIBAN,
		Concept:   t.Concept,
		Type:      string(t.Type),
		Date:      t.Date,
		Amount:    t.Amount.InexactFloat64(),
		TimeStamp: t.TimeStamp,
		Code:      t.TransferCode(),
	}
}

// ToDomainTransfer converts an on-disk transfer record back to the domain type.
func ToDomainTransfer(m models.Transfer) domain.TransferRequest {
	return domain.TransferRequest{
		FromIBAN:  m.FromIBAN,
		ToIBAN:    m.ToIBAN,
		Concept:   m.Concept,
		Type:      domain.TransferType(m.Type),
		Date:      m.Date,
		Amount:    decimal.NewFromFloat(m.Amount),
		TimeStamp: m.TimeStamp,
	}
}

// ToDomainTransfers converts a slice of on-disk transfer records.
func ToDomainTransfers(ms []models.Transfer) []domain.TransferRequest {
	transfers := make([]domain.TransferRequest, 0, len(ms))
	for _, m := range ms {
		transfers = append(transfers, ToDomainTransfer(m))
	}
	return transfers
}
