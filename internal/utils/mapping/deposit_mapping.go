package mapping

import (
	"github.com/shopspring/decimal"

	"github.com/uc3m-money/account_management_app/internal/core/domain"
	"github.com/uc3m-money/account_management_app/internal/models"
)

// ToDomainDepositInput converts a decoded deposit input file payload,
// preserving which keys were present.
func ToDomainDepositInput(m models.DepositInput) domain.DepositInput {
	return domain.DepositInput{
		IBAN:   m.IBAN,
		Amount: m.Amount,
	}
}

// ToModelDeposit converts a domain deposit to its on-disk record, deriving
// the signature from the canonical fields.
func ToModelDeposit(d domain.AccountDeposit) models.Deposit {
	return models.Deposit{
		Alg:       d.Alg,
		Type:      d.Type,
		ToIBAN:    d.ToIBAN,
		Amount:    d.Amount.InexactFloat64(),
		Date:      d.DepositDate,
		Signature: d.Signature(),
	}
}

// ToDomainDeposit converts an on-disk deposit record back to the domain type.
func ToDomainDeposit(m models.Deposit) domain.AccountDeposit {
	return domain.AccountDeposit{
		Alg:         m.Alg,
		Type:        m.Type,
		ToIBAN:      m.ToIBAN,
		Amount:      decimal.NewFromFloat(m.Amount),
		DepositDate: m.Date,
	}
}

// ToDomainDeposits converts a slice of on-disk deposit records.
func ToDomainDeposits(ms []models.Deposit) []domain.AccountDeposit {
	deposits := make([]domain.AccountDeposit, 0, len(ms))
	for _, m := range ms {
		deposits = append(deposits, ToDomainDeposit(m))
	}
	return deposits
}
