package dto

import (
	"github.com/uc3m-money/account_management_app/internal/core/domain"
	"github.com/uc3m-money/account_management_app/internal/utils"
)

// CreateDepositRequest defines the raw payload of a deposit submission.
// Keys are upper-case by contract with the legacy input format. Pointers
// keep an absent key distinguishable from an empty string, so the
// required-key check stays with the deposit validator.
type CreateDepositRequest struct {
	IBAN   *string `json:"IBAN"`
	Amount *string `json:"AMOUNT"`
}

// ToDomainInput converts the request to the domain payload form.
func (r CreateDepositRequest) ToDomainInput() domain.DepositInput {
	return domain.DepositInput{
		IBAN:   r.IBAN,
		Amount: r.Amount,
	}
}

// CreateDepositFromFileRequest points the server at a deposit input file.
type CreateDepositFromFileRequest struct {
	Path string `json:"path" binding:"required"`
}

// DepositResponse defines the data returned for a recorded deposit. The
// amount is echoed in the canonical "EUR DDDD.DD" notation deposits are
// submitted in, not as the stored number.
type DepositResponse struct {
	Alg       string  `json:"alg"`
	Type      string  `json:"type"`
	ToIBAN    string  `json:"to_iban"`
	Amount    string  `json:"deposit_amount"`
	Date      float64 `json:"deposit_date"`
	Signature string  `json:"deposit_signature"`
}

// ToDepositResponse converts a domain.AccountDeposit to DepositResponse DTO
func ToDepositResponse(d *domain.AccountDeposit) DepositResponse {
	return DepositResponse{
		Alg:       d.Alg,
		Type:      d.Type,
		ToIBAN:    d.ToIBAN,
		Amount:    utils.FormatDepositAmount(d.Amount),
		Date:      d.DepositDate,
		Signature: d.Signature(),
	}
}

// ListDepositsParams defines query parameters for listing deposits.
// A limit of 0 returns the full ledger.
type ListDepositsParams struct {
	Limit  int `form:"limit,default=0"`
	Offset int `form:"offset,default=0"`
}

// ToListDepositResponse converts a slice of domain deposits to response DTOs
func ToListDepositResponse(deposits []domain.AccountDeposit) []DepositResponse {
	res := make([]DepositResponse, len(deposits))
	for i, d := range deposits {
		res[i] = ToDepositResponse(&d)
	}
	return res
}

// ListDepositsResponse wraps the list of recorded deposits.
type ListDepositsResponse struct {
	Deposits []DepositResponse `json:"deposits"`
}
