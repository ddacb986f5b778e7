package dto

import (
	"github.com/uc3m-money/account_management_app/internal/core/domain"
)

// CreateTransferRequest defines the data needed to submit a transfer.
// Field content is checked by the transfer validators in the service layer
// rather than by binding tags, so every failure surfaces as one of the
// transfer error kinds instead of a generic binding error.
type CreateTransferRequest struct {
	FromIBAN string  `json:"from_iban"`
	ToIBAN   string  `json:"to_iban"`
	Concept  string  `json:"transfer_concept"`
	Type     string  `json:"transfer_type"`
	Date     string  `json:"transfer_date"`
	Amount   float64 `json:"transfer_amount"`
}

// TransferResponse defines the data returned for a recorded transfer.
// Mirrors the ledger record, transfer code included.
type TransferResponse struct {
	FromIBAN  string  `json:"from_iban"`
	ToIBAN    string  `json:"to_iban"`
	Concept   string  `json:"transfer_concept"`
	Type      string  `json:"transfer_type"`
	Date      string  `json:"transfer_date"`
	Amount    float64 `json:"transfer_amount"`
	TimeStamp float64 `json:"time_stamp"`
	Code      string  `json:"transfer_code"`
}

// ToTransferResponse converts a domain.TransferRequest to TransferResponse DTO
func ToTransferResponse(t *domain.TransferRequest) TransferResponse {
	return TransferResponse{
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

// ListTransfersParams defines query parameters for listing transfers.
// A limit of 0 returns the full ledger.
type ListTransfersParams struct {
	Limit  int `form:"limit,default=0"`
	Offset int `form:"offset,default=0"`
}

// ToListTransferResponse converts a slice of domain transfers to response DTOs
func ToListTransferResponse(transfers []domain.TransferRequest) []TransferResponse {
	res := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		res[i] = ToTransferResponse(&t)
	}
	return res
}

// ListTransfersResponse wraps the list of recorded transfers.
type ListTransfersResponse struct {
	Transfers []TransferResponse `json:"transfers"`
}
