package dto

import (
	"github.com/uc3m-money/account_management_app/internal/core/domain"
)

// BalanceResponse defines the data returned for a computed balance
// snapshot. Field names are normalized here; the store keeps its own
// historical casing.
type BalanceResponse struct {
	IBAN    string  `json:"iban"`
	Time    float64 `json:"time"`
	Balance float64 `json:"balance"`
}

// ToBalanceResponse converts a domain.BalanceSnapshot to BalanceResponse DTO
func ToBalanceResponse(s *domain.BalanceSnapshot) BalanceResponse {
	return BalanceResponse{
		IBAN:    s.IBAN,
		Time:    s.Time,
		Balance: s.Balance.InexactFloat64(),
	}
}

// ToListBalanceResponse converts a slice of domain snapshots to response DTOs
func ToListBalanceResponse(snapshots []domain.BalanceSnapshot) []BalanceResponse {
	res := make([]BalanceResponse, len(snapshots))
	for i, s := range snapshots {
		res[i] = ToBalanceResponse(&s)
	}
	return res
}

// ListBalancesResponse wraps the balance snapshots recorded for an account.
type ListBalancesResponse struct {
	Balances []BalanceResponse `json:"balances"`
}
