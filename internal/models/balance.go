package models

// BalanceSnapshot is the on-disk shape of one balance calculation result.
// Field casing is uneven on purpose; it mirrors the historical store format.
type BalanceSnapshot struct {
	IBAN    string  `json:"IBAN"`
	Time    float64 `json:"time"`
	Balance float64 `json:"BALANCE"`
}
