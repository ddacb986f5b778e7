package models

// Transaction is one entry of the transactions log consumed by the balance
// calculation. The log is produced externally; we only ever read it, so
// unknown extra fields are ignored on decode.
type Transaction struct {
	IBAN   string  `json:"IBAN"`
	Amount float64 `json:"amount"`
}
