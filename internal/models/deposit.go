package models

// DepositInput is the JSON shape of an externally supplied deposit request
// file. Keys are upper-case by contract; pointers record key absence.
type DepositInput struct {
	IBAN   *string `json:"IBAN"`
	Amount *string `json:"AMOUNT"`
}

// Deposit is the on-disk shape of one deposit ledger record.
type Deposit struct {
	Alg       string  `json:"alg"`
	Type      string  `json:"type"`
	ToIBAN    string  `json:"to_iban"`
	Amount    float64 `json:"deposit_amount"`
	Date      float64 `json:"deposit_date"`
	Signature string  `json:"deposit_signature"`
}
