package models

// Transfer is the on-disk shape of one transfer ledger record. The JSON
// field names are the wire contract of the transfers store and must not
// change; existing ledgers were written with them.
type Transfer struct {
	FromIBAN  string  `json:"from_iban"`
	ToIBAN    string  `json:"to_iban"`
	Concept   string  `json:"transfer_concept"`
	Type      string  `json:"transfer_type"`
	Date      string  `json:"transfer_date"`
	Amount    float64 `json:"transfer_amount"`
	TimeStamp float64 `json:"time_stamp"`
	Code      string  `json:"transfer_code"`
}
