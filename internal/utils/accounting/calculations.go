package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/uc3m-money/account_management_app/internal/core/domain"
)

// SumForIBAN adds up the amounts of every transaction booked against the
// given IBAN. The second return value reports how many entries matched so
// callers can tell a genuine zero balance apart from an unknown account.
func SumForIBAN(transactions []domain.Transaction, iban string) (decimal.Decimal, int) {
	sum := decimal.Zero
	matched := 0
	for _, txn := range transactions {
		if txn.IBAN != iban {
			continue
		}
		sum = sum.Add(txn.Amount)
		matched++
	}
	return sum, matched
}
