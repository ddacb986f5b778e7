package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/uc3m-money/account_management_app/internal/apperrors"
)

const (
	// DepositAlgorithm names the digest used for deposit signatures.
	DepositAlgorithm = "SHA-256"
	// DepositKind is the fixed record type stored with every deposit.
	DepositKind = "DEPOSIT"
)

// depositAmountPattern is the only accepted wire form for deposit amounts:
// the EUR prefix, four integer digits, a dot and two fractional digits.
var depositAmountPattern = regexp.MustCompile(`^EUR [0-9]{4}\.[0-9]{2}$`)

// ParseDepositAmount validates an "EUR DDDD.DD" amount string and returns
// its decimal value. A zero amount is rejected; negative amounts cannot be
// expressed by the pattern, so the accepted range is (0, 9999.99] by
// construction.
func ParseDepositAmount(raw string) (decimal.Decimal, error) {
	if !depositAmountPattern.MatchString(raw) {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDepositAmount, raw)
	}
	amount, err := decimal.NewFromString(raw[len("EUR "):])
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDepositAmount, raw)
	}
	if amount.IsZero() {
		return decimal.Decimal{}, apperrors.ErrZeroDepositAmount
	}
	return amount, nil
}

// AccountDeposit is money credited to a single account. Records are
// immutable and appended to the deposit ledger; deposits are never
// deduplicated.
type AccountDeposit struct {
	Alg         string
	Type        string
	ToIBAN      string
	Amount      decimal.Decimal
	DepositDate float64 // capture time, UTC Unix seconds
}

// NewAccountDeposit builds a deposit record, stamping capturedAt as the
// deposit time.
func NewAccountDeposit(toIBAN string, amount decimal.Decimal, capturedAt time.Time) AccountDeposit {
	return AccountDeposit{
		Alg:         DepositAlgorithm,
		Type:        DepositKind,
		ToIBAN:      toIBAN,
		Amount:      amount,
		DepositDate: UnixSeconds(capturedAt),
	}
}

// DepositInput is the raw payload of a deposit request before validation,
// as supplied over HTTP or through an input file. Pointer fields keep an
// absent key distinguishable from an empty value.
type DepositInput struct {
	IBAN   *string
	Amount *string
}

// ValidateDepositInput checks a raw deposit payload and returns the
// validated IBAN and amount. Both keys are required; there are no defaults.
func ValidateDepositInput(in DepositInput) (string, decimal.Decimal, error) {
	if in.IBAN == nil || in.Amount == nil {
		return "", decimal.Decimal{}, apperrors.ErrMissingKey
	}
	iban, err := ValidateIBAN(*in.IBAN)
	if err != nil {
		return "", decimal.Decimal{}, err
	}
	amount, err := ParseDepositAmount(*in.Amount)
	if err != nil {
		return "", decimal.Decimal{}, err
	}
	return iban, amount, nil
}

// signatureString is the canonical form hashed into the deposit signature.
// Field order and separators are fixed; the amount and the timestamp use
// their shortest round-tripping decimal form.
func (d AccountDeposit) signatureString() string {
	return "{alg:" + d.Alg +
		",typ:" + d.Type +
		",iban:" + d.ToIBAN +
		",amount:" + d.Amount.String() +
		",deposit_date:" + FormatTimestamp(d.DepositDate) + "}"
}

// Signature returns the SHA-256 content hash of the deposit as 64 lowercase
// hex characters. Equal field values always yield an equal signature.
func (d AccountDeposit) Signature() string {
	digest := sha256.Sum256([]byte(d.signatureString()))
	return hex.EncodeToString(digest[:])
}
