package domain

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/uc3m-money/account_management_app/internal/apperrors"
)

// TransferType enumerates the accepted transfer execution classes.
// "INMEDIATE" is the historical literal present in every stored ledger;
// correcting the spelling would change the accepted input set.
type TransferType string

const (
	TransferOrdinary  TransferType = "ORDINARY"
	TransferInmediate TransferType = "INMEDIATE"
	TransferUrgent    TransferType = "URGENT"
)

// Validate checks that t is exactly one of the three accepted literals.
func (t TransferType) Validate() error {
	switch t {
	case TransferOrdinary, TransferInmediate, TransferUrgent:
		return nil
	}
	return fmt.Errorf("%w: %q", apperrors.ErrInvalidTransferType, string(t))
}

// TransferDateLayout is the calendar-day format carried by transfer requests.
const TransferDateLayout = "02/01/2006"

const (
	conceptMinLen = 10
	conceptMaxLen = 30

	transferYearMin = 2025
	transferYearMax = 2050
)

var (
	conceptPattern      = regexp.MustCompile(`^[a-zA-Z]+(\s[a-zA-Z]+)+$`)
	transferDatePattern = regexp.MustCompile(`^([0-2][0-9]|3[0-1])/(0[0-9]|1[0-2])/[0-9]{4}$`)
)

var (
	transferAmountMin = decimal.NewFromInt(10)
	transferAmountMax = decimal.NewFromInt(10000)
)

// ValidateConcept checks a transfer concept: 10 to 30 characters overall,
// made of alphabetic words separated by whitespace, at least two words.
func ValidateConcept(concept string) error {
	if len(concept) < conceptMinLen || len(concept) > conceptMaxLen {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidConcept, concept)
	}
	if !conceptPattern.MatchString(concept) {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidConcept, concept)
	}
	return nil
}

// ValidateTransferDate checks a DD/MM/YYYY transfer date against the clock
// reading now: the digit shape is checked first, then strict calendar
// parsing, then the date must be today or later (UTC, date-only) and its
// year within the accepted window. The parsed day is returned.
func ValidateTransferDate(date string, now time.Time) (time.Time, error) {
	if !transferDatePattern.MatchString(date) {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDateFormat, date)
	}
	day, err := time.ParseInLocation(TransferDateLayout, date, time.UTC)
	if err != nil {
		// Shape matched but the calendar rejects it, e.g. 31/02.
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDateFormat, date)
	}
	utcNow := now.UTC()
	today := time.Date(utcNow.Year(), utcNow.Month(), utcNow.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) {
		return time.Time{}, fmt.Errorf("%w: %s", apperrors.ErrPastDate, date)
	}
	if day.Year() < transferYearMin || day.Year() > transferYearMax {
		return time.Time{}, fmt.Errorf("%w: year %d", apperrors.ErrYearOutOfRange, day.Year())
	}
	return day, nil
}

// ValidateTransferAmount checks that amount carries at most two fractional
// digits of value and lies in [10.00, 10000.00]. Amounts with excess
// precision are rejected, never rounded.
func ValidateTransferAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.Equal(amount.Round(2)) {
		return decimal.Decimal{}, fmt.Errorf("%w: %s carries more than two decimal places", apperrors.ErrInvalidTransferAmount, amount)
	}
	if amount.LessThan(transferAmountMin) || amount.GreaterThan(transferAmountMax) {
		return decimal.Decimal{}, fmt.Errorf("%w: got %s", apperrors.ErrAmountOutOfRange, amount)
	}
	return amount, nil
}

// TransferRequest is an accepted money movement between two accounts.
// Records are immutable once constructed; the ledger only ever appends.
type TransferRequest struct {
	FromIBAN  string
	ToIBAN    string
	Concept   string
	Type      TransferType
	Date      string // DD/MM/YYYY, as submitted
	Amount    decimal.Decimal
	TimeStamp float64 // capture time, UTC Unix seconds
}

// NewTransferRequest builds a transfer record, stamping capturedAt as the
// submission time.
func NewTransferRequest(fromIBAN, toIBAN, concept string, transferType TransferType, date string, amount decimal.Decimal, capturedAt time.Time) TransferRequest {
	return TransferRequest{
		FromIBAN:  fromIBAN,
		ToIBAN:    toIBAN,
		Concept:   concept,
		Type:      transferType,
		Date:      date,
		Amount:    amount,
		TimeStamp: UnixSeconds(capturedAt),
	}
}

// TransferCode derives the identity fingerprint of the movement: an MD5
// hex digest over fromIBAN, toIBAN, capture timestamp and amount,
// concatenated without separators. Concept, date and type are deliberately
// excluded: the code identifies the money movement, while duplicate
// detection (SameBusinessOperation) identifies the submitted request.
// The digest is a fingerprint, not a security credential.
func (t TransferRequest) TransferCode() string {
	payload := t.FromIBAN + t.ToIBAN + FormatTimestamp(t.TimeStamp) + t.Amount.String()
	digest := md5.Sum([]byte(payload))
	return hex.EncodeToString(digest[:])
}

// SameBusinessOperation reports whether other carries the same six business
// fields: both IBANs, date, amount, concept and type. The capture timestamp
// is excluded, so resubmitting identical business fields later is still the
// same operation even though its TransferCode would differ.
func (t TransferRequest) SameBusinessOperation(other TransferRequest) bool {
	return t.FromIBAN == other.FromIBAN &&
		t.ToIBAN == other.ToIBAN &&
		t.Date == other.Date &&
		t.Amount.Equal(other.Amount) &&
		t.Concept == other.Concept &&
		t.Type == other.Type
}
