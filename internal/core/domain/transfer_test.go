package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/uc3m-money/account_management_app/internal/apperrors"
	"github.com/uc3m-money/account_management_app/internal/core/domain"
)

func TestValidateConcept(t *testing.T) {
	tests := []struct {
		name    string
		concept string
		wantErr error
	}{
		{
			name:    "Two words within length",
			concept: "Payment for services",
		},
		{
			name:    "Sixteen characters two words",
			concept: "Transfer payment",
		},
		{
			name:    "Three words within length",
			concept: "Rent and utilities",
		},
		{
			name:    "Exactly ten characters",
			concept: "abcd efghi",
		},
		{
			name:    "Exactly thirty characters",
			concept: "abcdefghij klmnopqrst uvwxyzab",
		},
		{
			name:    "Tab separates words",
			concept: "Payment\trent",
		},
		{
			name:    "Too short",
			concept: "Short one",
			wantErr: apperrors.ErrInvalidConcept,
		},
		{
			name:    "Thirty one characters",
			concept: "abcdefghij klmnopqrst uvwxyzabc",
			wantErr: apperrors.ErrInvalidConcept,
		},
		{
			name:    "Single word",
			concept: "Electricity",
			wantErr: apperrors.ErrInvalidConcept,
		},
		{
			name:    "Digits not allowed",
			concept: "Pay 4 rent now",
			wantErr: apperrors.ErrInvalidConcept,
		},
		{
			name:    "Single alphanumeric token",
			concept: "invalid123concept",
			wantErr: apperrors.ErrInvalidConcept,
		},
		{
			name:    "Leading whitespace",
			concept: " Payment rent",
			wantErr: apperrors.ErrInvalidConcept,
		},
		{
			name:    "Consecutive separators",
			concept: "Payment  rent",
			wantErr: apperrors.ErrInvalidConcept,
		},
		{
			name:    "Empty concept",
			concept: "",
			wantErr: apperrors.ErrInvalidConcept,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateConcept(tt.concept)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTransferTypeValidate(t *testing.T) {
	tests := []struct {
		name         string
		transferType domain.TransferType
		wantErr      error
	}{
		{name: "Ordinary", transferType: domain.TransferOrdinary},
		{name: "Inmediate", transferType: domain.TransferInmediate},
		{name: "Urgent", transferType: domain.TransferUrgent},
		{
			// The accepted literal is INMEDIATE; the English spelling is not in the set.
			name:         "IMMEDIATE rejected",
			transferType: domain.TransferType("IMMEDIATE"),
			wantErr:      apperrors.ErrInvalidTransferType,
		},
		{
			name:         "Lowercase rejected",
			transferType: domain.TransferType("ordinary"),
			wantErr:      apperrors.ErrInvalidTransferType,
		},
		{
			name:         "Unknown type",
			transferType: domain.TransferType("EXPRESS"),
			wantErr:      apperrors.ErrInvalidTransferType,
		},
		{
			name:         "Empty type",
			transferType: domain.TransferType(""),
			wantErr:      apperrors.ErrInvalidTransferType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transferType.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateTransferDate(t *testing.T) {
	now := time.Date(2026, time.August, 25, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    string
		want    time.Time
		wantErr error
	}{
		{
			name: "Today",
			date: "25/08/2026",
			want: time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Five days ahead",
			date: "30/08/2026",
			want: time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Last day of the accepted window",
			date: "31/12/2050",
			want: time.Date(2050, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Five days ago",
			date:    "20/08/2026",
			wantErr: apperrors.ErrPastDate,
		},
		{
			name:    "Past beats year window",
			date:    "25/12/2020",
			wantErr: apperrors.ErrPastDate,
		},
		{
			name:    "Beyond the accepted window",
			date:    "01/01/2051",
			wantErr: apperrors.ErrYearOutOfRange,
		},
		{
			name:    "ISO layout rejected",
			date:    "2026-08-30",
			wantErr: apperrors.ErrInvalidDateFormat,
		},
		{
			name:    "Single digit day",
			date:    "1/09/2026",
			wantErr: apperrors.ErrInvalidDateFormat,
		},
		{
			name:    "Day thirty two",
			date:    "32/01/2026",
			wantErr: apperrors.ErrInvalidDateFormat,
		},
		{
			name:    "Day zero",
			date:    "00/01/2026",
			wantErr: apperrors.ErrInvalidDateFormat,
		},
		{
			name:    "Month thirteen",
			date:    "01/13/2026",
			wantErr: apperrors.ErrInvalidDateFormat,
		},
		{
			name:    "Month zero",
			date:    "15/00/2026",
			wantErr: apperrors.ErrInvalidDateFormat,
		},
		{
			name:    "Thirty first of February",
			date:    "31/02/2027",
			wantErr: apperrors.ErrInvalidDateFormat,
		},
		{
			name:    "Empty date",
			date:    "",
			wantErr: apperrors.ErrInvalidDateFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ValidateTransferDate(tt.date, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateTransferDate_YearWindowLowerBound(t *testing.T) {
	// With a clock before the window opens, a non-past date can still sit
	// below the accepted years.
	now := time.Date(2020, time.June, 15, 9, 0, 0, 0, time.UTC)

	_, err := domain.ValidateTransferDate("25/12/2020", now)
	assert.ErrorIs(t, err, apperrors.ErrYearOutOfRange)
}

func TestValidateTransferAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr error
	}{
		{name: "Lower bound", amount: decimal.NewFromInt(10)},
		{name: "Upper bound", amount: decimal.NewFromInt(10000)},
		{name: "Two decimals", amount: decimal.NewFromFloat(430.50)},
		{name: "One decimal", amount: decimal.NewFromFloat(25.5)},
		{
			name:    "Just below lower bound",
			amount:  decimal.NewFromFloat(9.99),
			wantErr: apperrors.ErrAmountOutOfRange,
		},
		{
			name:    "Just above upper bound",
			amount:  decimal.NewFromFloat(10000.01),
			wantErr: apperrors.ErrAmountOutOfRange,
		},
		{
			name:    "Negative amount",
			amount:  decimal.NewFromInt(-50),
			wantErr: apperrors.ErrAmountOutOfRange,
		},
		{
			name:    "Zero amount",
			amount:  decimal.NewFromInt(0),
			wantErr: apperrors.ErrAmountOutOfRange,
		},
		{
			name:    "Three decimals",
			amount:  decimal.NewFromFloat(10.555),
			wantErr: apperrors.ErrInvalidTransferAmount,
		},
		{
			// Precision is checked before the range.
			name:    "Three decimals above upper bound",
			amount:  decimal.NewFromFloat(10000.555),
			wantErr: apperrors.ErrInvalidTransferAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ValidateTransferAmount(tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.amount))
		})
	}
}

func testTransfer(capturedAt time.Time) domain.TransferRequest {
	return domain.NewTransferRequest(
		"ES9121000418450200051332",
		"ES7921000813610123456789",
		"Payment for services",
		domain.TransferOrdinary,
		"25/12/2026",
		decimal.NewFromFloat(250.75),
		capturedAt,
	)
}

func TestTransferCode(t *testing.T) {
	capturedAt := time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC)
	transfer := testTransfer(capturedAt)

	code := transfer.TransferCode()
	assert.Regexp(t, "^[0-9a-f]{32}$", code)

	// Deterministic for identical records.
	assert.Equal(t, code, transfer.TransferCode())
	assert.Equal(t, code, testTransfer(capturedAt).TransferCode())

	// Sensitive to the identity fields.
	later := testTransfer(capturedAt.Add(1 * time.Second))
	assert.NotEqual(t, code, later.TransferCode())

	richer := testTransfer(capturedAt)
	richer.Amount = decimal.NewFromFloat(250.76)
	assert.NotEqual(t, code, richer.TransferCode())

	reversed := testTransfer(capturedAt)
	reversed.FromIBAN, reversed.ToIBAN = reversed.ToIBAN, reversed.FromIBAN
	assert.NotEqual(t, code, reversed.TransferCode())

	// Concept, type and date do not participate.
	relabeled := testTransfer(capturedAt)
	relabeled.Concept = "Rent and utilities"
	relabeled.Type = domain.TransferUrgent
	relabeled.Date = "26/12/2026"
	assert.Equal(t, code, relabeled.TransferCode())

	// The amount feeds the digest in canonical form, so a rescaled equal
	// value yields the same code.
	rescaled := testTransfer(capturedAt)
	rescaled.Amount = decimal.New(250750, -3)
	assert.Equal(t, code, rescaled.TransferCode())
}

func TestSameBusinessOperation(t *testing.T) {
	capturedAt := time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC)
	transfer := testTransfer(capturedAt)

	t.Run("Resubmission with a fresh timestamp", func(t *testing.T) {
		resubmitted := testTransfer(capturedAt.Add(3 * time.Minute))
		assert.True(t, transfer.SameBusinessOperation(resubmitted))
		// Same operation, yet a distinct movement fingerprint.
		assert.NotEqual(t, transfer.TransferCode(), resubmitted.TransferCode())
	})

	t.Run("Equal value at a different scale", func(t *testing.T) {
		rescaled := testTransfer(capturedAt)
		rescaled.Amount = decimal.New(250750, -3)
		assert.True(t, transfer.SameBusinessOperation(rescaled))
	})

	t.Run("Any business field breaks the match", func(t *testing.T) {
		mutations := map[string]func(*domain.TransferRequest){
			"from": func(tr *domain.TransferRequest) { tr.FromIBAN = "ES0021000418450200051332" },
			"to":   func(tr *domain.TransferRequest) { tr.ToIBAN = "ES0021000418450200051332" },
			"concept": func(tr *domain.TransferRequest) {
				tr.Concept = "Rent and utilities"
			},
			"type":   func(tr *domain.TransferRequest) { tr.Type = domain.TransferUrgent },
			"date":   func(tr *domain.TransferRequest) { tr.Date = "26/12/2026" },
			"amount": func(tr *domain.TransferRequest) { tr.Amount = decimal.NewFromFloat(250.76) },
		}
		for field, mutate := range mutations {
			other := testTransfer(capturedAt)
			mutate(&other)
			assert.False(t, transfer.SameBusinessOperation(other), "mutated %s should not match", field)
		}
	})

	t.Run("Concept change keeps the code", func(t *testing.T) {
		relabeled := testTransfer(capturedAt)
		relabeled.Concept = "Rent and utilities"
		assert.False(t, transfer.SameBusinessOperation(relabeled))
		assert.Equal(t, transfer.TransferCode(), relabeled.TransferCode())
	})
}
