package apperrors

import (
	"errors"
	"fmt"
)

// Broad categories. Handlers branch on these to pick an HTTP status;
// callers that need the precise failure match the specific sentinels
// below, which all wrap one of the categories.
var (
	// ErrValidation indicates that input data failed validation checks.
	ErrValidation = errors.New("validation error")
	// ErrNotFound indicates that a requested resource could not be found.
	ErrNotFound = errors.New("resource not found")
	// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
	ErrDuplicate = errors.New("resource already exists")
	// ErrStore indicates a failure in the ledger file store itself.
	ErrStore = errors.New("store error")
)

// IBAN validation failures.
var (
	ErrInvalidIBANFormat   = fmt.Errorf("%w: invalid IBAN format", ErrValidation)
	ErrInvalidIBANChecksum = fmt.Errorf("%w: invalid IBAN control digit", ErrValidation)
)

// Deposit payload failures.
var (
	ErrMissingKey           = fmt.Errorf("%w: missing required key in deposit input", ErrValidation)
	ErrInvalidDepositAmount = fmt.Errorf("%w: invalid deposit amount", ErrValidation)
	ErrZeroDepositAmount    = fmt.Errorf("%w: deposit must be greater than 0", ErrValidation)
)

// Transfer parameter failures.
var (
	ErrInvalidConcept        = fmt.Errorf("%w: invalid concept format", ErrValidation)
	ErrInvalidTransferType   = fmt.Errorf("%w: invalid transfer type", ErrValidation)
	ErrInvalidDateFormat     = fmt.Errorf("%w: invalid date format", ErrValidation)
	ErrPastDate              = fmt.Errorf("%w: transfer date must be today or later", ErrValidation)
	ErrYearOutOfRange        = fmt.Errorf("%w: transfer year must be between 2025 and 2050", ErrValidation)
	ErrInvalidTransferAmount = fmt.Errorf("%w: invalid transfer amount", ErrValidation)
	ErrAmountOutOfRange      = fmt.Errorf("%w: transfer amount must be between 10.00 and 10000.00", ErrValidation)
)

// Orchestration failures.
var (
	ErrDuplicateTransfer = fmt.Errorf("%w: duplicated transfer in transfer list", ErrDuplicate)
	ErrIBANNotFound      = fmt.Errorf("%w: IBAN not found in transaction log", ErrNotFound)
)

// Store failures. ErrMissingInput is for required input files supplied by
// the caller; a missing ledger file is not an error, it reads as empty.
var (
	ErrMissingInput   = fmt.Errorf("%w: input file not found", ErrStore)
	ErrMalformedStore = fmt.Errorf("%w: file is not a valid JSON record store", ErrStore)
)
