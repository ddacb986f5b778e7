package domain

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/uc3m-money/account_management_app/internal/apperrors"
)

// spanishIBANPattern matches the only account identifier accepted by the
// ledger: "ES" followed by 22 digits (2 control digits + 20 account digits).
var spanishIBANPattern = regexp.MustCompile(`^ES[0-9]{22}$`)

var mod97 = big.NewInt(97)

// ValidateIBAN checks the syntax and the ISO 7064 mod-97 control digits of
// a Spanish IBAN. The input is returned unchanged on success; it is never
// normalised.
func ValidateIBAN(iban string) (string, error) {
	if !spanishIBANPattern.MatchString(iban) {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidIBANFormat, iban)
	}
	check := int(iban[2]-'0')*10 + int(iban[3]-'0')

	// Zero the control digits, rotate the first four characters to the end
	// and substitute A=10..Z=35 before taking the big-integer remainder.
	rearranged := iban[4:] + iban[:2] + "00"
	var numeral strings.Builder
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		if c >= 'A' && c <= 'Z' {
			numeral.WriteString(strconv.Itoa(int(c-'A') + 10))
			continue
		}
		numeral.WriteByte(c)
	}

	value, ok := new(big.Int).SetString(numeral.String(), 10)
	if !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidIBANFormat, iban)
	}
	remainder := new(big.Int).Mod(value, mod97)
	if 98-int(remainder.Int64()) != check {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidIBANChecksum, iban)
	}
	return iban, nil
}
