package kernel

import (
	"fmt"

	"forwarding/internal/pkg/errs"
)

// portCodeLength is the fixed length of a UN/LOCODE port code.
const portCodeLength = 5

// PortCode is a UN/LOCODE-style port identifier such as "MYPKG" or "SGSIN":
// a two-letter country code followed by a three-character location code.
//
// The zero value is invalid; use NewPortCode.
type PortCode struct {
	code string
}

// NewPortCode creates a PortCode from its five-character string form.
// The first two characters must be upper-case letters; the remaining three may
// be upper-case letters or the digits 2-9 (UN/LOCODE excludes 0 and 1).
func NewPortCode(s string) (PortCode, error) {
	if len(s) != portCodeLength {
		return PortCode{}, errs.NewValueIsInvalidErrorWithCause(
			"portCode",
			fmt.Errorf("%q is not %d characters long", s, portCodeLength),
		)
	}
	for i := range len(s) {
		c := s[i]
		isLetter := c >= 'A' && c <= 'Z'
		isDigit := c >= '2' && c <= '9'
		if i < 2 && !isLetter {
			return PortCode{}, errs.NewValueIsInvalidErrorWithCause(
				"portCode",
				fmt.Errorf("%q does not start with a two-letter country code", s),
			)
		}
		if !isLetter && !isDigit {
			return PortCode{}, errs.NewValueIsInvalidErrorWithCause(
				"portCode",
				fmt.Errorf("%q contains invalid character %q", s, c),
			)
		}
	}
	return PortCode{code: s}, nil
}

// String returns the five-character code.
func (p PortCode) String() string {
	return p.code
}

// IsEqual compares two port codes for equality.
func (p PortCode) IsEqual(other PortCode) bool {
	return p.code == other.code
}

// Validate checks that the code was properly constructed.
// The zero value fails validation.
func (p PortCode) Validate() error {
	if p.code == "" {
		return errs.NewValueIsRequiredError("PortCode must be created via NewPortCode")
	}
	return nil
}
