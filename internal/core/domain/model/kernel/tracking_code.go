package kernel

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"forwarding/internal/pkg/errs"
)

// trackingCodeAlphabet is the symbol set tracking codes are drawn from.
// Visually ambiguous glyphs (0/O, 1/I) are excluded so codes survive being
// read over the phone or copied from a printed document.
const trackingCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// trackingCodeLength is the fixed length of a tracking code.
const trackingCodeLength = 7

// TrackingCode is the short public-facing shipment reference shared with
// customers, distinct from the internal ShipmentID. It is a fixed-length
// string of symbols from trackingCodeAlphabet.
//
// Codes are drawn randomly and are NOT checked for uniqueness against existing
// codes. At the shipment volumes this system handles the birthday-bound
// collision probability is negligible; the tracking index insert would surface
// a duplicate as a key conflict if it ever happened.
type TrackingCode struct {
	code string
}

// NewRandomTrackingCode draws a fresh tracking code of seven independent
// symbols from the code alphabet.
func NewRandomTrackingCode() TrackingCode {
	var b strings.Builder
	b.Grow(trackingCodeLength)
	for range trackingCodeLength {
		b.WriteByte(trackingCodeAlphabet[rand.IntN(len(trackingCodeAlphabet))])
	}
	return TrackingCode{code: b.String()}
}

// TrackingCodeFromString reconstructs a tracking code from its persisted form,
// validating length and alphabet membership.
func TrackingCodeFromString(s string) (TrackingCode, error) {
	if len(s) != trackingCodeLength {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingCode",
			fmt.Errorf("%q is not %d characters long", s, trackingCodeLength),
		)
	}
	for i := range len(s) {
		if !strings.ContainsRune(trackingCodeAlphabet, rune(s[i])) {
			return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
				"trackingCode",
				fmt.Errorf("%q contains symbol %q outside the code alphabet", s, s[i]),
			)
		}
	}
	return TrackingCode{code: s}, nil
}

// String returns the seven-character code.
func (c TrackingCode) String() string {
	return c.code
}

// IsEqual compares two tracking codes for equality.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.code == other.code
}

// Validate checks that the code was properly constructed.
// The zero value fails validation.
func (c TrackingCode) Validate() error {
	if c.code == "" {
		return errs.NewValueIsRequiredError(
			"TrackingCode must be created via NewRandomTrackingCode or TrackingCodeFromString",
		)
	}
	return nil
}
