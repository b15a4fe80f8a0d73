package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"forwarding/internal/pkg/errs"
)

// shipmentSequenceDigits is the zero-padded width of the sequence component.
const shipmentSequenceDigits = 6

// ShipmentID is the internal, globally unique shipment identifier. It is a
// value object composed of a generation prefix and a zero-padded sequence
// number, rendered as e.g. "AF2-000123".
//
// Within a generation, sequence numbers are issued monotonically by the
// sequence allocator; a ShipmentID is assigned exactly once at shipment
// creation and is immutable thereafter.
//
// The zero value is invalid; use NewShipmentID or ParseShipmentID.
type ShipmentID struct {
	generation Generation
	sequence   int64
}

// NewShipmentID creates a ShipmentID from a generation and an allocated
// sequence number. The sequence must be positive.
func NewShipmentID(generation Generation, sequence int64) (ShipmentID, error) {
	if err := generation.Validate(); err != nil {
		return ShipmentID{}, err
	}
	if sequence <= 0 {
		return ShipmentID{}, errs.NewValueIsInvalidErrorWithCause(
			"sequence",
			fmt.Errorf("%d is not greater than 0", sequence),
		)
	}

	return ShipmentID{generation: generation, sequence: sequence}, nil
}

// ParseShipmentID parses the canonical "AF2-000123" string form.
// It is used when reconstructing identifiers from persistence or URLs.
func ParseShipmentID(s string) (ShipmentID, error) {
	prefix, digits, ok := strings.Cut(s, "-")
	if !ok {
		return ShipmentID{}, errs.NewValueIsInvalidErrorWithCause(
			"shipmentId",
			fmt.Errorf("%q does not match the prefix-sequence form", s),
		)
	}

	generation, err := GenerationFromPrefix(prefix)
	if err != nil {
		return ShipmentID{}, err
	}

	sequence, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return ShipmentID{}, errs.NewValueIsInvalidErrorWithCause("shipmentId", err)
	}

	return NewShipmentID(generation, sequence)
}

// String returns the canonical identifier form, e.g. "AF2-000123". Sequence
// numbers wider than six digits are rendered without truncation.
func (id ShipmentID) String() string {
	return fmt.Sprintf("%s-%0*d", id.generation.Prefix(), shipmentSequenceDigits, id.sequence)
}

// Generation returns the identifier family the shipment belongs to.
func (id ShipmentID) Generation() Generation {
	return id.generation
}

// Sequence returns the numeric sequence component of the identifier.
func (id ShipmentID) Sequence() int64 {
	return id.sequence
}

// IsEqual compares two shipment identifiers for equality.
func (id ShipmentID) IsEqual(other ShipmentID) bool {
	return id.generation == other.generation && id.sequence == other.sequence
}

// Validate checks that the identifier was properly constructed.
// The zero value fails validation.
func (id ShipmentID) Validate() error {
	if err := id.generation.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(
			"ShipmentID must be created via NewShipmentID or ParseShipmentID",
			err,
		)
	}
	if id.sequence <= 0 {
		return errs.NewValueIsRequiredError("ShipmentID must be created via NewShipmentID or ParseShipmentID")
	}
	return nil
}
