package task

import (
	"fmt"

	"forwarding/internal/pkg/errs"
)

// Type is the closed set of operational task types making up a shipment's
// workflow, in leg order from origin door to destination door.
type Type int

const (
	// UnknownType represents an invalid or undefined task type.
	UnknownType Type = iota

	// TypeOriginHaulage moves cargo from the shipper's door to the origin port.
	TypeOriginHaulage

	// TypeFreightBooking secures space with the carrier.
	TypeFreightBooking

	// TypeExportClearance clears the cargo through origin customs.
	TypeExportClearance

	// TypePortOfLoading is the tracked port call at the port of loading.
	TypePortOfLoading

	// TypePortOfDischarge is the tracked port call at the port of discharge.
	// This is the arrival leg: its completion signal is arrival, not departure.
	TypePortOfDischarge

	// TypeImportClearance clears the cargo through destination customs.
	TypeImportClearance

	// TypeDestinationHaulage moves cargo from the destination port to the
	// consignee's door.
	TypeDestinationHaulage
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeOriginHaulage:      "ORIGIN_HAULAGE",
		TypeFreightBooking:     "FREIGHT_BOOKING",
		TypeExportClearance:    "EXPORT_CLEARANCE",
		TypePortOfLoading:      "POL",
		TypePortOfDischarge:    "POD",
		TypeImportClearance:    "IMPORT_CLEARANCE",
		TypeDestinationHaulage: "DESTINATION_HAULAGE",
	}
}

// TypeFromString resolves a task type from its wire representation.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause(
		"taskType",
		fmt.Errorf("%q is not a known task type", s),
	)
}

// Validate checks if the Type value is a member of the closed type set.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"taskType",
			fmt.Errorf("%d is not a valid task type", t),
		)
	}
	return nil
}

// IsArrivalLeg reports whether the task represents a destination/arrival leg.
// For a TRACKED arrival leg, the meaningful completion signal is arrival (ATA,
// stamped into the actual-start field) rather than departure.
func (t Type) IsArrivalLeg() bool {
	return t == TypePortOfDischarge
}

// IsFirstLeg reports whether the task is the first physical leg of the move.
func (t Type) IsFirstLeg() bool {
	return t == TypeOriginHaulage
}

// IsLastLeg reports whether the task is the last physical leg of the move.
func (t Type) IsLastLeg() bool {
	return t == TypeDestinationHaulage
}

// String returns the wire representation of the task type.
// Implements fmt.Stringer.
func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}
