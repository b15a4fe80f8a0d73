package shipment

import (
	"fmt"

	"forwarding/internal/pkg/errs"
)

// LoadType is the cargo aggregation mode of a shipment.
//
// FCL shipments fill whole containers; LCL shipments share container space
// with other cargo; AIR shipments travel as loose air freight. LCL and AIR are
// "loose cargo" modes, which changes the wording of the first and last leg of
// the task workflow from haulage to pickup/delivery.
type LoadType int

const (
	// UnknownLoadType represents an invalid or undefined load type.
	UnknownLoadType LoadType = iota

	// LoadFCL is a full-container-load sea shipment.
	LoadFCL

	// LoadLCL is a less-than-container-load sea shipment.
	LoadLCL

	// LoadAir is an air freight shipment.
	LoadAir
)

func getLoadTypeStrings() map[LoadType]string {
	return map[LoadType]string{
		LoadFCL: "FCL",
		LoadLCL: "LCL",
		LoadAir: "AIR",
	}
}

// LoadTypeFromString resolves a load type from its wire representation.
func LoadTypeFromString(s string) (LoadType, error) {
	for lt, str := range getLoadTypeStrings() {
		if str == s {
			return lt, nil
		}
	}
	return UnknownLoadType, errs.NewValueIsInvalidErrorWithCause(
		"loadType",
		fmt.Errorf("%q is not a known load type", s),
	)
}

// Validate checks if the LoadType value is a member of the closed set.
func (lt LoadType) Validate() error {
	if _, ok := getLoadTypeStrings()[lt]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"loadType",
			fmt.Errorf("%d is not a valid load type", lt),
		)
	}
	return nil
}

// IsLooseCargo reports whether the shipment travels as loose cargo (air or
// less-than-container-load), which swaps haulage wording for pickup/delivery
// wording on the first and last workflow leg.
func (lt LoadType) IsLooseCargo() bool {
	return lt == LoadLCL || lt == LoadAir
}

// String returns the wire representation of the load type.
// Implements fmt.Stringer.
func (lt LoadType) String() string {
	if s, ok := getLoadTypeStrings()[lt]; ok {
		return s
	}
	return "Unknown"
}
