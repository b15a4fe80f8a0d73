package kernel

import (
	"fmt"

	"forwarding/internal/pkg/errs"
)

// Generation identifies a versioned family of shipment identifiers. Each
// generation carries its own identifier prefix and an independent counter row,
// so legacy and current shipments never compete for sequence numbers.
//
// Generation is a value object that validates membership in the closed set of
// known generations and provides the identifier prefix used when formatting
// shipment IDs.
type Generation int

const (
	// UnknownGeneration represents an invalid or undefined generation.
	// This value (0) helps catch uninitialized Generation values.
	UnknownGeneration Generation = iota

	// GenerationLegacy is the retired identifier family (prefix "AF1").
	// No new shipments are created under it; the counter is kept so
	// historical identifiers stay resolvable.
	GenerationLegacy

	// GenerationCurrent is the active identifier family (prefix "AF2").
	// All newly created shipments draw their sequence number from it.
	GenerationCurrent
)

func getGenerationPrefixes() map[Generation]string {
	return map[Generation]string{
		GenerationLegacy:  "AF1",
		GenerationCurrent: "AF2",
	}
}

// GenerationFromPrefix resolves a generation from its identifier prefix
// (e.g. "AF2"). Returns an error for unknown prefixes.
func GenerationFromPrefix(prefix string) (Generation, error) {
	for g, p := range getGenerationPrefixes() {
		if p == prefix {
			return g, nil
		}
	}
	return UnknownGeneration, errs.NewValueIsInvalidErrorWithCause(
		"generation",
		fmt.Errorf("%q is not a known identifier prefix", prefix),
	)
}

// Validate checks if the Generation value is a member of the closed set of
// known generations. UnknownGeneration (0) and any other values are invalid.
func (g Generation) Validate() error {
	if _, ok := getGenerationPrefixes()[g]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"generation",
			fmt.Errorf("%d is not a valid generation", g),
		)
	}
	return nil
}

// Prefix returns the identifier prefix for the generation (e.g. "AF2").
// Returns an empty string for invalid generations.
func (g Generation) Prefix() string {
	return getGenerationPrefixes()[g]
}

// String returns the identifier prefix, which doubles as the generation's
// human-readable name. Implements fmt.Stringer.
func (g Generation) String() string {
	if p, ok := getGenerationPrefixes()[g]; ok {
		return p
	}
	return "Unknown"
}
