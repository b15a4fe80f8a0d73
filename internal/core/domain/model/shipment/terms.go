package shipment

import (
	"fmt"

	"forwarding/internal/pkg/errs"
)

// Incoterm is the standardized trade-term code on a shipment's commercial
// terms, defining the buyer/seller responsibility split. Only the terms the
// operations team actually books under are accepted.
type Incoterm int

const (
	// UnknownIncoterm represents an invalid or undefined incoterm.
	UnknownIncoterm Incoterm = iota

	IncotermEXW
	IncotermFCA
	IncotermFOB
	IncotermCFR
	IncotermCIF
	IncotermDAP
	IncotermDDP
)

func getIncotermStrings() map[Incoterm]string {
	return map[Incoterm]string{
		IncotermEXW: "EXW",
		IncotermFCA: "FCA",
		IncotermFOB: "FOB",
		IncotermCFR: "CFR",
		IncotermCIF: "CIF",
		IncotermDAP: "DAP",
		IncotermDDP: "DDP",
	}
}

// IncotermFromString resolves an incoterm from its three-letter code.
func IncotermFromString(s string) (Incoterm, error) {
	for i, str := range getIncotermStrings() {
		if str == s {
			return i, nil
		}
	}
	return UnknownIncoterm, errs.NewValueIsInvalidErrorWithCause(
		"incoterm",
		fmt.Errorf("%q is not a known incoterm", s),
	)
}

// Validate checks if the Incoterm value is a member of the closed set.
func (i Incoterm) Validate() error {
	if _, ok := getIncotermStrings()[i]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"incoterm",
			fmt.Errorf("%d is not a valid incoterm", i),
		)
	}
	return nil
}

// IsSellerArranged reports whether the seller arranges the main carriage under
// this term (C- and D-terms). Used when assigning origin-side workflow tasks.
func (i Incoterm) IsSellerArranged() bool {
	switch i {
	case IncotermCFR, IncotermCIF, IncotermDAP, IncotermDDP:
		return true
	default:
		return false
	}
}

// String returns the three-letter incoterm code.
// Implements fmt.Stringer.
func (i Incoterm) String() string {
	if s, ok := getIncotermStrings()[i]; ok {
		return s
	}
	return "Unknown"
}

// TransactionType describes the direction of the trade from the customer's
// point of view.
type TransactionType int

const (
	// UnknownTransactionType represents an invalid or undefined transaction type.
	UnknownTransactionType TransactionType = iota

	// TransactionImport means the customer is the buyer bringing goods in.
	TransactionImport

	// TransactionExport means the customer is the seller sending goods out.
	TransactionExport

	// TransactionCrossTrade means goods move between two third countries.
	TransactionCrossTrade
)

func getTransactionTypeStrings() map[TransactionType]string {
	return map[TransactionType]string{
		TransactionImport:     "IMPORT",
		TransactionExport:     "EXPORT",
		TransactionCrossTrade: "CROSS_TRADE",
	}
}

// TransactionTypeFromString resolves a transaction type from its wire form.
func TransactionTypeFromString(s string) (TransactionType, error) {
	for tt, str := range getTransactionTypeStrings() {
		if str == s {
			return tt, nil
		}
	}
	return UnknownTransactionType, errs.NewValueIsInvalidErrorWithCause(
		"transactionType",
		fmt.Errorf("%q is not a known transaction type", s),
	)
}

// Validate checks if the TransactionType value is a member of the closed set.
func (tt TransactionType) Validate() error {
	if _, ok := getTransactionTypeStrings()[tt]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"transactionType",
			fmt.Errorf("%d is not a valid transaction type", tt),
		)
	}
	return nil
}

// String returns the wire representation of the transaction type.
// Implements fmt.Stringer.
func (tt TransactionType) String() string {
	if s, ok := getTransactionTypeStrings()[tt]; ok {
		return s
	}
	return "Unknown"
}

// Terms bundles a shipment's commercial terms. Both fields must be set
// together; setting them is what triggers workflow task generation.
type Terms struct {
	incoterm        Incoterm
	transactionType TransactionType
}

// NewTerms creates a validated Terms pair.
func NewTerms(incoterm Incoterm, transactionType TransactionType) (Terms, error) {
	if err := incoterm.Validate(); err != nil {
		return Terms{}, err
	}
	if err := transactionType.Validate(); err != nil {
		return Terms{}, err
	}
	return Terms{incoterm: incoterm, transactionType: transactionType}, nil
}

// Incoterm returns the trade term.
func (t Terms) Incoterm() Incoterm {
	return t.incoterm
}

// TransactionType returns the trade direction.
func (t Terms) TransactionType() TransactionType {
	return t.transactionType
}

// IsSet reports whether commercial terms have been provided. The zero value
// of Terms represents "not yet set".
func (t Terms) IsSet() bool {
	return t.incoterm != UnknownIncoterm && t.transactionType != UnknownTransactionType
}
