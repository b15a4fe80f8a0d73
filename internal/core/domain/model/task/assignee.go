package task

import (
	"fmt"

	"forwarding/internal/pkg/errs"
)

// Party is the closed set of parties a task can be assigned to.
type Party int

const (
	// UnknownParty represents an invalid or undefined party.
	UnknownParty Party = iota

	// PartyForwarder assigns the task to forwarder (AF) staff.
	PartyForwarder

	// PartyCustomer assigns the task to the customer.
	PartyCustomer

	// PartyThirdParty assigns the task to a named outside party
	// (origin agent, destination broker, and so on).
	PartyThirdParty
)

func getPartyStrings() map[Party]string {
	return map[Party]string{
		PartyForwarder:  "AF",
		PartyCustomer:   "CUSTOMER",
		PartyThirdParty: "THIRD_PARTY",
	}
}

// PartyFromString resolves a party from its wire representation.
func PartyFromString(s string) (Party, error) {
	for p, str := range getPartyStrings() {
		if str == s {
			return p, nil
		}
	}
	return UnknownParty, errs.NewValueIsInvalidErrorWithCause(
		"party",
		fmt.Errorf("%q is not a known party", s),
	)
}

// Validate checks if the Party value is a member of the closed party set.
func (p Party) Validate() error {
	if _, ok := getPartyStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"party",
			fmt.Errorf("%d is not a valid party", p),
		)
	}
	return nil
}

// String returns the wire representation of the party.
// Implements fmt.Stringer.
func (p Party) String() string {
	if s, ok := getPartyStrings()[p]; ok {
		return s
	}
	return "Unknown"
}

// Assignee is the party responsible for a task, with an optional name when the
// party is an outside organisation.
type Assignee struct {
	party          Party
	thirdPartyName string
}

// NewAssignee creates an Assignee. A third-party assignee must carry a name;
// forwarder and customer assignees must not.
func NewAssignee(party Party, thirdPartyName string) (Assignee, error) {
	if err := party.Validate(); err != nil {
		return Assignee{}, err
	}
	if party == PartyThirdParty && thirdPartyName == "" {
		return Assignee{}, errs.NewValueIsRequiredError("thirdPartyName")
	}
	if party != PartyThirdParty && thirdPartyName != "" {
		return Assignee{}, errs.NewValueIsInvalidError("thirdPartyName is only valid for THIRD_PARTY assignees")
	}
	return Assignee{party: party, thirdPartyName: thirdPartyName}, nil
}

// Party returns the responsible party.
func (a Assignee) Party() Party {
	return a.party
}

// ThirdPartyName returns the outside party's name, empty unless the party is
// PartyThirdParty.
func (a Assignee) ThirdPartyName() string {
	return a.thirdPartyName
}

// Validate checks that the assignee was properly constructed.
// The zero value fails validation.
func (a Assignee) Validate() error {
	return a.party.Validate()
}
