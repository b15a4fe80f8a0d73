package route

import (
	"fmt"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
)

// NodeRole is the closed set of roles a route node can play in the timeline.
type NodeRole int

const (
	// UnknownNodeRole represents an invalid or undefined role.
	UnknownNodeRole NodeRole = iota

	// RoleOrigin is the first port of the route.
	RoleOrigin

	// RoleTranship is an intermediate port between origin and destination.
	RoleTranship

	// RoleDestination is the final port of the route.
	RoleDestination
)

func getNodeRoleStrings() map[NodeRole]string {
	return map[NodeRole]string{
		RoleOrigin:      "ORIGIN",
		RoleTranship:    "TRANSHIP",
		RoleDestination: "DESTINATION",
	}
}

// NodeRoleFromString resolves a node role from its wire representation.
func NodeRoleFromString(s string) (NodeRole, error) {
	for r, str := range getNodeRoleStrings() {
		if str == s {
			return r, nil
		}
	}
	return UnknownNodeRole, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a known node role", s),
	)
}

// Validate checks if the NodeRole value is a member of the closed role set.
func (r NodeRole) Validate() error {
	if _, ok := getNodeRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid node role", r),
		)
	}
	return nil
}

// CarriesArrival reports whether nodes with this role carry arrival timing
// (ETA/ATA). The cargo arrives at destination and transshipment ports.
func (r NodeRole) CarriesArrival() bool {
	return r == RoleDestination || r == RoleTranship
}

// CarriesDeparture reports whether nodes with this role carry departure timing
// (ETD/ATD). The cargo departs from origin and transshipment ports.
func (r NodeRole) CarriesDeparture() bool {
	return r == RoleOrigin || r == RoleTranship
}

// String returns the wire representation of the node role.
// Implements fmt.Stringer.
func (r NodeRole) String() string {
	if s, ok := getNodeRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// Timing holds the four timestamp fields of a route node. Which of them are
// meaningful depends on the node's role; see NodeRole.CarriesArrival and
// NodeRole.CarriesDeparture.
type Timing struct {
	ScheduledETA *time.Time
	ScheduledETD *time.Time
	ActualETA    *time.Time
	ActualETD    *time.Time
}

// Node is one port call in a shipment's route timeline. Its sequence is
// assigned by the owning Route and always equals the node's position in the
// timeline.
type Node struct {
	portCode kernel.PortCode
	portName string
	sequence int
	role     NodeRole
	timing   Timing
}

// NewNode creates a route node for inclusion in a replacement node list.
// The sequence is assigned by the Route on save; any caller-supplied ordering
// is expressed by array position alone.
func NewNode(portCode kernel.PortCode, portName string, role NodeRole, timing Timing) (Node, error) {
	if err := portCode.Validate(); err != nil {
		return Node{}, err
	}
	if err := role.Validate(); err != nil {
		return Node{}, err
	}
	return Node{
		portCode: portCode,
		portName: portName,
		role:     role,
		timing:   timing,
	}, nil
}

// RestoreNode reconstructs a node from persistence with its stored sequence.
func RestoreNode(portCode kernel.PortCode, portName string, sequence int, role NodeRole, timing Timing) (Node, error) {
	n, err := NewNode(portCode, portName, role, timing)
	if err != nil {
		return Node{}, err
	}
	if sequence < 0 {
		return Node{}, errs.NewValueIsInvalidError("sequence must not be negative")
	}
	n.sequence = sequence
	return n, nil
}

// PortCode returns the UN/LOCODE of the port.
func (n Node) PortCode() kernel.PortCode { return n.portCode }

// PortName returns the human-readable port name.
func (n Node) PortName() string { return n.portName }

// Sequence returns the node's position in the timeline.
func (n Node) Sequence() int { return n.sequence }

// Role returns the node's role in the timeline.
func (n Node) Role() NodeRole { return n.role }

// Timing returns the node's timestamp fields.
func (n Node) Timing() Timing { return n.timing }

// Validate checks that the node was properly constructed.
// The zero value fails validation.
func (n Node) Validate() error {
	if err := n.portCode.Validate(); err != nil {
		return err
	}
	return n.role.Validate()
}

// TimingPatch is a partial update of a node's timestamp fields. Nil fields are
// left unchanged.
type TimingPatch struct {
	ScheduledETA *time.Time
	ScheduledETD *time.Time
	ActualETA    *time.Time
	ActualETD    *time.Time
}

// applyTiming merges the patch into the node, rejecting fields the node's role
// does not carry: an origin has no arrival timing and a destination has no
// departure timing.
func (n *Node) applyTiming(patch TimingPatch) error {
	if (patch.ScheduledETA != nil || patch.ActualETA != nil) && !n.role.CarriesArrival() {
		return errs.NewValueIsInvalidError("an " + n.role.String() + " node does not carry arrival timing")
	}
	if (patch.ScheduledETD != nil || patch.ActualETD != nil) && !n.role.CarriesDeparture() {
		return errs.NewValueIsInvalidError("a " + n.role.String() + " node does not carry departure timing")
	}

	if patch.ScheduledETA != nil {
		n.timing.ScheduledETA = patch.ScheduledETA
	}
	if patch.ScheduledETD != nil {
		n.timing.ScheduledETD = patch.ScheduledETD
	}
	if patch.ActualETA != nil {
		n.timing.ActualETA = patch.ActualETA
	}
	if patch.ActualETD != nil {
		n.timing.ActualETD = patch.ActualETD
	}
	return nil
}
