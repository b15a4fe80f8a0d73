package route

import (
	"errors"
	"fmt"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
)

// ErrRouteIsNotConstructed is returned when a Route instance was not created
// through one of the package constructors.
var ErrRouteIsNotConstructed = errors.New("Route must be created via DeriveRoute, NewRoute or RestoreRoute")

// Route is the ordered timeline of port calls for one shipment.
//
// A derived route is synthesized on read from the shipment's origin and
// destination ports and is read-only. Saving a full node list converts it to a
// persisted route, which is replaced as a whole unit on every edit
// (last write wins, no version check).
type Route struct {
	shipmentID kernel.ShipmentID
	nodes      []Node
	isDerived  bool

	isConstructed bool
}

// DeriveRoute synthesizes the two-node read-only timeline for a shipment with
// no persisted node list. Repeated calls with the same ports yield the same
// shape.
func DeriveRoute(
	shipmentID kernel.ShipmentID,
	originPort kernel.PortCode,
	originName string,
	destinationPort kernel.PortCode,
	destinationName string,
) (*Route, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	origin, err := NewNode(originPort, originName, RoleOrigin, Timing{})
	if err != nil {
		return nil, err
	}
	destination, err := NewNode(destinationPort, destinationName, RoleDestination, Timing{})
	if err != nil {
		return nil, err
	}
	destination.sequence = 1

	return &Route{
		shipmentID:    shipmentID,
		nodes:         []Node{origin, destination},
		isDerived:     true,
		isConstructed: true,
	}, nil
}

// NewRoute builds a persisted route from the caller's full ordered node list.
// Sequences are re-derived from array position (0..n-1); any sequence values
// carried by the input nodes are discarded.
//
// The structural shape (one ORIGIN, one DESTINATION, TRANSHIP between them) is
// not enforced here; see ShapeWarnings.
func NewRoute(shipmentID kernel.ShipmentID, nodes []Node) (*Route, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, errs.NewValueIsRequiredError("nodes")
	}

	resequenced := make([]Node, len(nodes))
	for i, n := range nodes {
		if err := n.Validate(); err != nil {
			return nil, err
		}
		n.sequence = i
		resequenced[i] = n
	}

	return &Route{
		shipmentID:    shipmentID,
		nodes:         resequenced,
		isConstructed: true,
	}, nil
}

// RestoreRoute reconstructs a persisted route from storage. Nodes are expected
// in sequence order.
func RestoreRoute(shipmentID kernel.ShipmentID, nodes []Node) (*Route, error) {
	return NewRoute(shipmentID, nodes)
}

// Validate ensures the Route instance was properly constructed.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// ShipmentID returns the identifier of the owning shipment.
func (r *Route) ShipmentID() kernel.ShipmentID { return r.shipmentID }

// IsDerived reports whether the route was synthesized from the shipment's
// ports rather than loaded from a persisted node list.
func (r *Route) IsDerived() bool { return r.isDerived }

// Nodes returns the timeline in sequence order. The returned slice is a copy.
func (r *Route) Nodes() []Node {
	nodes := make([]Node, len(r.nodes))
	copy(nodes, r.nodes)
	return nodes
}

// UpdateTiming patches the timestamp fields of the node matched by sequence.
// A derived route cannot be patched; it must first be converted to a persisted
// route by saving a full node list.
func (r *Route) UpdateTiming(sequence int, patch TimingPatch) error {
	if r.isDerived {
		return errs.NewValueIsInvalidError("a derived route cannot be edited; save a full node list first")
	}

	for i := range r.nodes {
		if r.nodes[i].sequence == sequence {
			return r.nodes[i].applyTiming(patch)
		}
	}
	return errs.NewObjectNotFoundError("sequence", sequence)
}

// ShapeWarnings reports structural problems with the node list: a well-formed
// route has exactly one ORIGIN first, exactly one DESTINATION last, and only
// TRANSHIP nodes between them. Malformed lists are stored as given; the
// warnings are advisory and surfaced to the operator, not enforced.
func (r *Route) ShapeWarnings() []string {
	var warnings []string

	origins, destinations := 0, 0
	for _, n := range r.nodes {
		switch n.role {
		case RoleOrigin:
			origins++
		case RoleDestination:
			destinations++
		}
	}

	if origins != 1 {
		warnings = append(warnings, fmt.Sprintf("route has %d ORIGIN nodes, expected exactly 1", origins))
	}
	if destinations != 1 {
		warnings = append(warnings, fmt.Sprintf("route has %d DESTINATION nodes, expected exactly 1", destinations))
	}
	if len(r.nodes) > 0 {
		if r.nodes[0].role != RoleOrigin {
			warnings = append(warnings, "route does not start with an ORIGIN node")
		}
		if r.nodes[len(r.nodes)-1].role != RoleDestination {
			warnings = append(warnings, "route does not end with a DESTINATION node")
		}
	}
	if len(r.nodes) > 2 {
		for _, n := range r.nodes[1 : len(r.nodes)-1] {
			if n.role != RoleTranship {
				warnings = append(warnings, fmt.Sprintf("node %d (%s) between origin and destination is not TRANSHIP", n.sequence, n.portCode))
			}
		}
	}

	return warnings
}
