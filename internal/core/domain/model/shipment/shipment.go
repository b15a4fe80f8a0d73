package shipment

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Identity is the pair of identifiers allocated for a shipment at creation:
// the internal shipment identifier and the public tracking code. Created once,
// immutable thereafter.
type Identity struct {
	ShipmentID   kernel.ShipmentID
	TrackingCode kernel.TrackingCode
}

// BookingDetails are the carrier-side fields filled in later from parsed
// shipping documents (bill of lading, booking confirmation). All fields are
// optional; empty strings mean "not yet known".
type BookingDetails struct {
	Carrier      string
	VesselName   string
	VoyageNumber string
	Containers   []string
}

// Shipment is the aggregate root for a freight shipment document.
//
// Shipment follows these invariants:
//   - Identity (shipment ID and tracking code) is assigned once and never changes
//   - Origin and destination ports are always set and always valid
//   - Commercial terms may be unset at creation; once set they stay set
//   - Can only be created through NewShipment or RestoreShipment
//
// The task workflow and route are separate aggregates keyed by the same
// ShipmentID; this type holds only the shipment document.
type Shipment struct {
	identity        Identity
	originPort      kernel.PortCode
	destinationPort kernel.PortCode
	loadType        LoadType
	terms           Terms
	customerID      kernel.UUID
	counterpartyID  kernel.UUID
	cargo           string
	booking         BookingDetails
	createdBy       kernel.UUID
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewShipment creates a new Shipment with a freshly allocated identity.
// Commercial terms start unset; booking details start empty.
//
// All required creation fields are validated here, mirroring the creation
// request validation: route endpoints, load type, counterparties, cargo
// description, and creator identity.
func NewShipment(
	identity Identity,
	originPort, destinationPort kernel.PortCode,
	loadType LoadType,
	customerID, counterpartyID kernel.UUID,
	cargo string,
	createdBy kernel.UUID,
	now time.Time,
) (*Shipment, error) {
	s := &Shipment{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setIdentity(identity),
		s.setPorts(originPort, destinationPort),
		s.setLoadType(loadType),
		s.setParties(customerID, counterpartyID),
		s.setCargo(cargo),
		s.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence, including fields
// that only exist after creation (terms, booking details).
func RestoreShipment(
	identity Identity,
	originPort, destinationPort kernel.PortCode,
	loadType LoadType,
	terms Terms,
	customerID, counterpartyID kernel.UUID,
	cargo string,
	booking BookingDetails,
	createdBy kernel.UUID,
	createdAt, updatedAt time.Time,
) (*Shipment, error) {
	s, err := NewShipment(identity, originPort, destinationPort, loadType, customerID, counterpartyID, cargo, createdBy, createdAt)
	if err != nil {
		return nil, err
	}

	s.terms = terms
	s.booking = booking
	s.updatedAt = updatedAt
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.identity.ShipmentID.IsEqual(other.identity.ShipmentID)
}

// ID returns the internal shipment identifier.
func (s *Shipment) ID() kernel.ShipmentID {
	return s.identity.ShipmentID
}

// TrackingCode returns the public tracking code.
func (s *Shipment) TrackingCode() kernel.TrackingCode {
	return s.identity.TrackingCode
}

// OriginPort returns the route origin port.
func (s *Shipment) OriginPort() kernel.PortCode {
	return s.originPort
}

// DestinationPort returns the route destination port.
func (s *Shipment) DestinationPort() kernel.PortCode {
	return s.destinationPort
}

// LoadType returns the cargo aggregation mode.
func (s *Shipment) LoadType() LoadType {
	return s.loadType
}

// Terms returns the commercial terms. Check Terms().IsSet() before use;
// terms are unset until SetTerms is called.
func (s *Shipment) Terms() Terms {
	return s.terms
}

// CustomerID returns the customer company identifier.
func (s *Shipment) CustomerID() kernel.UUID {
	return s.customerID
}

// CounterpartyID returns the counterparty company identifier.
func (s *Shipment) CounterpartyID() kernel.UUID {
	return s.counterpartyID
}

// Cargo returns the cargo description.
func (s *Shipment) Cargo() string {
	return s.cargo
}

// Booking returns the carrier-side booking details.
func (s *Shipment) Booking() BookingDetails {
	return s.booking
}

// CreatedBy returns the identifier of the user who created the shipment.
func (s *Shipment) CreatedBy() kernel.UUID {
	return s.createdBy
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// SetTerms sets the shipment's commercial terms. Terms can be set once;
// changing them afterwards would orphan the generated task workflow, so a
// second call is rejected.
func (s *Shipment) SetTerms(terms Terms, now time.Time) error {
	if !terms.IsSet() {
		return errs.NewValueIsRequiredError("terms")
	}
	if s.terms.IsSet() {
		return errs.NewValueIsInvalidError("terms are already set")
	}

	s.terms = terms
	s.updatedAt = now
	return nil
}

// MergeBookingDetails merges parsed document fields into the shipment.
// Only non-empty incoming fields overwrite; existing values survive a document
// that does not mention them.
func (s *Shipment) MergeBookingDetails(incoming BookingDetails, now time.Time) {
	if incoming.Carrier != "" {
		s.booking.Carrier = incoming.Carrier
	}
	if incoming.VesselName != "" {
		s.booking.VesselName = incoming.VesselName
	}
	if incoming.VoyageNumber != "" {
		s.booking.VoyageNumber = incoming.VoyageNumber
	}
	if len(incoming.Containers) > 0 {
		s.booking.Containers = append([]string(nil), incoming.Containers...)
	}
	s.updatedAt = now
}

func (s *Shipment) setIdentity(identity Identity) error {
	if err := identity.ShipmentID.Validate(); err != nil {
		return err
	}
	if err := identity.TrackingCode.Validate(); err != nil {
		return err
	}
	s.identity = identity
	return nil
}

func (s *Shipment) setPorts(origin, destination kernel.PortCode) error {
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("originPort", err)
	}
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destinationPort", err)
	}
	s.originPort = origin
	s.destinationPort = destination
	return nil
}

func (s *Shipment) setLoadType(loadType LoadType) error {
	if err := loadType.Validate(); err != nil {
		return err
	}
	s.loadType = loadType
	return nil
}

func (s *Shipment) setParties(customerID, counterpartyID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	if err := counterpartyID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("counterpartyId", err)
	}
	s.customerID = customerID
	s.counterpartyID = counterpartyID
	return nil
}

func (s *Shipment) setCargo(cargo string) error {
	if cargo == "" {
		return errs.NewValueIsRequiredError("cargoDescription")
	}
	s.cargo = cargo
	return nil
}

func (s *Shipment) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}
	s.createdBy = createdBy
	return nil
}
