package shipmentrepo

import (
	"time"

	"github.com/google/uuid"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/shipment"
)

// ShipmentDTO is the persistence model for the shipment document. Enumerated
// fields are stored as their wire strings; Incoterm and TransactionType stay
// empty until commercial terms are set.
type ShipmentDTO struct {
	ID              string    `gorm:"primaryKey;type:varchar(12)"`
	TrackingCode    string    `gorm:"type:varchar(7);not null;uniqueIndex"`
	OriginPort      string    `gorm:"type:varchar(5);not null"`
	DestinationPort string    `gorm:"type:varchar(5);not null"`
	LoadType        string    `gorm:"type:varchar(8);not null"`
	Incoterm        string    `gorm:"type:varchar(8)"`
	TransactionType string    `gorm:"type:varchar(16)"`
	CustomerID      uuid.UUID `gorm:"type:uuid;not null"`
	CounterpartyID  uuid.UUID `gorm:"type:uuid;not null"`
	Cargo           string    `gorm:"not null"`
	Carrier         string
	VesselName      string
	VoyageNumber    string
	Containers      []string  `gorm:"serializer:json;type:jsonb"`
	CreatedBy       uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the database table name for GORM.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// TrackingCodeDTO is one entry of the tracking-code index. It is written
// separately from the shipment document.
type TrackingCodeDTO struct {
	Code       string `gorm:"primaryKey;type:varchar(7)"`
	ShipmentID string `gorm:"type:varchar(12);not null;index"`
}

// TableName returns the database table name for GORM.
func (TrackingCodeDTO) TableName() string {
	return "tracking_codes"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	dto := ShipmentDTO{
		ID:              aggregate.ID().String(),
		TrackingCode:    aggregate.TrackingCode().String(),
		OriginPort:      aggregate.OriginPort().String(),
		DestinationPort: aggregate.DestinationPort().String(),
		LoadType:        aggregate.LoadType().String(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		CounterpartyID:  aggregate.CounterpartyID().Bytes(),
		Cargo:           aggregate.Cargo(),
		Carrier:         aggregate.Booking().Carrier,
		VesselName:      aggregate.Booking().VesselName,
		VoyageNumber:    aggregate.Booking().VoyageNumber,
		Containers:      aggregate.Booking().Containers,
		CreatedBy:       aggregate.CreatedBy().Bytes(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}

	if aggregate.Terms().IsSet() {
		dto.Incoterm = aggregate.Terms().Incoterm().String()
		dto.TransactionType = aggregate.Terms().TransactionType().String()
	}

	return dto
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	shipmentID, err := kernel.ParseShipmentID(dto.ID)
	if err != nil {
		return nil, err
	}
	trackingCode, err := kernel.TrackingCodeFromString(dto.TrackingCode)
	if err != nil {
		return nil, err
	}
	originPort, err := kernel.NewPortCode(dto.OriginPort)
	if err != nil {
		return nil, err
	}
	destinationPort, err := kernel.NewPortCode(dto.DestinationPort)
	if err != nil {
		return nil, err
	}
	loadType, err := shipment.LoadTypeFromString(dto.LoadType)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	counterpartyID, err := kernel.UUIDFromBytes(dto.CounterpartyID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var terms shipment.Terms
	if dto.Incoterm != "" {
		incoterm, termErr := shipment.IncotermFromString(dto.Incoterm)
		if termErr != nil {
			return nil, termErr
		}
		transactionType, termErr := shipment.TransactionTypeFromString(dto.TransactionType)
		if termErr != nil {
			return nil, termErr
		}
		terms, termErr = shipment.NewTerms(incoterm, transactionType)
		if termErr != nil {
			return nil, termErr
		}
	}

	return shipment.RestoreShipment(
		shipment.Identity{ShipmentID: shipmentID, TrackingCode: trackingCode},
		originPort,
		destinationPort,
		loadType,
		terms,
		customerID,
		counterpartyID,
		dto.Cargo,
		shipment.BookingDetails{
			Carrier:      dto.Carrier,
			VesselName:   dto.VesselName,
			VoyageNumber: dto.VoyageNumber,
			Containers:   dto.Containers,
		},
		createdBy,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
