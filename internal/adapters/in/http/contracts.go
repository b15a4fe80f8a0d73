package http

import "time"

// Error is the uniform error payload for all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateShipmentRequest is the payload for opening a new shipment file.
type CreateShipmentRequest struct {
	OriginPort      string `json:"origin_port"`
	DestinationPort string `json:"destination_port"`
	LoadType        string `json:"load_type"`
	CustomerID      string `json:"customer_id"`
	CounterpartyID  string `json:"counterparty_id"`
	Cargo           string `json:"cargo"`
}

// CreateShipmentResponse returns the identity pair allocated for a new
// shipment.
type CreateShipmentResponse struct {
	ShipmentID   string `json:"shipment_id"`
	TrackingCode string `json:"tracking_code"`
}

// SetTermsRequest is the payload for setting a shipment's commercial terms.
type SetTermsRequest struct {
	Incoterm        string `json:"incoterm"`
	TransactionType string `json:"transaction_type"`
}

// TaskPatchRequest is a partial task edit. Absent fields are left untouched.
// Setting status to COMPLETED completes the task (stamping the right actual
// timestamp); setting it back to PENDING on a completed task undoes the
// completion.
type TaskPatchRequest struct {
	Status          *string    `json:"status,omitempty"`
	Mode            *string    `json:"mode,omitempty"`
	Visibility      *string    `json:"visibility,omitempty"`
	AssigneeParty   *string    `json:"assignee_party,omitempty"`
	ThirdPartyName  *string    `json:"third_party_name,omitempty"`
	ScheduledStart  *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd    *time.Time `json:"scheduled_end,omitempty"`
	ActualStart     *time.Time `json:"actual_start,omitempty"`
	ActualEnd       *time.Time `json:"actual_end,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	DueDateOverride *bool      `json:"due_date_override,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

// AdvisoryResponse carries the non-blocking sequence advisory returned by
// status mutations. An empty advisory is omitted.
type AdvisoryResponse struct {
	Advisory string `json:"advisory,omitempty"`
}

// Task is one workflow task in API responses.
type Task struct {
	ID             string     `json:"id"`
	TaskType       string     `json:"task_type"`
	LegLevel       int        `json:"leg_level"`
	Status         string     `json:"status"`
	Mode           string     `json:"mode"`
	Visibility     string     `json:"visibility"`
	AssigneeParty  string     `json:"assignee_party"`
	ThirdPartyName string     `json:"third_party_name,omitempty"`
	DisplayLabel   string     `json:"display_label"`
	Timing         TaskTiming `json:"timing"`
	ScheduledStart *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time `json:"scheduled_end,omitempty"`
	ActualStart    *time.Time `json:"actual_start,omitempty"`
	ActualEnd      *time.Time `json:"actual_end,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// TaskTiming tells the client which vocabulary to render the four timing
// fields with, and whether the end field is suppressed.
type TaskTiming struct {
	ScheduledStartLabel string `json:"scheduled_start_label"`
	ScheduledEndLabel   string `json:"scheduled_end_label"`
	ActualStartLabel    string `json:"actual_start_label"`
	ActualEndLabel      string `json:"actual_end_label"`
	EndSuppressed       bool   `json:"end_suppressed"`
}

// RouteNode is one port call in route API payloads. Sequence is assigned by
// the server from array position and ignored on input.
type RouteNode struct {
	Sequence     int        `json:"sequence"`
	PortCode     string     `json:"port_code"`
	PortName     string     `json:"port_name"`
	Role         string     `json:"role"`
	ScheduledETA *time.Time `json:"scheduled_eta,omitempty"`
	ScheduledETD *time.Time `json:"scheduled_etd,omitempty"`
	ActualETA    *time.Time `json:"actual_eta,omitempty"`
	ActualETD    *time.Time `json:"actual_etd,omitempty"`
}

// RouteResponse is the route read model.
type RouteResponse struct {
	Nodes     []RouteNode `json:"nodes"`
	IsDerived bool        `json:"is_derived"`
}

// ReplaceRouteRequest replaces the whole node list in array order.
type ReplaceRouteRequest struct {
	Nodes []RouteNode `json:"nodes"`
}

// ReplaceRouteResponse reports shape warnings for the accepted route.
// Warnings never reject the save.
type ReplaceRouteResponse struct {
	Warnings []string `json:"warnings,omitempty"`
}

// RouteTimingPatchRequest is a partial timing edit for a single route node.
type RouteTimingPatchRequest struct {
	ScheduledETA *time.Time `json:"scheduled_eta,omitempty"`
	ScheduledETD *time.Time `json:"scheduled_etd,omitempty"`
	ActualETA    *time.Time `json:"actual_eta,omitempty"`
	ActualETD    *time.Time `json:"actual_etd,omitempty"`
}

// TrackedTask is one visible workflow step in the public tracking view.
type TrackedTask struct {
	DisplayLabel string     `json:"display_label"`
	Status       string     `json:"status"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// TrackingResponse is the public tracking view resolved from a tracking code.
type TrackingResponse struct {
	ShipmentID      string        `json:"shipment_id"`
	OriginPort      string        `json:"origin_port"`
	DestinationPort string        `json:"destination_port"`
	LoadType        string        `json:"load_type"`
	Tasks           []TrackedTask `json:"tasks"`
}
