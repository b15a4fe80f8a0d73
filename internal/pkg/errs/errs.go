package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for error classification via errors.Is.
var (
	// ErrValueIsRequired indicates a required value was not provided.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid indicates a provided value failed validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange indicates a provided value is outside its allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrObjectNotFound indicates a requested object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrPermissionDenied indicates the acting user's role does not allow the
	// requested mutation.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrAllocationFailed indicates the identifier counter transaction failed,
	// typically due to store contention or unavailability.
	ErrAllocationFailed = errors.New("allocation failed")

	// ErrPartialWrite indicates a companion record write failed after the primary
	// document had already been persisted. The caller should reload and retry.
	ErrPartialWrite = errors.New("partial write")
)

// sanitize flattens newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return sanitize(msg)
	}
	return sanitize(fmt.Sprintf("%s (cause: %s)", msg, cause.Error()))
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError is returned when a provided value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a value is outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError describing the
// offending value and its allowed bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v", ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max),
		e.Cause,
	)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError is returned when a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named parameter
// and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause == nil {
		return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
	}
	return withCause(fmt.Sprintf("%s: param is: %s, ID is: %v", ErrObjectNotFound, e.ParamName, e.ID), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// PermissionDeniedError is returned when an actor's role does not allow the
// requested mutation. The message is safe to show to the caller.
type PermissionDeniedError struct {
	Role      string
	Operation string
	Cause     error
}

// NewPermissionDeniedError creates a PermissionDeniedError for a role and the
// operation it attempted.
func NewPermissionDeniedError(role, operation string) *PermissionDeniedError {
	return &PermissionDeniedError{Role: role, Operation: operation}
}

// NewPermissionDeniedErrorWithCause creates a PermissionDeniedError wrapping an
// underlying cause.
func NewPermissionDeniedErrorWithCause(role, operation string, cause error) *PermissionDeniedError {
	return &PermissionDeniedError{Role: role, Operation: operation, Cause: cause}
}

func (e *PermissionDeniedError) Error() string {
	return withCause(fmt.Sprintf("%s: role %s may not %s", ErrPermissionDenied, e.Role, e.Operation), e.Cause)
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}

// AllocationFailedError is returned when the identifier counter transaction
// fails. No shipment records exist when this error is returned.
type AllocationFailedError struct {
	Generation string
	Cause      error
}

// NewAllocationFailedError creates an AllocationFailedError for a generation,
// wrapping the store error that caused it.
func NewAllocationFailedError(generation string, cause error) *AllocationFailedError {
	return &AllocationFailedError{Generation: generation, Cause: cause}
}

func (e *AllocationFailedError) Error() string {
	return withCause(fmt.Sprintf("%s: generation %s", ErrAllocationFailed, e.Generation), e.Cause)
}

func (e *AllocationFailedError) Unwrap() error {
	return ErrAllocationFailed
}

// PartialWriteError is returned when the shipment document was persisted but a
// companion record (tracking index or workflow shell) was not. The shipment
// identified by ShipmentID exists; the named record does not.
type PartialWriteError struct {
	ShipmentID string
	Record     string
	Cause      error
}

// NewPartialWriteError creates a PartialWriteError naming the companion record
// that failed to persist.
func NewPartialWriteError(shipmentID, record string, cause error) *PartialWriteError {
	return &PartialWriteError{ShipmentID: shipmentID, Record: record, Cause: cause}
}

func (e *PartialWriteError) Error() string {
	return withCause(fmt.Sprintf("%s: shipment %s is missing %s", ErrPartialWrite, e.ShipmentID, e.Record), e.Cause)
}

func (e *PartialWriteError) Unwrap() error {
	return ErrPartialWrite
}
