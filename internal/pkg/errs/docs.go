// Package errs provides standardized error types for the forwarding application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - PermissionDeniedError: For when an actor's role does not allow a mutation
//   - AllocationFailedError: For when the identifier counter transaction fails
//   - PartialWriteError: For when a companion record write fails after the
//     primary document has already been persisted
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Validation and permission errors are caller-fixable and returned synchronously;
// allocation and partial-write errors indicate infrastructure failures and are
// additionally reported through the audit log. No error type is process-fatal.
package errs
