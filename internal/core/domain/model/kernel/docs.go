// Package kernel contains shared value objects used across the domain model:
// shipment identifiers, tracking codes, identifier generations, port codes, and
// entity UUIDs. All types in this package are immutable value objects that must
// be created through their constructor functions and validated before use.
package kernel
