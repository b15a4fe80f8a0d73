// Package services provides domain services that orchestrate business
// operations across multiple aggregates of the shipment lifecycle. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - IdentityAllocator: allocates shipment identifiers and tracking codes
//   - TaskPlanner: generates the workflow task graph from commercial terms
package services
