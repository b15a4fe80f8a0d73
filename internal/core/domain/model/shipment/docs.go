// Package shipment contains the Shipment aggregate and its commercial
// vocabulary: load types, incoterms, and transaction types.
//
// A shipment owns exactly one identity (internal identifier plus public
// tracking code), one task workflow, and one route. The aggregate here holds
// the shipment document itself; the workflow and route are separate aggregates
// keyed by the same ShipmentID.
package shipment
