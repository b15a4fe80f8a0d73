// Package route holds the route timeline of a shipment: the ordered list of
// port calls from origin through transshipments to destination.
//
// A shipment with no saved node list still has a route: a two-node timeline is
// derived on read from the shipment's origin and destination ports. The
// derived route is read-only; it becomes persisted and editable only when an
// operator saves a full node list, which replaces the timeline as one unit.
package route
