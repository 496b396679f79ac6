package sync

// Settings carries the synchronization switches read at run time. The value
// is immutable: it is resolved once when a run starts and handed to the run,
// never mutated in place.
type Settings struct {
	// AutomaticallyProcessOrders selects active fulfillment (box and ship).
	// When false, orders are exported under the no-shipping marker channel and
	// the provider holds them for manual handling.
	AutomaticallyProcessOrders bool
}
