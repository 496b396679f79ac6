package fulfillment

// ---------------------------------------------------------------------------
// OrderStatus (provider side)
// ---------------------------------------------------------------------------

// OrderStatus represents the status of an order at the fulfillment provider
type OrderStatus string

const (
	// OrderStatusNotProcessed indicates the provider has not picked the order up
	OrderStatusNotProcessed OrderStatus = "NOT_PROCESSED"
	// OrderStatusProcessed indicates the provider accepted the order
	OrderStatusProcessed OrderStatus = "PROCESSED"
	// OrderStatusPartiallyShipped indicates some items left the provider's warehouse
	OrderStatusPartiallyShipped OrderStatus = "PARTIALLY_SHIPPED"
	// OrderStatusShipped indicates all items left the provider's warehouse
	OrderStatusShipped OrderStatus = "SHIPPED"
	// OrderStatusCompleted indicates the order's fulfillment cycle is finished
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

// IsValid returns true if the status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusNotProcessed, OrderStatusProcessed, OrderStatusPartiallyShipped,
		OrderStatusShipped, OrderStatusCompleted:
		return true
	default:
		return false
	}
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// Rank orders statuses along the fulfillment lifecycle. The reconciler never
// writes a status whose rank is below the provider's current one.
func (s OrderStatus) Rank() int {
	switch s {
	case OrderStatusNotProcessed:
		return 0
	case OrderStatusProcessed:
		return 1
	case OrderStatusPartiallyShipped:
		return 2
	case OrderStatusShipped:
		return 3
	case OrderStatusCompleted:
		return 4
	default:
		return -1
	}
}

// ActiveOrderStatuses is the set of statuses the shipment importer polls: any
// order the provider may still produce shipments or status changes for.
func ActiveOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusProcessed,
		OrderStatusShipped,
		OrderStatusPartiallyShipped,
		OrderStatusNotProcessed,
	}
}
