package ordering

// ---------------------------------------------------------------------------
// PaymentStatus
// ---------------------------------------------------------------------------

// PaymentStatus represents the payment state of a local order
type PaymentStatus string

const (
	// PaymentStatusPending indicates payment has not been captured yet
	PaymentStatusPending PaymentStatus = "PENDING"
	// PaymentStatusPaid indicates payment has been captured in full
	PaymentStatusPaid PaymentStatus = "PAID"
	// PaymentStatusPartiallyRefunded indicates part of the payment was returned
	PaymentStatusPartiallyRefunded PaymentStatus = "PARTIALLY_REFUNDED"
	// PaymentStatusRefunded indicates the payment was returned in full
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
	// PaymentStatusVoided indicates the payment was cancelled before capture
	PaymentStatusVoided PaymentStatus = "VOIDED"
)

// IsValid returns true if the status is valid
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusPartiallyRefunded,
		PaymentStatusRefunded, PaymentStatusVoided:
		return true
	default:
		return false
	}
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// ---------------------------------------------------------------------------
// OrderStatus
// ---------------------------------------------------------------------------

// OrderStatus represents the lifecycle state of a local order
type OrderStatus string

const (
	// OrderStatusPending indicates the order was placed but not accepted yet
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusProcessing indicates the order is being fulfilled
	OrderStatusProcessing OrderStatus = "PROCESSING"
	// OrderStatusComplete indicates the order is finished
	OrderStatusComplete OrderStatus = "COMPLETE"
	// OrderStatusCancelled indicates the order was cancelled
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsValid returns true if the status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusComplete, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// ---------------------------------------------------------------------------
// ShippingStatus
// ---------------------------------------------------------------------------

// ShippingStatus represents the shipping state of a local order, derived from
// its shipments
type ShippingStatus string

const (
	// ShippingStatusNotRequired indicates the order needs no shipping at all
	ShippingStatusNotRequired ShippingStatus = "SHIPPING_NOT_REQUIRED"
	// ShippingStatusNotYetShipped indicates nothing has been dispatched yet
	ShippingStatusNotYetShipped ShippingStatus = "NOT_YET_SHIPPED"
	// ShippingStatusPartiallyShipped indicates some items have been dispatched
	ShippingStatusPartiallyShipped ShippingStatus = "PARTIALLY_SHIPPED"
	// ShippingStatusShipped indicates all items have been dispatched
	ShippingStatusShipped ShippingStatus = "SHIPPED"
	// ShippingStatusDelivered indicates all shipments reached their destination
	ShippingStatusDelivered ShippingStatus = "DELIVERED"
)

// IsValid returns true if the status is valid
func (s ShippingStatus) IsValid() bool {
	switch s {
	case ShippingStatusNotRequired, ShippingStatusNotYetShipped,
		ShippingStatusPartiallyShipped, ShippingStatusShipped, ShippingStatusDelivered:
		return true
	default:
		return false
	}
}

// String returns the string representation of ShippingStatus
func (s ShippingStatus) String() string {
	return string(s)
}
