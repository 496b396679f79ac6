package fulfillment

import "github.com/commerce/fulfillsync/internal/domain/ordering"

// ---------------------------------------------------------------------------
// ShippingChannel
// ---------------------------------------------------------------------------

// ShippingChannel is the fulfillment path the provider uses for an order
type ShippingChannel string

const (
	// ChannelDirectToRecipient boxes the order and ships it straight to the
	// end customer
	ChannelDirectToRecipient ShippingChannel = "BOX_AND_SHIP_TO_HOME"
	// ChannelShipToPickupLocation boxes the order and ships it to the store
	// for customer pickup
	ChannelShipToPickupLocation ShippingChannel = "BOX_AND_SHIP_TO_STORE"
	// ChannelNoShippingRequired tells the provider to hold the order; used
	// when automatic processing is switched off
	ChannelNoShippingRequired ShippingChannel = "NO_SHIPPING_REQUIRED"
)

// IsValid returns true if the channel is valid
func (c ShippingChannel) IsValid() bool {
	switch c {
	case ChannelDirectToRecipient, ChannelShipToPickupLocation, ChannelNoShippingRequired:
		return true
	default:
		return false
	}
}

// String returns the string representation of ShippingChannel
func (c ShippingChannel) String() string {
	return string(c)
}

// ChannelForMethod maps a local shipping method system name to a channel.
// Courier delivery goes direct to the recipient; everything else, including
// in-store pickup, is routed through the pickup location.
func ChannelForMethod(shippingMethodSystemName string) ShippingChannel {
	if shippingMethodSystemName == ordering.ShippingMethodCourier {
		return ChannelDirectToRecipient
	}
	return ChannelShipToPickupLocation
}

// ResolveChannel determines the channel to export an order under. When
// automatic processing is disabled every order is exported as
// NO_SHIPPING_REQUIRED regardless of its shipping method, so the provider
// queues it without shipping anything.
func ResolveChannel(order *ordering.Order, automaticallyProcessOrders bool) ShippingChannel {
	if !automaticallyProcessOrders {
		return ChannelNoShippingRequired
	}
	return ChannelForMethod(order.ShippingMethodSystemName)
}
