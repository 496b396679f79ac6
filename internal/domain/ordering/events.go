package ordering

import (
	"github.com/google/uuid"

	"github.com/commerce/fulfillsync/internal/domain/shared"
)

// EventTypeShipmentDispatched is published when a shipment is handed to the
// carrier (or to the store, for pickup orders)
const EventTypeShipmentDispatched = "ordering.shipment.dispatched"

// ShipmentDispatchedEvent signals that a shipment left the warehouse
type ShipmentDispatchedEvent struct {
	shared.BaseDomainEvent
	// ShipmentID is the dispatched shipment
	ShipmentID uuid.UUID `json:"shipment_id"`
	// OrderID is the parent order
	OrderID uuid.UUID `json:"order_id"`
	// OrderNumber is the parent order's number
	OrderNumber int64 `json:"order_number"`
	// StoreID is the store the order belongs to
	StoreID uuid.UUID `json:"store_id"`
	// TrackingNumber is the carrier tracking number
	TrackingNumber string `json:"tracking_number"`
}

// NewShipmentDispatchedEvent creates a dispatch event for a shipment
func NewShipmentDispatchedEvent(shipment *Shipment, order *Order) *ShipmentDispatchedEvent {
	return &ShipmentDispatchedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShipmentDispatched, "Shipment", shipment.ID),
		ShipmentID:      shipment.ID,
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		StoreID:         order.StoreID,
		TrackingNumber:  shipment.TrackingNumber,
	}
}
