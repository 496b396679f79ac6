package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/commerce/fulfillsync/internal/domain/shared"
)

var (
	// ErrShipmentAlreadyDispatched is returned when dispatch is requested twice
	ErrShipmentAlreadyDispatched = shared.NewDomainError("SHIPMENT_ALREADY_DISPATCHED", "Shipment has already been dispatched")
	// ErrShipmentWithoutItems is returned when a shipment is persisted empty
	ErrShipmentWithoutItems = shared.NewDomainError("SHIPMENT_WITHOUT_ITEMS", "Shipment has no items")
)

// ShipmentItem allocates part of an order line to a shipment
type ShipmentItem struct {
	// ID is the unique identifier of the allocation
	ID uuid.UUID
	// ShipmentID is the parent shipment
	ShipmentID uuid.UUID
	// OrderItemID is the order line being shipped
	OrderItemID uuid.UUID
	// Quantity is the shipped quantity
	Quantity int
}

// Shipment is a physical parcel dispatched against a local order. Shipments
// are created exclusively by the shipment importer; the tracking number is the
// natural dedup key within an order.
type Shipment struct {
	// ID is the unique identifier of the shipment
	ID uuid.UUID
	// OrderID is the parent order
	OrderID uuid.UUID
	// TrackingNumber is the carrier tracking number
	TrackingNumber string
	// TotalWeight is the parcel weight
	TotalWeight decimal.Decimal
	// AdminComment is an informational note visible to operators
	AdminComment string
	// Items are the order-line allocations in this parcel
	Items []ShipmentItem
	// CreatedAt is when the shipment record was created
	CreatedAt time.Time
	// ShippedAt is when the parcel was dispatched, nil if not yet
	ShippedAt *time.Time
	// DeliveredAt is when the parcel was delivered, nil if not yet
	DeliveredAt *time.Time
}

// NewShipment creates a shipment for an order with the given tracking number
func NewShipment(orderID uuid.UUID, trackingNumber string, totalWeight decimal.Decimal) *Shipment {
	return &Shipment{
		ID:             uuid.New(),
		OrderID:        orderID,
		TrackingNumber: trackingNumber,
		TotalWeight:    totalWeight,
		CreatedAt:      time.Now(),
	}
}

// AddItem allocates quantity of an order line to the shipment
func (s *Shipment) AddItem(orderItemID uuid.UUID, quantity int) {
	s.Items = append(s.Items, ShipmentItem{
		ID:          uuid.New(),
		ShipmentID:  s.ID,
		OrderItemID: orderItemID,
		Quantity:    quantity,
	})
}

// MarkDispatched stamps the shipment as handed to the carrier
func (s *Shipment) MarkDispatched(at time.Time) error {
	if s.ShippedAt != nil {
		return ErrShipmentAlreadyDispatched
	}
	s.ShippedAt = &at
	return nil
}

// IsDispatched returns true if the parcel has left the warehouse
func (s *Shipment) IsDispatched() bool {
	return s.ShippedAt != nil
}
