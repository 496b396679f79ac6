package ordering

import (
	"context"

	"github.com/google/uuid"
)

// OrderSearchFilter narrows order searches. Nil fields are not applied.
type OrderSearchFilter struct {
	// PaymentStatus filters by payment state (optional)
	PaymentStatus *PaymentStatus
	// OrderStatus filters by lifecycle state (optional)
	OrderStatus *OrderStatus
	// StoreID filters by store (optional)
	StoreID *uuid.UUID
}

// OrderRepository persists local orders. Implementations load orders with
// their items and shipments so domain arithmetic works without extra trips.
type OrderRepository interface {
	// FindByID finds an order by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// FindByNumber finds an order by its order number
	FindByNumber(ctx context.Context, orderNumber int64) (*Order, error)
	// Search finds all orders matching the filter
	Search(ctx context.Context, filter OrderSearchFilter) ([]Order, error)
	// UpdateStatuses persists the order's status fields only
	UpdateStatuses(ctx context.Context, order *Order) error
}

// ShipmentRepository persists shipments
type ShipmentRepository interface {
	// FindByID finds a shipment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Shipment, error)
	// FindByOrderAndTracking finds every shipment on an order with the given
	// tracking number
	FindByOrderAndTracking(ctx context.Context, orderID uuid.UUID, trackingNumber string) ([]Shipment, error)
	// Save creates a shipment together with its items
	Save(ctx context.Context, shipment *Shipment) error
	// Update persists changes to an existing shipment
	Update(ctx context.Context, shipment *Shipment) error
}

// StoreRepository reads stores
type StoreRepository interface {
	// FindByID finds a store by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Store, error)
	// FindAll returns every store
	FindAll(ctx context.Context) ([]Store, error)
}
