package fulfillment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// purchaseOrderCodeWidth is the fixed width of provider purchase-order codes
const purchaseOrderCodeWidth = 18

// PurchaseOrderCode derives the provider purchase-order code from a local
// order number: the number left-padded with zeros to 18 characters.
func PurchaseOrderCode(orderNumber int64) string {
	return fmt.Sprintf("%0*d", purchaseOrderCodeWidth, orderNumber)
}

// ---------------------------------------------------------------------------
// Provider-owned records
// ---------------------------------------------------------------------------

// Order is an order as the fulfillment provider sees it. The provider owns
// every field; the synchronization engine only ever writes Status (through
// UpdateOrder) after the order exists.
type Order struct {
	// ID is the provider's identifier for the order
	ID string
	// CustomerID is the provider customer account the order belongs to
	CustomerID string
	// OriginalOrderID is the local order number this order mirrors. Nil until
	// the provider links the order; an unlinked order cannot be reconciled.
	OriginalOrderID *int64
	// OriginalCustomerID is the local customer the order was placed by
	OriginalCustomerID uuid.UUID
	// Status is the provider-side order status
	Status OrderStatus
	// BillingAddress is a snapshot taken at export time
	BillingAddress Address
	// ShippingAddress is a snapshot taken at export time; zero for orders not
	// shipped direct to the recipient
	ShippingAddress *Address
	// OrderTotal is the order's grand total
	OrderTotal decimal.Decimal
	// PurchaseOrder is the purchase-order code derived from the order number
	PurchaseOrder string
	// ShippingMethod is the channel label the order was exported under
	ShippingMethod string
	// OrderDate is when the local order was placed
	OrderDate time.Time
	// Items are the exported order lines
	Items []OrderItem
	// Shipments are the parcels the provider has dispatched
	Shipments []Shipment
}

// OrderItem is an exported order line
type OrderItem struct {
	// OriginalOrderItemID is the local order line this mirrors
	OriginalOrderItemID uuid.UUID
	// OriginalProductID is the local product
	OriginalProductID uuid.UUID
	// ProductSku identifies the product at the provider
	ProductSku string
	// Quantity is the ordered quantity
	Quantity int
	// Price is the unit price excluding tax
	Price decimal.Decimal
}

// Shipment is a parcel dispatched by the provider
type Shipment struct {
	// ID is the provider's identifier for the shipment
	ID string
	// OrderID is the provider order the shipment belongs to
	OrderID string
	// TrackingNumber is the carrier tracking number
	TrackingNumber string
	// Weight is the parcel weight
	Weight decimal.Decimal
	// Items are the shipped lines
	Items []ShipmentItem
}

// ShipmentItem is a shipped line within a provider shipment
type ShipmentItem struct {
	// ProductSku identifies the shipped product
	ProductSku string
	// Quantity is the shipped quantity
	Quantity int
}
