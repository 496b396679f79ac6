package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Shipping method system names recognized by the channel policy. These match
// the identifiers the storefront writes onto orders when a rate computation
// method is selected at checkout.
const (
	// ShippingMethodCourier ships directly to the customer's door
	ShippingMethodCourier = "Shipping.Courier"
	// ShippingMethodPickupInStore ships to the store for customer pickup
	ShippingMethodPickupInStore = "Pickup.PickupInStore"
)

// ---------------------------------------------------------------------------
// Address value objects
// ---------------------------------------------------------------------------

// StateProvince identifies a state or province within a country
type StateProvince struct {
	Name         string
	Abbreviation string
}

// Country identifies a country by name and ISO code
type Country struct {
	Name             string
	TwoLetterISOCode string
}

// Address is a postal address attached to an order. StateProvince and Country
// are pointers because imported legacy orders may lack region data; the
// exporter refuses to export such orders.
type Address struct {
	FirstName     string
	LastName      string
	Email         string
	PhoneNumber   string
	Address1      string
	Address2      string
	City          string
	StateProvince *StateProvince
	Country       *Country
	ZipPostalCode string
}

// ---------------------------------------------------------------------------
// Order aggregate
// ---------------------------------------------------------------------------

// OrderItem is a single purchased line on an order
type OrderItem struct {
	// ID is the unique identifier of the line
	ID uuid.UUID
	// OrderID is the parent order
	OrderID uuid.UUID
	// ProductID references the purchased product
	ProductID uuid.UUID
	// Sku is the product's stock keeping unit
	Sku string
	// Quantity is the ordered quantity
	Quantity int
	// PriceExclTax is the unit price excluding tax
	PriceExclTax decimal.Decimal
	// ProviderSubClassID is the fulfillment provider's sub-classification for
	// the product. Zero means the provider does not carry it.
	ProviderSubClassID int
}

// FulfillableByProvider returns true if the fulfillment provider carries the
// product on this line
func (i *OrderItem) FulfillableByProvider() bool {
	return i.ProviderSubClassID != 0
}

// Order is a local commerce order. The synchronization engine reads it and
// writes only its status fields; everything else is owned by the storefront.
type Order struct {
	// ID is the unique identifier of the order
	ID uuid.UUID
	// OrderNumber is the sequential human-facing order number. It is the value
	// the fulfillment provider stores as OriginalOrderID.
	OrderNumber int64
	// StoreID is the store the order was placed in
	StoreID uuid.UUID
	// CustomerID is the purchasing customer
	CustomerID uuid.UUID
	// PaymentStatus is the payment state
	PaymentStatus PaymentStatus
	// OrderStatus is the lifecycle state
	OrderStatus OrderStatus
	// ShippingStatus is the shipping state derived from shipments
	ShippingStatus ShippingStatus
	// ShippingMethodSystemName identifies the selected shipping rate method
	ShippingMethodSystemName string
	// BillingAddress is required on every order
	BillingAddress *Address
	// ShippingAddress is nil for pickup orders
	ShippingAddress *Address
	// OrderTotal is the grand total including tax and shipping
	OrderTotal decimal.Decimal
	// Items are the purchased lines
	Items []OrderItem
	// Shipments are the shipments created against this order
	Shipments []Shipment
	// CreatedAt is when the order was placed
	CreatedAt time.Time
	// UpdatedAt is when the order was last modified
	UpdatedAt time.Time
}

// ItemByID returns the order line with the given id, or nil
func (o *Order) ItemByID(id uuid.UUID) *OrderItem {
	for i := range o.Items {
		if o.Items[i].ID == id {
			return &o.Items[i]
		}
	}
	return nil
}

// ItemsBySku returns every order line whose product matches the given SKU
func (o *Order) ItemsBySku(sku string) []*OrderItem {
	var matches []*OrderItem
	for i := range o.Items {
		if o.Items[i].Sku == sku {
			matches = append(matches, &o.Items[i])
		}
	}
	return matches
}

// ShipmentsByTrackingNumber returns every shipment on the order carrying the
// given tracking number. A well-formed order has at most one.
func (o *Order) ShipmentsByTrackingNumber(trackingNumber string) []*Shipment {
	var matches []*Shipment
	for i := range o.Shipments {
		if o.Shipments[i].TrackingNumber == trackingNumber {
			matches = append(matches, &o.Shipments[i])
		}
	}
	return matches
}

// QuantityInShipments returns the total quantity of the given order line
// already allocated to shipments
func (o *Order) QuantityInShipments(orderItemID uuid.UUID) int {
	total := 0
	for i := range o.Shipments {
		for j := range o.Shipments[i].Items {
			if o.Shipments[i].Items[j].OrderItemID == orderItemID {
				total += o.Shipments[i].Items[j].Quantity
			}
		}
	}
	return total
}

// HasItemsToShip returns true if any order line has quantity not yet covered
// by a shipment
func (o *Order) HasItemsToShip() bool {
	for i := range o.Items {
		item := &o.Items[i]
		if item.Quantity > o.QuantityInShipments(item.ID) {
			return true
		}
	}
	return false
}

// RecalculateShippingStatus derives the shipping status from the order's
// shipments and returns it. Orders without a shipping method keep
// ShippingStatusNotRequired.
func (o *Order) RecalculateShippingStatus() ShippingStatus {
	if o.ShippingStatus == ShippingStatusNotRequired {
		return ShippingStatusNotRequired
	}

	dispatched := 0
	delivered := 0
	for i := range o.Shipments {
		if o.Shipments[i].ShippedAt != nil {
			dispatched++
		}
		if o.Shipments[i].DeliveredAt != nil {
			delivered++
		}
	}

	switch {
	case dispatched == 0:
		o.ShippingStatus = ShippingStatusNotYetShipped
	case o.HasItemsToShip():
		o.ShippingStatus = ShippingStatusPartiallyShipped
	case delivered > 0 && delivered == len(o.Shipments):
		o.ShippingStatus = ShippingStatusDelivered
	default:
		o.ShippingStatus = ShippingStatusShipped
	}
	return o.ShippingStatus
}
