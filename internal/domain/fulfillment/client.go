package fulfillment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

var (
	// ErrMissingConfiguration indicates a store has no provider customer account
	ErrMissingConfiguration = errors.New("fulfillment: store has no provider customer account")
	// ErrInvalidOrderData indicates an order lacks the address data export needs
	ErrInvalidOrderData = errors.New("fulfillment: order is missing billing address or region data")
	// ErrDataIntegrity indicates a provider order is not linked to a local order
	ErrDataIntegrity = errors.New("fulfillment: provider order is not linked to a local order")
	// ErrOrderNotFound indicates a provider or local order could not be loaded
	ErrOrderNotFound = errors.New("fulfillment: order not found")
	// ErrDuplicateTrackingNumber indicates a tracking number matches more than
	// one local shipment on the same order
	ErrDuplicateTrackingNumber = errors.New("fulfillment: tracking number is not unique within order")
	// ErrAmbiguousSku indicates a SKU matches more than one local order line
	ErrAmbiguousSku = errors.New("fulfillment: product sku matches multiple order lines")
	// ErrLineItemNotFound indicates a shipped SKU matches no local order line
	ErrLineItemNotFound = errors.New("fulfillment: no order line found for shipped sku")
	// ErrRemoteCallFailure indicates the provider reported a transport or
	// validation failure
	ErrRemoteCallFailure = errors.New("fulfillment: provider call failed")
)

// ---------------------------------------------------------------------------
// Request/Response DTOs
// ---------------------------------------------------------------------------

// ListOrdersOptions filters a provider order listing
type ListOrdersOptions struct {
	// CustomerID scopes the listing to a provider customer account (required)
	CustomerID string
	// OriginalOrderID filters by local order number (optional)
	OriginalOrderID *int64
	// BillingEmail filters by billing email (optional)
	BillingEmail string
	// ProductSku filters to orders containing the SKU (optional)
	ProductSku string
	// CreatedFrom filters to orders placed at or after this time (optional)
	CreatedFrom *time.Time
	// CreatedTo filters to orders placed before this time (optional)
	CreatedTo *time.Time
	// Statuses filters by provider order status (optional)
	Statuses []OrderStatus
	// Page is the page number (1-indexed, defaults to 1)
	Page int
	// PageSize is the page size; zero means the provider's unbounded maximum
	PageSize int
}

// OrderList is one page of provider orders
type OrderList struct {
	// Results are the orders on this page
	Results []Order
	// Total is the total number of orders matching the filter
	Total int
}

// CreateOrderRequest asks the provider to create a mirrored order
type CreateOrderRequest struct {
	// CustomerID is the provider customer account to create the order under
	CustomerID string
	// OriginalOrderID is the local order number
	OriginalOrderID int64
	// OriginalCustomerID is the local customer
	OriginalCustomerID uuid.UUID
	// OrderDate is when the local order was placed (UTC)
	OrderDate time.Time
	// BillingAddress is the mapped billing address
	BillingAddress Address
	// ShippingAddress is the mapped shipping address; nil unless the channel
	// ships direct to the recipient
	ShippingAddress *Address
	// OrderTotal is the order's grand total
	OrderTotal decimal.Decimal
	// PurchaseOrder is the purchase-order code
	PurchaseOrder string
	// ShippingMethod is the resolved channel label
	ShippingMethod string
	// Items are the exportable order lines
	Items []OrderItem
}

// CreateOrderResult reports the outcome of an order creation
type CreateOrderResult struct {
	// Success is true if the provider accepted the order
	Success bool
	// Errors lists the provider's validation messages when Success is false
	Errors []string
}

// ---------------------------------------------------------------------------
// Client port
// ---------------------------------------------------------------------------

// Client is the port to the fulfillment provider's order API. The concrete
// HTTP adapter lives in the infrastructure layer.
type Client interface {
	// ListOrders lists provider orders matching the options
	ListOrders(ctx context.Context, opts ListOrdersOptions) (*OrderList, error)
	// GetOrder fetches a single provider order by id; returns ErrOrderNotFound
	// if the provider does not know it
	GetOrder(ctx context.Context, id string) (*Order, error)
	// CreateOrder submits an order creation request
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*CreateOrderResult, error)
	// UpdateOrder persists changes to a provider order (status in particular)
	UpdateOrder(ctx context.Context, order *Order) error
}
