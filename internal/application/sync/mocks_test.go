package sync

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/commerce/fulfillsync/internal/domain/fulfillment"
	"github.com/commerce/fulfillsync/internal/domain/ordering"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByNumber(ctx context.Context, orderNumber int64) (*ordering.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) Search(ctx context.Context, filter ordering.OrderSearchFilter) ([]ordering.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatuses(ctx context.Context, order *ordering.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// MockShipmentRepository is a mock implementation of ShipmentRepository
type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) FindByOrderAndTracking(ctx context.Context, orderID uuid.UUID, trackingNumber string) ([]ordering.Shipment, error) {
	args := m.Called(ctx, orderID, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Save(ctx context.Context, shipment *ordering.Shipment) error {
	args := m.Called(ctx, shipment)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, shipment *ordering.Shipment) error {
	args := m.Called(ctx, shipment)
	return args.Error(0)
}

// MockStoreRepository is a mock implementation of StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Store), args.Error(1)
}

func (m *MockStoreRepository) FindAll(ctx context.Context) ([]ordering.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.Store), args.Error(1)
}

// MockFulfillmentClient is a mock implementation of the provider client port
type MockFulfillmentClient struct {
	mock.Mock
}

func (m *MockFulfillmentClient) ListOrders(ctx context.Context, opts fulfillment.ListOrdersOptions) (*fulfillment.OrderList, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fulfillment.OrderList), args.Error(1)
}

func (m *MockFulfillmentClient) GetOrder(ctx context.Context, id string) (*fulfillment.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fulfillment.Order), args.Error(1)
}

func (m *MockFulfillmentClient) CreateOrder(ctx context.Context, req *fulfillment.CreateOrderRequest) (*fulfillment.CreateOrderResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fulfillment.CreateOrderResult), args.Error(1)
}

func (m *MockFulfillmentClient) UpdateOrder(ctx context.Context, order *fulfillment.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// MockShipmentDispatcher is a mock implementation of ShipmentDispatcher
type MockShipmentDispatcher struct {
	mock.Mock
}

func (m *MockShipmentDispatcher) MarkDispatched(ctx context.Context, shipmentID uuid.UUID) error {
	args := m.Called(ctx, shipmentID)
	return args.Error(0)
}

// Test helper functions

func newTestStoreID() uuid.UUID {
	return uuid.MustParse("11111111-1111-1111-1111-111111111111")
}

func newTestOrderID() uuid.UUID {
	return uuid.MustParse("22222222-2222-2222-2222-222222222222")
}

func newTestCustomerID() uuid.UUID {
	return uuid.MustParse("33333333-3333-3333-3333-333333333333")
}

func newTestStore() *ordering.Store {
	return &ordering.Store{
		ID:                 newTestStoreID(),
		Name:               "Main Store",
		ProviderCustomerID: "CUST-42",
	}
}

func newTestAddress() *ordering.Address {
	return &ordering.Address{
		FirstName:     "Ada",
		LastName:      "Byrne",
		Email:         "ada@example.com",
		PhoneNumber:   "555-0100",
		Address1:      "1 Main St",
		City:          "Victoria",
		StateProvince: &ordering.StateProvince{Name: "British Columbia", Abbreviation: "BC"},
		Country:       &ordering.Country{Name: "Canada", TwoLetterISOCode: "CA"},
		ZipPostalCode: "V8V 1A1",
	}
}

func newTestOrder(orderNumber int64) *ordering.Order {
	orderID := newTestOrderID()
	return &ordering.Order{
		ID:                       orderID,
		OrderNumber:              orderNumber,
		StoreID:                  newTestStoreID(),
		CustomerID:               newTestCustomerID(),
		PaymentStatus:            ordering.PaymentStatusPaid,
		OrderStatus:              ordering.OrderStatusProcessing,
		ShippingStatus:           ordering.ShippingStatusNotYetShipped,
		ShippingMethodSystemName: ordering.ShippingMethodCourier,
		BillingAddress:           newTestAddress(),
		OrderTotal:               decimal.NewFromFloat(99.95),
		Items: []ordering.OrderItem{
			{
				ID:                 uuid.MustParse("44444444-4444-4444-4444-444444444444"),
				OrderID:            orderID,
				ProductID:          uuid.MustParse("55555555-5555-5555-5555-555555555555"),
				Sku:                "SKU-A",
				Quantity:           2,
				PriceExclTax:       decimal.NewFromFloat(39.99),
				ProviderSubClassID: 7,
			},
		},
	}
}

func newTestProviderOrder(id string, orderNumber int64) *fulfillment.Order {
	number := orderNumber
	return &fulfillment.Order{
		ID:              id,
		CustomerID:      "CUST-42",
		OriginalOrderID: &number,
		Status:          fulfillment.OrderStatusProcessed,
		PurchaseOrder:   fulfillment.PurchaseOrderCode(orderNumber),
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
