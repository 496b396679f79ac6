package ordering

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/commerce/fulfillsync/internal/domain/ordering"
	"github.com/commerce/fulfillsync/internal/domain/shared"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

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

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func newPaidOrder() *ordering.Order {
	orderID := uuid.New()
	itemID := uuid.New()
	return &ordering.Order{
		ID:                       orderID,
		OrderNumber:              1001,
		StoreID:                  uuid.New(),
		CustomerID:               uuid.New(),
		PaymentStatus:            ordering.PaymentStatusPaid,
		OrderStatus:              ordering.OrderStatusProcessing,
		ShippingStatus:           ordering.ShippingStatusNotYetShipped,
		ShippingMethodSystemName: ordering.ShippingMethodCourier,
		OrderTotal:               decimal.NewFromInt(100),
		Items: []ordering.OrderItem{
			{ID: itemID, OrderID: orderID, Sku: "SKU-A", Quantity: 2},
		},
	}
}

func attachShipment(order *ordering.Order) *ordering.Shipment {
	shipment := ordering.NewShipment(order.ID, "TRACK-1", decimal.NewFromFloat(1.25))
	shipment.AddItem(order.Items[0].ID, order.Items[0].Quantity)
	order.Shipments = append(order.Shipments, *shipment)
	return &order.Shipments[len(order.Shipments)-1]
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestShipmentDispatchService_MarkDispatched_CompletesPaidOrder(t *testing.T) {
	orders := new(MockOrderRepository)
	shipments := new(MockShipmentRepository)
	publisher := new(MockEventPublisher)
	service := NewShipmentDispatchService(orders, shipments, publisher, zap.NewNop())

	ctx := context.Background()
	order := newPaidOrder()
	shipment := attachShipment(order)

	shipments.On("FindByID", ctx, shipment.ID).Return(shipment, nil)
	shipments.On("Update", ctx, mock.MatchedBy(func(s *ordering.Shipment) bool {
		return s.ShippedAt != nil
	})).Return(nil)
	orders.On("FindByID", ctx, order.ID).Return(order, nil)
	orders.On("UpdateStatuses", ctx, mock.MatchedBy(func(o *ordering.Order) bool {
		return o.ShippingStatus == ordering.ShippingStatusShipped &&
			o.OrderStatus == ordering.OrderStatusComplete
	})).Return(nil)
	publisher.On("Publish", ctx, mock.MatchedBy(func(events []shared.DomainEvent) bool {
		if len(events) != 1 {
			return false
		}
		dispatched, ok := events[0].(*ordering.ShipmentDispatchedEvent)
		return ok && dispatched.OrderNumber == 1001 && dispatched.TrackingNumber == "TRACK-1"
	})).Return(nil)

	err := service.MarkDispatched(ctx, shipment.ID)

	assert.NoError(t, err)
	orders.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestShipmentDispatchService_MarkDispatched_PartialShipmentDoesNotComplete(t *testing.T) {
	orders := new(MockOrderRepository)
	shipments := new(MockShipmentRepository)
	publisher := new(MockEventPublisher)
	service := NewShipmentDispatchService(orders, shipments, publisher, zap.NewNop())

	ctx := context.Background()
	order := newPaidOrder()
	order.Items[0].Quantity = 5 // shipment only covers 2
	shipment := attachShipment(order)
	shipment.Items[0].Quantity = 2

	shipments.On("FindByID", ctx, shipment.ID).Return(shipment, nil)
	shipments.On("Update", ctx, mock.Anything).Return(nil)
	orders.On("FindByID", ctx, order.ID).Return(order, nil)
	orders.On("UpdateStatuses", ctx, mock.MatchedBy(func(o *ordering.Order) bool {
		return o.ShippingStatus == ordering.ShippingStatusPartiallyShipped &&
			o.OrderStatus == ordering.OrderStatusProcessing
	})).Return(nil)
	publisher.On("Publish", ctx, mock.Anything).Return(nil)

	err := service.MarkDispatched(ctx, shipment.ID)

	assert.NoError(t, err)
	orders.AssertExpectations(t)
}

func TestShipmentDispatchService_MarkDispatched_Twice(t *testing.T) {
	orders := new(MockOrderRepository)
	shipments := new(MockShipmentRepository)
	publisher := new(MockEventPublisher)
	service := NewShipmentDispatchService(orders, shipments, publisher, zap.NewNop())

	ctx := context.Background()
	order := newPaidOrder()
	shipment := attachShipment(order)
	assert.NoError(t, shipment.MarkDispatched(shipment.CreatedAt))

	shipments.On("FindByID", ctx, shipment.ID).Return(shipment, nil)

	err := service.MarkDispatched(ctx, shipment.ID)

	assert.ErrorIs(t, err, ordering.ErrShipmentAlreadyDispatched)
	shipments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestShipmentDispatchService_MarkDispatched_ShipmentNotFound(t *testing.T) {
	orders := new(MockOrderRepository)
	shipments := new(MockShipmentRepository)
	publisher := new(MockEventPublisher)
	service := NewShipmentDispatchService(orders, shipments, publisher, zap.NewNop())

	ctx := context.Background()
	shipmentID := uuid.New()
	shipments.On("FindByID", ctx, shipmentID).Return(nil, shared.ErrNotFound)

	err := service.MarkDispatched(ctx, shipmentID)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestShipmentDispatchService_MarkDispatched_UpdateFailureStopsPropagation(t *testing.T) {
	orders := new(MockOrderRepository)
	shipments := new(MockShipmentRepository)
	publisher := new(MockEventPublisher)
	service := NewShipmentDispatchService(orders, shipments, publisher, zap.NewNop())

	ctx := context.Background()
	order := newPaidOrder()
	shipment := attachShipment(order)

	shipments.On("FindByID", ctx, shipment.ID).Return(shipment, nil)
	shipments.On("Update", ctx, mock.Anything).Return(errors.New("db down"))

	err := service.MarkDispatched(ctx, shipment.ID)

	assert.Error(t, err)
	orders.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
