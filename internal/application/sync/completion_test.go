package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/commerce/fulfillsync/internal/domain/fulfillment"
	"github.com/commerce/fulfillsync/internal/domain/ordering"
	"github.com/commerce/fulfillsync/internal/domain/shared"
)

func newDispatchEvent(orderNumber int64) *ordering.ShipmentDispatchedEvent {
	order := newTestOrder(orderNumber)
	shipment := ordering.NewShipment(order.ID, "TRACK-1", order.OrderTotal)
	return ordering.NewShipmentDispatchedEvent(shipment, order)
}

func TestCompletionHandler_CompletesProviderOrderOnDispatch(t *testing.T) {
	client := new(MockFulfillmentClient)
	stores := new(MockStoreRepository)
	handler := NewCompletionHandler(client, stores, testLogger())

	ctx := context.Background()
	event := newDispatchEvent(1001)
	providerOrder := newTestProviderOrder("P-1", 1001)

	stores.On("FindByID", ctx, event.StoreID).Return(newTestStore(), nil)
	client.On("ListOrders", ctx, mock.MatchedBy(func(opts fulfillment.ListOrdersOptions) bool {
		return opts.CustomerID == "CUST-42" &&
			opts.OriginalOrderID != nil && *opts.OriginalOrderID == 1001
	})).Return(&fulfillment.OrderList{Results: []fulfillment.Order{*providerOrder}, Total: 1}, nil)
	client.On("UpdateOrder", ctx, mock.MatchedBy(func(order *fulfillment.Order) bool {
		return order.ID == "P-1" && order.Status == fulfillment.OrderStatusCompleted
	})).Return(nil)

	err := handler.Handle(ctx, event)

	assert.NoError(t, err)
	client.AssertExpectations(t)
}

func TestCompletionHandler_IgnoresOrdersNeverPushed(t *testing.T) {
	client := new(MockFulfillmentClient)
	stores := new(MockStoreRepository)
	handler := NewCompletionHandler(client, stores, testLogger())

	ctx := context.Background()
	event := newDispatchEvent(1001)

	stores.On("FindByID", ctx, event.StoreID).Return(newTestStore(), nil)
	client.On("ListOrders", ctx, mock.Anything).Return(&fulfillment.OrderList{}, nil)

	err := handler.Handle(ctx, event)

	assert.NoError(t, err)
	client.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything)
}

func TestCompletionHandler_IgnoresStoresWithoutAccount(t *testing.T) {
	client := new(MockFulfillmentClient)
	stores := new(MockStoreRepository)
	handler := NewCompletionHandler(client, stores, testLogger())

	ctx := context.Background()
	event := newDispatchEvent(1001)
	store := newTestStore()
	store.ProviderCustomerID = ""

	stores.On("FindByID", ctx, event.StoreID).Return(store, nil)

	err := handler.Handle(ctx, event)

	assert.NoError(t, err)
	client.AssertNotCalled(t, "ListOrders", mock.Anything, mock.Anything)
}

func TestCompletionHandler_IgnoresOtherEventTypes(t *testing.T) {
	client := new(MockFulfillmentClient)
	stores := new(MockStoreRepository)
	handler := NewCompletionHandler(client, stores, testLogger())

	event := shared.NewBaseDomainEvent("ordering.order.created", "Order", newTestOrderID())

	err := handler.Handle(context.Background(), &event)

	assert.NoError(t, err)
	stores.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCompletionHandler_PropagatesListFailure(t *testing.T) {
	client := new(MockFulfillmentClient)
	stores := new(MockStoreRepository)
	handler := NewCompletionHandler(client, stores, testLogger())

	ctx := context.Background()
	event := newDispatchEvent(1001)

	stores.On("FindByID", ctx, event.StoreID).Return(newTestStore(), nil)
	client.On("ListOrders", ctx, mock.Anything).Return(nil, errors.New("provider down"))

	err := handler.Handle(ctx, event)

	assert.ErrorIs(t, err, fulfillment.ErrRemoteCallFailure)
}

func TestCompletionHandler_EventTypes(t *testing.T) {
	handler := NewCompletionHandler(new(MockFulfillmentClient), new(MockStoreRepository), testLogger())

	assert.Equal(t, []string{ordering.EventTypeShipmentDispatched}, handler.EventTypes())
}
