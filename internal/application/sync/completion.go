package sync

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/commerce/fulfillsync/internal/domain/fulfillment"
	"github.com/commerce/fulfillsync/internal/domain/ordering"
	"github.com/commerce/fulfillsync/internal/domain/shared"
)

// CompletionHandler reacts to local shipment-dispatch events by marking the
// matching provider order Completed straight away, without waiting for the
// next import cycle. A local dispatch may fire for orders that were never
// pushed to the provider; those are silently ignored.
type CompletionHandler struct {
	client fulfillment.Client
	stores ordering.StoreRepository
	logger *zap.Logger
}

// NewCompletionHandler creates a new CompletionHandler
func NewCompletionHandler(client fulfillment.Client, stores ordering.StoreRepository, logger *zap.Logger) *CompletionHandler {
	return &CompletionHandler{
		client: client,
		stores: stores,
		logger: logger,
	}
}

// EventTypes returns the event types this handler subscribes to
func (h *CompletionHandler) EventTypes() []string {
	return []string{ordering.EventTypeShipmentDispatched}
}

// Handle marks the provider order mirroring the dispatched shipment's order
// as Completed
func (h *CompletionHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	dispatched, ok := event.(*ordering.ShipmentDispatchedEvent)
	if !ok {
		return nil
	}

	store, err := h.stores.FindByID(ctx, dispatched.StoreID)
	if err != nil {
		return fmt.Errorf("load store %s: %w", dispatched.StoreID, err)
	}
	if !store.HasProviderAccount() {
		return nil
	}

	list, err := h.client.ListOrders(ctx, fulfillment.ListOrdersOptions{
		CustomerID:      store.ProviderCustomerID,
		OriginalOrderID: &dispatched.OrderNumber,
	})
	if err != nil {
		return fmt.Errorf("%w: list orders: %v", fulfillment.ErrRemoteCallFailure, err)
	}
	if len(list.Results) == 0 {
		// The order was never pushed, or was pushed after this dispatch
		// started. Nothing to complete.
		h.logger.Debug("no provider order for dispatched shipment",
			zap.Int64("order_number", dispatched.OrderNumber),
		)
		return nil
	}

	providerOrder := &list.Results[0]
	providerOrder.Status = fulfillment.OrderStatusCompleted
	if err := h.client.UpdateOrder(ctx, providerOrder); err != nil {
		return fmt.Errorf("%w: complete order %s: %v", fulfillment.ErrRemoteCallFailure, providerOrder.ID, err)
	}

	h.logger.Info("provider order completed on dispatch",
		zap.String("provider_order_id", providerOrder.ID),
		zap.Int64("order_number", dispatched.OrderNumber),
		zap.String("tracking_number", dispatched.TrackingNumber),
	)
	return nil
}

// Ensure CompletionHandler implements EventHandler
var _ shared.EventHandler = (*CompletionHandler)(nil)
