package sync

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/commerce/fulfillsync/internal/domain/fulfillment"
	"github.com/commerce/fulfillsync/internal/domain/ordering"
	"github.com/commerce/fulfillsync/internal/domain/shared"
)

// StatusReconciler recomputes a provider order's status from local shipping
// state and the order's channel, and writes it back to the provider. It never
// touches local order state and never moves a provider status backwards.
type StatusReconciler struct {
	client fulfillment.Client
	orders ordering.OrderRepository
	logger *zap.Logger
}

// NewStatusReconciler creates a new StatusReconciler
func NewStatusReconciler(client fulfillment.Client, orders ordering.OrderRepository, logger *zap.Logger) *StatusReconciler {
	return &StatusReconciler{
		client: client,
		orders: orders,
		logger: logger,
	}
}

// ReconcileStatus recomputes and persists the status of the given provider
// order
func (r *StatusReconciler) ReconcileStatus(ctx context.Context, providerOrderID string) error {
	providerOrder, err := r.client.GetOrder(ctx, providerOrderID)
	if err != nil {
		return fmt.Errorf("load provider order %s: %w", providerOrderID, err)
	}
	if providerOrder.OriginalOrderID == nil {
		return fmt.Errorf("%w: provider order %s", fulfillment.ErrDataIntegrity, providerOrderID)
	}

	order, err := r.orders.FindByNumber(ctx, *providerOrder.OriginalOrderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return fmt.Errorf("%w: local order %d", fulfillment.ErrOrderNotFound, *providerOrder.OriginalOrderID)
		}
		return fmt.Errorf("load local order %d: %w", *providerOrder.OriginalOrderID, err)
	}

	status := computeStatus(providerOrder, order)
	if status.Rank() < providerOrder.Status.Rank() {
		// The provider is already further along; regressing would violate
		// status monotonicity.
		r.logger.Debug("keeping provider order status, computed status would regress",
			zap.String("provider_order_id", providerOrder.ID),
			zap.String("current", providerOrder.Status.String()),
			zap.String("computed", status.String()),
		)
		status = providerOrder.Status
	}

	providerOrder.Status = status
	if err := r.client.UpdateOrder(ctx, providerOrder); err != nil {
		return fmt.Errorf("%w: update order %s: %v", fulfillment.ErrRemoteCallFailure, providerOrder.ID, err)
	}

	r.logger.Info("provider order status reconciled",
		zap.String("provider_order_id", providerOrder.ID),
		zap.Int64("order_number", order.OrderNumber),
		zap.String("status", status.String()),
	)
	return nil
}

// computeStatus evaluates the channel-dependent status rules against current
// local state. Statuses not covered by a rule stay as the provider reported
// them.
func computeStatus(providerOrder *fulfillment.Order, order *ordering.Order) fulfillment.OrderStatus {
	status := providerOrder.Status

	switch fulfillment.ChannelForMethod(order.ShippingMethodSystemName) {
	case fulfillment.ChannelDirectToRecipient:
		// Direct to recipient: the cycle ends when goods leave the warehouse.
		switch order.ShippingStatus {
		case ordering.ShippingStatusShipped, ordering.ShippingStatusDelivered:
			status = fulfillment.OrderStatusCompleted
		case ordering.ShippingStatusPartiallyShipped:
			status = fulfillment.OrderStatusPartiallyShipped
		}

	case fulfillment.ChannelShipToPickupLocation:
		// Ship to pickup: the cycle ends when the customer has the goods.
		switch {
		case order.OrderStatus == ordering.OrderStatusComplete,
			order.ShippingStatus == ordering.ShippingStatusDelivered,
			order.ShippingStatus == ordering.ShippingStatusShipped:
			status = fulfillment.OrderStatusCompleted
		case order.HasItemsToShip():
			status = fulfillment.OrderStatusPartiallyShipped
		default:
			status = fulfillment.OrderStatusShipped
		}
	}

	return status
}
