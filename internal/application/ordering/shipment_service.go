package ordering

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/commerce/fulfillsync/internal/domain/ordering"
	"github.com/commerce/fulfillsync/internal/domain/shared"
)

// ShipmentDispatchService performs the local "mark shipped" action: it stamps
// the shipment, rolls the order's shipping and lifecycle status forward, and
// publishes the dispatch event other components react to.
type ShipmentDispatchService struct {
	orders    ordering.OrderRepository
	shipments ordering.ShipmentRepository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewShipmentDispatchService creates a new ShipmentDispatchService
func NewShipmentDispatchService(
	orders ordering.OrderRepository,
	shipments ordering.ShipmentRepository,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *ShipmentDispatchService {
	return &ShipmentDispatchService{
		orders:    orders,
		shipments: shipments,
		publisher: publisher,
		logger:    logger,
	}
}

// MarkDispatched marks a shipment as handed to the carrier and propagates the
// change to the parent order
func (s *ShipmentDispatchService) MarkDispatched(ctx context.Context, shipmentID uuid.UUID) error {
	shipment, err := s.shipments.FindByID(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("load shipment %s: %w", shipmentID, err)
	}

	if err := shipment.MarkDispatched(time.Now()); err != nil {
		return err
	}
	if err := s.shipments.Update(ctx, shipment); err != nil {
		return fmt.Errorf("update shipment %s: %w", shipmentID, err)
	}

	// Reload so the order sees the dispatched shipment
	order, err := s.orders.FindByID(ctx, shipment.OrderID)
	if err != nil {
		return fmt.Errorf("load order %s: %w", shipment.OrderID, err)
	}

	order.RecalculateShippingStatus()
	if order.PaymentStatus == ordering.PaymentStatusPaid &&
		(order.ShippingStatus == ordering.ShippingStatusShipped ||
			order.ShippingStatus == ordering.ShippingStatusDelivered) {
		order.OrderStatus = ordering.OrderStatusComplete
	}
	if err := s.orders.UpdateStatuses(ctx, order); err != nil {
		return fmt.Errorf("update order %s statuses: %w", order.ID, err)
	}

	s.logger.Info("shipment dispatched",
		zap.String("shipment_id", shipment.ID.String()),
		zap.String("order_id", order.ID.String()),
		zap.Int64("order_number", order.OrderNumber),
		zap.String("tracking_number", shipment.TrackingNumber),
		zap.String("shipping_status", order.ShippingStatus.String()),
	)

	event := ordering.NewShipmentDispatchedEvent(shipment, order)
	if err := s.publisher.Publish(ctx, event); err != nil {
		return fmt.Errorf("publish dispatch event for shipment %s: %w", shipment.ID, err)
	}
	return nil
}
