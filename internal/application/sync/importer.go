package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/commerce/fulfillsync/internal/domain/fulfillment"
	"github.com/commerce/fulfillsync/internal/domain/ordering"
	"github.com/commerce/fulfillsync/internal/domain/shared"
)

// ErrImportCompletedWithFailures signals that at least one shipment failed
// during an import run. Work already committed is kept; the failure tells the
// scheduler to mark the run unhealthy for operator attention.
var ErrImportCompletedWithFailures = errors.New("sync: import finished with failed shipments, see log for details")

// ShipmentDispatcher performs the local "mark shipped" action for a shipment.
// The importer triggers it for direct-to-recipient shipments; the downstream
// effects (customer notification, order completion) are owned by the local
// order lifecycle.
type ShipmentDispatcher interface {
	MarkDispatched(ctx context.Context, shipmentID uuid.UUID) error
}

// ShipmentImporter pulls shipments from the fulfillment provider and mirrors
// them as local shipments. The tracking number within an order is the dedup
// key: a remote shipment already mirrored locally is never created twice.
type ShipmentImporter struct {
	client     fulfillment.Client
	stores     ordering.StoreRepository
	orders     ordering.OrderRepository
	shipments  ordering.ShipmentRepository
	dispatcher ShipmentDispatcher
	reconciler *StatusReconciler
	logger     *zap.Logger
}

// NewShipmentImporter creates a new ShipmentImporter
func NewShipmentImporter(
	client fulfillment.Client,
	stores ordering.StoreRepository,
	orders ordering.OrderRepository,
	shipments ordering.ShipmentRepository,
	dispatcher ShipmentDispatcher,
	reconciler *StatusReconciler,
	logger *zap.Logger,
) *ShipmentImporter {
	return &ShipmentImporter{
		client:     client,
		stores:     stores,
		orders:     orders,
		shipments:  shipments,
		dispatcher: dispatcher,
		reconciler: reconciler,
		logger:     logger,
	}
}

// ImportShipments walks every store's active provider orders and creates a
// local shipment for each remote shipment not seen before. A failure on one
// shipment is logged and does not stop the run; if anything failed the run
// returns ErrImportCompletedWithFailures after all stores are processed.
func (im *ShipmentImporter) ImportShipments(ctx context.Context) error {
	stores, err := im.stores.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("list stores: %w", err)
	}

	failed := false
	imported := 0
	for i := range stores {
		store := &stores[i]
		if !store.HasProviderAccount() {
			im.logger.Debug("store has no provider account, skipping",
				zap.String("store_id", store.ID.String()),
			)
			continue
		}

		// Pull the whole active set for this store in one page.
		list, err := im.client.ListOrders(ctx, fulfillment.ListOrdersOptions{
			CustomerID: store.ProviderCustomerID,
			Statuses:   fulfillment.ActiveOrderStatuses(),
		})
		if err != nil {
			failed = true
			im.logger.Error("failed to list provider orders for store",
				zap.String("store_id", store.ID.String()),
				zap.Error(err),
			)
			continue
		}

		for j := range list.Results {
			providerOrder := &list.Results[j]
			for k := range providerOrder.Shipments {
				created, err := im.createShipment(ctx, &providerOrder.Shipments[k])
				if err != nil {
					failed = true
					im.logger.Error("failed to create shipment",
						zap.String("provider_order_id", providerOrder.ID),
						zap.Int64p("order_number", providerOrder.OriginalOrderID),
						zap.String("tracking_number", providerOrder.Shipments[k].TrackingNumber),
						zap.Error(err),
					)
					continue
				}
				if created {
					imported++
				}
			}
		}
	}

	im.logger.Info("shipment import run finished",
		zap.Int("imported", imported),
		zap.Bool("had_failures", failed),
	)
	if failed {
		return ErrImportCompletedWithFailures
	}
	return nil
}

// createShipment mirrors a single remote shipment locally. It returns
// (false, nil) when the shipment was already imported; in that case only the
// status reconciliation runs.
func (im *ShipmentImporter) createShipment(ctx context.Context, remote *fulfillment.Shipment) (bool, error) {
	// Re-fetch the canonical order: the listing page may be stale.
	providerOrder, err := im.client.GetOrder(ctx, remote.OrderID)
	if err != nil {
		return false, fmt.Errorf("load provider order %s: %w", remote.OrderID, err)
	}
	if providerOrder.OriginalOrderID == nil {
		return false, fmt.Errorf("%w: provider order %s", fulfillment.ErrDataIntegrity, providerOrder.ID)
	}

	order, err := im.orders.FindByNumber(ctx, *providerOrder.OriginalOrderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, fmt.Errorf("%w: local order %d", fulfillment.ErrOrderNotFound, *providerOrder.OriginalOrderID)
		}
		return false, fmt.Errorf("load local order %d: %w", *providerOrder.OriginalOrderID, err)
	}

	existing, err := im.shipments.FindByOrderAndTracking(ctx, order.ID, remote.TrackingNumber)
	if err != nil {
		return false, fmt.Errorf("look up shipments for order %s: %w", order.ID, err)
	}
	if len(existing) > 1 {
		return false, fmt.Errorf("%w: %q on order %d", fulfillment.ErrDuplicateTrackingNumber, remote.TrackingNumber, order.OrderNumber)
	}
	if len(existing) == 1 {
		// Already imported; statuses may still have moved.
		return false, im.reconciler.ReconcileStatus(ctx, providerOrder.ID)
	}

	shipment := ordering.NewShipment(order.ID, remote.TrackingNumber, remote.Weight)
	shipment.AdminComment = "created automatically"
	for i := range remote.Items {
		remoteItem := &remote.Items[i]
		matches := order.ItemsBySku(remoteItem.ProductSku)
		if len(matches) > 1 {
			return false, fmt.Errorf("%w: %q on order %d", fulfillment.ErrAmbiguousSku, remoteItem.ProductSku, order.OrderNumber)
		}
		if len(matches) == 0 {
			return false, fmt.Errorf("%w: %q on order %d", fulfillment.ErrLineItemNotFound, remoteItem.ProductSku, order.OrderNumber)
		}
		shipment.AddItem(matches[0].ID, remoteItem.Quantity)
	}

	if err := im.shipments.Save(ctx, shipment); err != nil {
		return false, fmt.Errorf("save shipment %q for order %d: %w", remote.TrackingNumber, order.OrderNumber, err)
	}

	im.logger.Info("shipment imported",
		zap.Int64("order_number", order.OrderNumber),
		zap.String("tracking_number", shipment.TrackingNumber),
		zap.Int("item_count", len(shipment.Items)),
	)

	// Direct-to-recipient parcels are already on their way to the customer
	// when the provider reports them; dispatch immediately.
	if fulfillment.ChannelForMethod(order.ShippingMethodSystemName) == fulfillment.ChannelDirectToRecipient {
		if err := im.dispatcher.MarkDispatched(ctx, shipment.ID); err != nil {
			return true, fmt.Errorf("dispatch shipment %s: %w", shipment.ID, err)
		}
	}

	return true, im.reconciler.ReconcileStatus(ctx, providerOrder.ID)
}
