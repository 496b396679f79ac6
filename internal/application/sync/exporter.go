package sync

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/commerce/fulfillsync/internal/domain/fulfillment"
	"github.com/commerce/fulfillsync/internal/domain/ordering"
)

// OrderExporter pushes newly eligible local orders to the fulfillment
// provider. An order is eligible when it is paid and processing; the provider
// is queried for an existing mirror before anything is created, so re-running
// the exporter against unchanged state creates nothing.
type OrderExporter struct {
	orders   ordering.OrderRepository
	stores   ordering.StoreRepository
	client   fulfillment.Client
	settings Settings
	logger   *zap.Logger
}

// NewOrderExporter creates a new OrderExporter
func NewOrderExporter(
	orders ordering.OrderRepository,
	stores ordering.StoreRepository,
	client fulfillment.Client,
	settings Settings,
	logger *zap.Logger,
) *OrderExporter {
	return &OrderExporter{
		orders:   orders,
		stores:   stores,
		client:   client,
		settings: settings,
		logger:   logger,
	}
}

// ExportEligibleOrders exports every paid, processing local order that has no
// mirror at the provider yet. A failure on one order is logged and does not
// abort the batch; the order stays eligible and the next run retries it.
func (e *OrderExporter) ExportEligibleOrders(ctx context.Context) error {
	paid := ordering.PaymentStatusPaid
	processing := ordering.OrderStatusProcessing
	orders, err := e.orders.Search(ctx, ordering.OrderSearchFilter{
		PaymentStatus: &paid,
		OrderStatus:   &processing,
	})
	if err != nil {
		return fmt.Errorf("search eligible orders: %w", err)
	}

	exported := 0
	skipped := 0
	failed := 0
	for i := range orders {
		order := &orders[i]
		created, err := e.exportOrder(ctx, order)
		if err != nil {
			failed++
			e.logger.Error("failed to export order",
				zap.Int64("order_number", order.OrderNumber),
				zap.String("order_id", order.ID.String()),
				zap.String("store_id", order.StoreID.String()),
				zap.Error(err),
			)
			continue
		}
		if created {
			exported++
		} else {
			skipped++
		}
	}

	e.logger.Info("order export run finished",
		zap.Int("eligible", len(orders)),
		zap.Int("exported", exported),
		zap.Int("skipped", skipped),
		zap.Int("failed", failed),
	)
	return nil
}

// exportOrder exports a single order. It returns (false, nil) when the order
// already exists at the provider.
func (e *OrderExporter) exportOrder(ctx context.Context, order *ordering.Order) (bool, error) {
	store, err := e.stores.FindByID(ctx, order.StoreID)
	if err != nil {
		return false, fmt.Errorf("load store %s: %w", order.StoreID, err)
	}
	if !store.HasProviderAccount() {
		return false, fmt.Errorf("%w: store %s", fulfillment.ErrMissingConfiguration, store.ID)
	}

	// Exactly-once guard: query before create.
	existing, err := e.client.ListOrders(ctx, fulfillment.ListOrdersOptions{
		CustomerID:      store.ProviderCustomerID,
		OriginalOrderID: &order.OrderNumber,
	})
	if err != nil {
		return false, fmt.Errorf("%w: list orders: %v", fulfillment.ErrRemoteCallFailure, err)
	}
	if existing.Total > 0 {
		e.logger.Debug("order already exists at provider, skipping",
			zap.Int64("order_number", order.OrderNumber),
		)
		return false, nil
	}

	if order.BillingAddress == nil ||
		order.BillingAddress.StateProvince == nil ||
		order.BillingAddress.Country == nil {
		return false, fmt.Errorf("%w: order %d", fulfillment.ErrInvalidOrderData, order.OrderNumber)
	}

	req := e.buildCreateRequest(order, store)
	result, err := e.client.CreateOrder(ctx, req)
	if err != nil {
		return false, fmt.Errorf("%w: create order: %v", fulfillment.ErrRemoteCallFailure, err)
	}
	if !result.Success {
		return false, fmt.Errorf("%w: provider rejected order %d: %s",
			fulfillment.ErrRemoteCallFailure, order.OrderNumber, strings.Join(result.Errors, ", "))
	}

	e.logger.Info("order exported to provider",
		zap.Int64("order_number", order.OrderNumber),
		zap.String("purchase_order", req.PurchaseOrder),
		zap.String("shipping_method", req.ShippingMethod),
		zap.Int("item_count", len(req.Items)),
	)
	return true, nil
}

// buildCreateRequest maps a local order into a provider creation request. The
// caller must have validated the billing address.
func (e *OrderExporter) buildCreateRequest(order *ordering.Order, store *ordering.Store) *fulfillment.CreateOrderRequest {
	channel := fulfillment.ResolveChannel(order, e.settings.AutomaticallyProcessOrders)

	// The shipping address only travels when the provider ships direct to the
	// recipient; the pickup channels deliver to the store.
	var shippingAddress *fulfillment.Address
	if channel == fulfillment.ChannelDirectToRecipient {
		mapped := fulfillment.MapShippingAddress(order)
		shippingAddress = &mapped
	}

	// Lines the provider does not carry are dropped; an order may legitimately
	// end up with zero exportable lines and is still submitted.
	items := make([]fulfillment.OrderItem, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		if !item.FulfillableByProvider() {
			e.logger.Debug("dropping non-fulfillable line from export",
				zap.Int64("order_number", order.OrderNumber),
				zap.String("sku", item.Sku),
			)
			continue
		}
		items = append(items, fulfillment.OrderItem{
			OriginalOrderItemID: item.ID,
			OriginalProductID:   item.ProductID,
			ProductSku:          item.Sku,
			Quantity:            item.Quantity,
			Price:               item.PriceExclTax,
		})
	}

	return &fulfillment.CreateOrderRequest{
		CustomerID:         store.ProviderCustomerID,
		OriginalOrderID:    order.OrderNumber,
		OriginalCustomerID: order.CustomerID,
		OrderDate:          order.CreatedAt.UTC(),
		BillingAddress:     fulfillment.MapBillingAddress(order),
		ShippingAddress:    shippingAddress,
		OrderTotal:         order.OrderTotal,
		PurchaseOrder:      fulfillment.PurchaseOrderCode(order.OrderNumber),
		ShippingMethod:     channel.String(),
		Items:              items,
	}
}
