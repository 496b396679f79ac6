package ordering

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func orderWithLines(skus ...string) *Order {
	order := &Order{
		ID:             uuid.New(),
		OrderNumber:    1001,
		PaymentStatus:  PaymentStatusPaid,
		OrderStatus:    OrderStatusProcessing,
		ShippingStatus: ShippingStatusNotYetShipped,
		OrderTotal:     decimal.NewFromInt(100),
	}
	for _, sku := range skus {
		order.Items = append(order.Items, OrderItem{
			ID:       uuid.New(),
			OrderID:  order.ID,
			Sku:      sku,
			Quantity: 2,
		})
	}
	return order
}

func TestOrder_ItemsBySku(t *testing.T) {
	order := orderWithLines("SKU-A", "SKU-B", "SKU-A")

	assert.Len(t, order.ItemsBySku("SKU-A"), 2)
	assert.Len(t, order.ItemsBySku("SKU-B"), 1)
	assert.Empty(t, order.ItemsBySku("SKU-C"))
}

func TestOrder_ItemByID(t *testing.T) {
	order := orderWithLines("SKU-A", "SKU-B")

	found := order.ItemByID(order.Items[1].ID)
	assert.NotNil(t, found)
	assert.Equal(t, "SKU-B", found.Sku)

	assert.Nil(t, order.ItemByID(uuid.New()))
}

func TestOrder_ShipmentsByTrackingNumber(t *testing.T) {
	order := orderWithLines("SKU-A")
	order.Shipments = []Shipment{
		*NewShipment(order.ID, "TRACK-1", decimal.Zero),
		*NewShipment(order.ID, "TRACK-2", decimal.Zero),
		*NewShipment(order.ID, "TRACK-1", decimal.Zero),
	}

	assert.Len(t, order.ShipmentsByTrackingNumber("TRACK-1"), 2)
	assert.Len(t, order.ShipmentsByTrackingNumber("TRACK-2"), 1)
	assert.Empty(t, order.ShipmentsByTrackingNumber("TRACK-3"))
}

func TestOrder_QuantityInShipments(t *testing.T) {
	order := orderWithLines("SKU-A")
	itemID := order.Items[0].ID

	first := NewShipment(order.ID, "TRACK-1", decimal.Zero)
	first.AddItem(itemID, 1)
	second := NewShipment(order.ID, "TRACK-2", decimal.Zero)
	second.AddItem(itemID, 1)
	order.Shipments = []Shipment{*first, *second}

	assert.Equal(t, 2, order.QuantityInShipments(itemID))
	assert.Equal(t, 0, order.QuantityInShipments(uuid.New()))
}

func TestOrder_HasItemsToShip(t *testing.T) {
	order := orderWithLines("SKU-A") // quantity 2
	assert.True(t, order.HasItemsToShip())

	shipment := NewShipment(order.ID, "TRACK-1", decimal.Zero)
	shipment.AddItem(order.Items[0].ID, 2)
	order.Shipments = []Shipment{*shipment}

	assert.False(t, order.HasItemsToShip())
}

func TestOrder_RecalculateShippingStatus(t *testing.T) {
	now := time.Now()

	t.Run("nothing dispatched", func(t *testing.T) {
		order := orderWithLines("SKU-A")
		shipment := NewShipment(order.ID, "TRACK-1", decimal.Zero)
		shipment.AddItem(order.Items[0].ID, 2)
		order.Shipments = []Shipment{*shipment}

		assert.Equal(t, ShippingStatusNotYetShipped, order.RecalculateShippingStatus())
	})

	t.Run("dispatched with open quantity", func(t *testing.T) {
		order := orderWithLines("SKU-A")
		shipment := NewShipment(order.ID, "TRACK-1", decimal.Zero)
		shipment.AddItem(order.Items[0].ID, 1)
		shipment.ShippedAt = &now
		order.Shipments = []Shipment{*shipment}

		assert.Equal(t, ShippingStatusPartiallyShipped, order.RecalculateShippingStatus())
	})

	t.Run("fully dispatched", func(t *testing.T) {
		order := orderWithLines("SKU-A")
		shipment := NewShipment(order.ID, "TRACK-1", decimal.Zero)
		shipment.AddItem(order.Items[0].ID, 2)
		shipment.ShippedAt = &now
		order.Shipments = []Shipment{*shipment}

		assert.Equal(t, ShippingStatusShipped, order.RecalculateShippingStatus())
	})

	t.Run("fully delivered", func(t *testing.T) {
		order := orderWithLines("SKU-A")
		shipment := NewShipment(order.ID, "TRACK-1", decimal.Zero)
		shipment.AddItem(order.Items[0].ID, 2)
		shipment.ShippedAt = &now
		shipment.DeliveredAt = &now
		order.Shipments = []Shipment{*shipment}

		assert.Equal(t, ShippingStatusDelivered, order.RecalculateShippingStatus())
	})

	t.Run("shipping not required is sticky", func(t *testing.T) {
		order := orderWithLines("SKU-A")
		order.ShippingStatus = ShippingStatusNotRequired

		assert.Equal(t, ShippingStatusNotRequired, order.RecalculateShippingStatus())
	})
}

func TestOrderItem_FulfillableByProvider(t *testing.T) {
	fulfillable := OrderItem{Sku: "SKU-A", ProviderSubClassID: 7}
	notCarried := OrderItem{Sku: "SKU-B"}

	assert.True(t, fulfillable.FulfillableByProvider())
	assert.False(t, notCarried.FulfillableByProvider())
}
