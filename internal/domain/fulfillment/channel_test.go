package fulfillment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/commerce/fulfillsync/internal/domain/ordering"
)

func TestChannelForMethod(t *testing.T) {
	tests := []struct {
		name   string
		method string
		want   ShippingChannel
	}{
		{"courier ships direct", ordering.ShippingMethodCourier, ChannelDirectToRecipient},
		{"pickup routes to store", ordering.ShippingMethodPickupInStore, ChannelShipToPickupLocation},
		{"unknown method routes to store", "Shipping.FixedRate", ChannelShipToPickupLocation},
		{"empty method routes to store", "", ChannelShipToPickupLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChannelForMethod(tt.method))
		})
	}
}

func TestResolveChannel(t *testing.T) {
	courierOrder := &ordering.Order{ShippingMethodSystemName: ordering.ShippingMethodCourier}
	pickupOrder := &ordering.Order{ShippingMethodSystemName: ordering.ShippingMethodPickupInStore}

	assert.Equal(t, ChannelDirectToRecipient, ResolveChannel(courierOrder, true))
	assert.Equal(t, ChannelShipToPickupLocation, ResolveChannel(pickupOrder, true))
}

func TestResolveChannel_AutomaticProcessingDisabled(t *testing.T) {
	courierOrder := &ordering.Order{ShippingMethodSystemName: ordering.ShippingMethodCourier}

	assert.Equal(t, ChannelNoShippingRequired, ResolveChannel(courierOrder, false))
}

func TestShippingChannel_IsValid(t *testing.T) {
	assert.True(t, ChannelDirectToRecipient.IsValid())
	assert.True(t, ChannelShipToPickupLocation.IsValid())
	assert.True(t, ChannelNoShippingRequired.IsValid())
	assert.False(t, ShippingChannel("CARRIER_PIGEON").IsValid())
}
