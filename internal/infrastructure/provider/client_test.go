package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commerce/fulfillsync/internal/domain/fulfillment"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(&ClientConfig{
		BaseURL:        server.URL,
		APIKey:         "test-key",
		TimeoutSeconds: 5,
		PageSize:       100,
	})
	require.NoError(t, err)
	return client, server
}

func TestHTTPClient_ListOrders(t *testing.T) {
	var gotRequest *http.Request
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotRequest = r.Clone(context.Background())
		_ = json.NewEncoder(w).Encode(wireOrderList{
			Results: []wireOrder{{ID: "P-1", CustomerID: "CUST-42", Status: "PROCESSED"}},
			Total:   1,
		})
	})

	orderNumber := int64(1001)
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	list, err := client.ListOrders(context.Background(), fulfillment.ListOrdersOptions{
		CustomerID:      "CUST-42",
		OriginalOrderID: &orderNumber,
		CreatedFrom:     &from,
		Statuses:        []fulfillment.OrderStatus{fulfillment.OrderStatusProcessed, fulfillment.OrderStatusShipped},
		PageSize:        50,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Results, 1)
	assert.Equal(t, "P-1", list.Results[0].ID)
	assert.Equal(t, fulfillment.OrderStatusProcessed, list.Results[0].Status)

	require.NotNil(t, gotRequest)
	assert.Equal(t, "/api/orders", gotRequest.URL.Path)
	assert.Equal(t, "Bearer test-key", gotRequest.Header.Get("Authorization"))
	query := gotRequest.URL.Query()
	assert.Equal(t, "CUST-42", query.Get("customerId"))
	assert.Equal(t, "1001", query.Get("originalOrderId"))
	assert.Equal(t, "2026-08-01T00:00:00Z", query.Get("createdFrom"))
	assert.Equal(t, []string{"PROCESSED", "SHIPPED"}, query["status"])
	assert.Equal(t, "1", query.Get("page"))
	assert.Equal(t, "50", query.Get("pageSize"))
}

func TestHTTPClient_GetOrder(t *testing.T) {
	orderNumber := int64(1001)
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/P-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(wireOrder{
			ID:              "P-1",
			OriginalOrderID: &orderNumber,
			Status:          "SHIPPED",
			Shipments: []wireShipment{{
				ID:             "S-1",
				OrderID:        "P-1",
				TrackingNumber: "TRACK-1",
				Weight:         decimal.NewFromFloat(1.25),
				Items:          []wireShipmentItem{{ProductSku: "SKU-A", Quantity: 2}},
			}},
		})
	})

	order, err := client.GetOrder(context.Background(), "P-1")

	require.NoError(t, err)
	assert.Equal(t, "P-1", order.ID)
	require.NotNil(t, order.OriginalOrderID)
	assert.Equal(t, int64(1001), *order.OriginalOrderID)
	require.Len(t, order.Shipments, 1)
	assert.Equal(t, "TRACK-1", order.Shipments[0].TrackingNumber)
	assert.Equal(t, "SKU-A", order.Shipments[0].Items[0].ProductSku)
}

func TestHTTPClient_GetOrder_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetOrder(context.Background(), "P-404")

	assert.ErrorIs(t, err, fulfillment.ErrOrderNotFound)
}

func TestHTTPClient_CreateOrder(t *testing.T) {
	var sent wireOrder
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		_ = json.NewEncoder(w).Encode(wireCreateOrderResult{Success: true})
	})

	result, err := client.CreateOrder(context.Background(), &fulfillment.CreateOrderRequest{
		CustomerID:      "CUST-42",
		OriginalOrderID: 1001,
		PurchaseOrder:   "000000000000001001",
		ShippingMethod:  "BOX_AND_SHIP_TO_HOME",
		OrderTotal:      decimal.NewFromInt(100),
		Items:           []fulfillment.OrderItem{{ProductSku: "SKU-A", Quantity: 2}},
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, sent.OriginalOrderID)
	assert.Equal(t, int64(1001), *sent.OriginalOrderID)
	assert.Equal(t, "000000000000001001", sent.PurchaseOrder)
	assert.Equal(t, "BOX_AND_SHIP_TO_HOME", sent.ShippingMethod)
	require.Len(t, sent.Items, 1)
	assert.Equal(t, "SKU-A", sent.Items[0].ProductSku)
}

func TestHTTPClient_CreateOrder_ValidationErrors(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(wireCreateOrderResult{
			Success: false,
			Errors:  []string{"unknown sku SKU-Z"},
		})
	})

	result, err := client.CreateOrder(context.Background(), &fulfillment.CreateOrderRequest{})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, []string{"unknown sku SKU-Z"}, result.Errors)
}

func TestHTTPClient_UpdateOrder(t *testing.T) {
	var sent wireOrder
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/orders/P-1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.WriteHeader(http.StatusOK)
	})

	err := client.UpdateOrder(context.Background(), &fulfillment.Order{
		ID:     "P-1",
		Status: fulfillment.OrderStatusCompleted,
	})

	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", sent.Status)
}

func TestHTTPClient_ServerErrorWithMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(wireError{Message: "customerId is required"})
	})

	_, err := client.GetOrder(context.Background(), "P-1")

	assert.ErrorIs(t, err, fulfillment.ErrRemoteCallFailure)
	assert.ErrorContains(t, err, "customerId is required")
}

func TestHTTPClient_TransportError(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := client.GetOrder(context.Background(), "P-1")

	assert.ErrorIs(t, err, fulfillment.ErrRemoteCallFailure)
}

func TestNewHTTPClient_InvalidConfig(t *testing.T) {
	_, err := NewHTTPClient(&ClientConfig{APIKey: "key"})
	assert.ErrorIs(t, err, ErrConfigMissingBaseURL)

	_, err = NewHTTPClient(&ClientConfig{BaseURL: "https://provider.example.com"})
	assert.ErrorIs(t, err, ErrConfigMissingAPIKey)
}
