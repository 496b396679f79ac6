package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/commerce/fulfillsync/internal/domain/fulfillment"
)

// maxResponseSize limits the response body size to prevent memory exhaustion
const maxResponseSize = 10 * 1024 * 1024 // 10MB max response

// HTTPClient implements the fulfillment.Client port against the provider's
// REST API
type HTTPClient struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewHTTPClient creates a new provider API client with the given configuration
func NewHTTPClient(config *ClientConfig) (*HTTPClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &HTTPClient{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// ListOrders lists provider orders matching the options
func (c *HTTPClient) ListOrders(ctx context.Context, opts fulfillment.ListOrdersOptions) (*fulfillment.OrderList, error) {
	params := url.Values{}
	params.Set("customerId", opts.CustomerID)
	if opts.OriginalOrderID != nil {
		params.Set("originalOrderId", strconv.FormatInt(*opts.OriginalOrderID, 10))
	}
	if opts.BillingEmail != "" {
		params.Set("billingEmail", opts.BillingEmail)
	}
	if opts.ProductSku != "" {
		params.Set("productSku", opts.ProductSku)
	}
	if opts.CreatedFrom != nil {
		params.Set("createdFrom", opts.CreatedFrom.UTC().Format(time.RFC3339))
	}
	if opts.CreatedTo != nil {
		params.Set("createdTo", opts.CreatedTo.UTC().Format(time.RFC3339))
	}
	for _, status := range opts.Statuses {
		params.Add("status", status.String())
	}
	page := opts.Page
	if page == 0 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))
	if opts.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(opts.PageSize))
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/api/orders?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var list wireOrderList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("provider: failed to decode order list: %w", err)
	}

	result := &fulfillment.OrderList{
		Results: make([]fulfillment.Order, len(list.Results)),
		Total:   list.Total,
	}
	for i := range list.Results {
		result.Results[i] = *orderFromWire(&list.Results[i])
	}
	return result, nil
}

// GetOrder fetches a single provider order by id
func (c *HTTPClient) GetOrder(ctx context.Context, id string) (*fulfillment.Order, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var w wireOrder
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, fmt.Errorf("provider: failed to decode order: %w", err)
	}
	return orderFromWire(&w), nil
}

// CreateOrder submits an order creation request
func (c *HTTPClient) CreateOrder(ctx context.Context, req *fulfillment.CreateOrderRequest) (*fulfillment.CreateOrderResult, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/api/orders", createRequestToWire(req))
	if err != nil {
		return nil, err
	}

	var result wireCreateOrderResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("provider: failed to decode create result: %w", err)
	}
	return &fulfillment.CreateOrderResult{
		Success: result.Success,
		Errors:  result.Errors,
	}, nil
}

// UpdateOrder persists changes to a provider order
func (c *HTTPClient) UpdateOrder(ctx context.Context, order *fulfillment.Order) error {
	_, err := c.doRequest(ctx, http.MethodPut, "/api/orders/"+url.PathEscape(order.ID), orderToWire(order))
	return err
}

// doRequest performs an HTTP request to the provider API
func (c *HTTPClient) doRequest(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		bodyBytes, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("provider: failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("provider: failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fulfillment.ErrRemoteCallFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("provider: failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fulfillment.ErrOrderNotFound
	}
	if resp.StatusCode >= 400 {
		var apiErr wireError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("%w: HTTP %d: %s", fulfillment.ErrRemoteCallFailure, resp.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("%w: HTTP %d", fulfillment.ErrRemoteCallFailure, resp.StatusCode)
	}

	return body, nil
}

// Ensure HTTPClient implements the fulfillment client port
var _ fulfillment.Client = (*HTTPClient)(nil)
