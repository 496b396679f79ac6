package provider

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/commerce/fulfillsync/internal/domain/fulfillment"
)

// ---------------------------------------------------------------------------
// Wire types
// ---------------------------------------------------------------------------

// wireAddress is the provider's JSON address representation
type wireAddress struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	PhoneNumber       string `json:"phoneNumber"`
	Address1          string `json:"address1"`
	Address2          string `json:"address2,omitempty"`
	City              string `json:"city"`
	StateProvince     string `json:"stateProvince"`
	Country           string `json:"country"`
	ZipPostalCode     string `json:"zipPostalCode"`
	OriginalAddressID string `json:"originalAddressId,omitempty"`
}

// wireOrderItem is the provider's JSON order line representation
type wireOrderItem struct {
	OriginalOrderItemID string          `json:"originalOrderItemId,omitempty"`
	OriginalProductID   string          `json:"originalProductId,omitempty"`
	ProductSku          string          `json:"productSku"`
	Quantity            int             `json:"quantity"`
	Price               decimal.Decimal `json:"price"`
}

// wireShipmentItem is the provider's JSON shipped line representation
type wireShipmentItem struct {
	ProductSku string `json:"productSku"`
	Quantity   int    `json:"quantity"`
}

// wireShipment is the provider's JSON shipment representation
type wireShipment struct {
	ID             string             `json:"id"`
	OrderID        string             `json:"orderId"`
	TrackingNumber string             `json:"trackingNumber"`
	Weight         decimal.Decimal    `json:"weight"`
	Items          []wireShipmentItem `json:"items"`
}

// wireOrder is the provider's JSON order representation
type wireOrder struct {
	ID                 string          `json:"id"`
	CustomerID         string          `json:"customerId"`
	OriginalOrderID    *int64          `json:"originalOrderId,omitempty"`
	OriginalCustomerID string          `json:"originalCustomerId,omitempty"`
	Status             string          `json:"status"`
	BillingAddress     wireAddress     `json:"billingAddress"`
	ShippingAddress    *wireAddress    `json:"shippingAddress,omitempty"`
	OrderTotal         decimal.Decimal `json:"orderTotal"`
	PurchaseOrder      string          `json:"purchaseOrder"`
	ShippingMethod     string          `json:"shippingMethod"`
	OrderDate          time.Time       `json:"orderDate"`
	Items              []wireOrderItem `json:"items"`
	Shipments          []wireShipment  `json:"shipments"`
}

// wireOrderList is one page of provider orders
type wireOrderList struct {
	Results []wireOrder `json:"results"`
	Total   int         `json:"total"`
}

// wireCreateOrderResult is the provider's order creation response
type wireCreateOrderResult struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors,omitempty"`
}

// wireError is the provider's error envelope
type wireError struct {
	Message string `json:"message"`
}

// ---------------------------------------------------------------------------
// Conversions
// ---------------------------------------------------------------------------

func addressToWire(a fulfillment.Address) wireAddress {
	w := wireAddress{
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		Email:         a.Email,
		PhoneNumber:   a.PhoneNumber,
		Address1:      a.Address1,
		Address2:      a.Address2,
		City:          a.City,
		StateProvince: a.StateProvinceAbbreviation,
		Country:       a.CountryTwoLetterISOCode,
		ZipPostalCode: a.ZipPostalCode,
	}
	if a.OriginalAddressID != uuid.Nil {
		w.OriginalAddressID = a.OriginalAddressID.String()
	}
	return w
}

func addressFromWire(w wireAddress) fulfillment.Address {
	a := fulfillment.Address{
		FirstName:                 w.FirstName,
		LastName:                  w.LastName,
		Email:                     w.Email,
		PhoneNumber:               w.PhoneNumber,
		Address1:                  w.Address1,
		Address2:                  w.Address2,
		City:                      w.City,
		StateProvinceAbbreviation: w.StateProvince,
		CountryTwoLetterISOCode:   w.Country,
		ZipPostalCode:             w.ZipPostalCode,
	}
	if id, err := uuid.Parse(w.OriginalAddressID); err == nil {
		a.OriginalAddressID = id
	}
	return a
}

func orderFromWire(w *wireOrder) *fulfillment.Order {
	order := &fulfillment.Order{
		ID:              w.ID,
		CustomerID:      w.CustomerID,
		OriginalOrderID: w.OriginalOrderID,
		Status:          fulfillment.OrderStatus(w.Status),
		BillingAddress:  addressFromWire(w.BillingAddress),
		OrderTotal:      w.OrderTotal,
		PurchaseOrder:   w.PurchaseOrder,
		ShippingMethod:  w.ShippingMethod,
		OrderDate:       w.OrderDate,
		Items:           make([]fulfillment.OrderItem, len(w.Items)),
		Shipments:       make([]fulfillment.Shipment, len(w.Shipments)),
	}
	if id, err := uuid.Parse(w.OriginalCustomerID); err == nil {
		order.OriginalCustomerID = id
	}
	if w.ShippingAddress != nil {
		addr := addressFromWire(*w.ShippingAddress)
		order.ShippingAddress = &addr
	}
	for i, item := range w.Items {
		order.Items[i] = orderItemFromWire(item)
	}
	for i, shipment := range w.Shipments {
		order.Shipments[i] = shipmentFromWire(shipment)
	}
	return order
}

func orderItemFromWire(w wireOrderItem) fulfillment.OrderItem {
	item := fulfillment.OrderItem{
		ProductSku: w.ProductSku,
		Quantity:   w.Quantity,
		Price:      w.Price,
	}
	if id, err := uuid.Parse(w.OriginalOrderItemID); err == nil {
		item.OriginalOrderItemID = id
	}
	if id, err := uuid.Parse(w.OriginalProductID); err == nil {
		item.OriginalProductID = id
	}
	return item
}

func shipmentFromWire(w wireShipment) fulfillment.Shipment {
	shipment := fulfillment.Shipment{
		ID:             w.ID,
		OrderID:        w.OrderID,
		TrackingNumber: w.TrackingNumber,
		Weight:         w.Weight,
		Items:          make([]fulfillment.ShipmentItem, len(w.Items)),
	}
	for i, item := range w.Items {
		shipment.Items[i] = fulfillment.ShipmentItem{
			ProductSku: item.ProductSku,
			Quantity:   item.Quantity,
		}
	}
	return shipment
}

func createRequestToWire(req *fulfillment.CreateOrderRequest) *wireOrder {
	w := &wireOrder{
		CustomerID:         req.CustomerID,
		OriginalOrderID:    &req.OriginalOrderID,
		OriginalCustomerID: req.OriginalCustomerID.String(),
		BillingAddress:     addressToWire(req.BillingAddress),
		OrderTotal:         req.OrderTotal,
		PurchaseOrder:      req.PurchaseOrder,
		ShippingMethod:     req.ShippingMethod,
		OrderDate:          req.OrderDate,
		Items:              make([]wireOrderItem, len(req.Items)),
	}
	if req.ShippingAddress != nil {
		addr := addressToWire(*req.ShippingAddress)
		w.ShippingAddress = &addr
	}
	for i, item := range req.Items {
		w.Items[i] = wireOrderItem{
			OriginalOrderItemID: item.OriginalOrderItemID.String(),
			OriginalProductID:   item.OriginalProductID.String(),
			ProductSku:          item.ProductSku,
			Quantity:            item.Quantity,
			Price:               item.Price,
		}
	}
	return w
}

func orderToWire(order *fulfillment.Order) *wireOrder {
	w := &wireOrder{
		ID:              order.ID,
		CustomerID:      order.CustomerID,
		OriginalOrderID: order.OriginalOrderID,
		Status:          order.Status.String(),
		BillingAddress:  addressToWire(order.BillingAddress),
		OrderTotal:      order.OrderTotal,
		PurchaseOrder:   order.PurchaseOrder,
		ShippingMethod:  order.ShippingMethod,
		OrderDate:       order.OrderDate,
		Items:           make([]wireOrderItem, len(order.Items)),
		Shipments:       make([]wireShipment, len(order.Shipments)),
	}
	if order.OriginalCustomerID != uuid.Nil {
		w.OriginalCustomerID = order.OriginalCustomerID.String()
	}
	if order.ShippingAddress != nil {
		addr := addressToWire(*order.ShippingAddress)
		w.ShippingAddress = &addr
	}
	for i, item := range order.Items {
		w.Items[i] = wireOrderItem{
			OriginalOrderItemID: item.OriginalOrderItemID.String(),
			OriginalProductID:   item.OriginalProductID.String(),
			ProductSku:          item.ProductSku,
			Quantity:            item.Quantity,
			Price:               item.Price,
		}
	}
	for i, shipment := range order.Shipments {
		items := make([]wireShipmentItem, len(shipment.Items))
		for j, item := range shipment.Items {
			items[j] = wireShipmentItem{ProductSku: item.ProductSku, Quantity: item.Quantity}
		}
		w.Shipments[i] = wireShipment{
			ID:             shipment.ID,
			OrderID:        shipment.OrderID,
			TrackingNumber: shipment.TrackingNumber,
			Weight:         shipment.Weight,
			Items:          items,
		}
	}
	return w
}
