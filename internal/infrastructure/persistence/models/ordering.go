package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/commerce/fulfillsync/internal/domain/ordering"
)

// AddressModel is the embedded persistence representation of a postal
// address. Region fields are flat nullable strings; an empty state or
// country name maps back to a nil pointer on the domain side.
type AddressModel struct {
	FirstName         string `gorm:"type:varchar(100)"`
	LastName          string `gorm:"type:varchar(100)"`
	Email             string `gorm:"type:varchar(254)"`
	PhoneNumber       string `gorm:"type:varchar(50)"`
	Address1          string `gorm:"type:varchar(300)"`
	Address2          string `gorm:"type:varchar(300)"`
	City              string `gorm:"type:varchar(100)"`
	StateProvinceName string `gorm:"type:varchar(100)"`
	StateProvinceAbbr string `gorm:"type:varchar(20)"`
	CountryName       string `gorm:"type:varchar(100)"`
	CountryISOCode    string `gorm:"type:varchar(2)"`
	ZipPostalCode     string `gorm:"type:varchar(20)"`
}

// ToDomain converts the embedded address to a domain Address
func (m *AddressModel) ToDomain() *ordering.Address {
	addr := &ordering.Address{
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Email:         m.Email,
		PhoneNumber:   m.PhoneNumber,
		Address1:      m.Address1,
		Address2:      m.Address2,
		City:          m.City,
		ZipPostalCode: m.ZipPostalCode,
	}
	if m.StateProvinceName != "" {
		addr.StateProvince = &ordering.StateProvince{
			Name:         m.StateProvinceName,
			Abbreviation: m.StateProvinceAbbr,
		}
	}
	if m.CountryName != "" {
		addr.Country = &ordering.Country{
			Name:             m.CountryName,
			TwoLetterISOCode: m.CountryISOCode,
		}
	}
	return addr
}

// FromDomain populates the embedded address from a domain Address
func (m *AddressModel) FromDomain(a *ordering.Address) {
	if a == nil {
		*m = AddressModel{}
		return
	}
	m.FirstName = a.FirstName
	m.LastName = a.LastName
	m.Email = a.Email
	m.PhoneNumber = a.PhoneNumber
	m.Address1 = a.Address1
	m.Address2 = a.Address2
	m.City = a.City
	m.ZipPostalCode = a.ZipPostalCode
	if a.StateProvince != nil {
		m.StateProvinceName = a.StateProvince.Name
		m.StateProvinceAbbr = a.StateProvince.Abbreviation
	}
	if a.Country != nil {
		m.CountryName = a.Country.Name
		m.CountryISOCode = a.Country.TwoLetterISOCode
	}
}

// OrderModel is the persistence model for the Order aggregate root.
type OrderModel struct {
	ID                       uuid.UUID              `gorm:"type:uuid;primary_key"`
	OrderNumber              int64                  `gorm:"not null;uniqueIndex"`
	StoreID                  uuid.UUID              `gorm:"type:uuid;not null;index"`
	CustomerID               uuid.UUID              `gorm:"type:uuid;not null;index"`
	PaymentStatus            ordering.PaymentStatus `gorm:"type:varchar(30);not null;index"`
	OrderStatus              ordering.OrderStatus   `gorm:"type:varchar(20);not null;index"`
	ShippingStatus           ordering.ShippingStatus `gorm:"type:varchar(30);not null"`
	ShippingMethodSystemName string                 `gorm:"type:varchar(100);not null"`
	BillingAddress           AddressModel           `gorm:"embedded;embeddedPrefix:billing_"`
	HasShippingAddress       bool                   `gorm:"not null;default:false"`
	ShippingAddress          AddressModel           `gorm:"embedded;embeddedPrefix:shipping_"`
	OrderTotal               decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	Items                    []OrderItemModel       `gorm:"foreignKey:OrderID;references:ID"`
	Shipments                []ShipmentModel        `gorm:"foreignKey:OrderID;references:ID"`
	CreatedAt                time.Time              `gorm:"not null;index"`
	UpdatedAt                time.Time              `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *ordering.Order {
	order := &ordering.Order{
		ID:                       m.ID,
		OrderNumber:              m.OrderNumber,
		StoreID:                  m.StoreID,
		CustomerID:               m.CustomerID,
		PaymentStatus:            m.PaymentStatus,
		OrderStatus:              m.OrderStatus,
		ShippingStatus:           m.ShippingStatus,
		ShippingMethodSystemName: m.ShippingMethodSystemName,
		BillingAddress:           m.BillingAddress.ToDomain(),
		OrderTotal:               m.OrderTotal,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
		Items:                    make([]ordering.OrderItem, len(m.Items)),
		Shipments:                make([]ordering.Shipment, len(m.Shipments)),
	}
	if m.HasShippingAddress {
		order.ShippingAddress = m.ShippingAddress.ToDomain()
	}
	for i, item := range m.Items {
		order.Items[i] = *item.ToDomain()
	}
	for i, shipment := range m.Shipments {
		order.Shipments[i] = *shipment.ToDomain()
	}
	return order
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *ordering.Order) {
	m.ID = o.ID
	m.OrderNumber = o.OrderNumber
	m.StoreID = o.StoreID
	m.CustomerID = o.CustomerID
	m.PaymentStatus = o.PaymentStatus
	m.OrderStatus = o.OrderStatus
	m.ShippingStatus = o.ShippingStatus
	m.ShippingMethodSystemName = o.ShippingMethodSystemName
	m.BillingAddress.FromDomain(o.BillingAddress)
	m.HasShippingAddress = o.ShippingAddress != nil
	m.ShippingAddress.FromDomain(o.ShippingAddress)
	m.OrderTotal = o.OrderTotal
	m.CreatedAt = o.CreatedAt
	m.UpdatedAt = o.UpdatedAt
	m.Items = make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		m.Items[i] = *OrderItemModelFromDomain(&item)
	}
	m.Shipments = make([]ShipmentModel, len(o.Shipments))
	for i, shipment := range o.Shipments {
		m.Shipments[i] = *ShipmentModelFromDomain(&shipment)
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(o *ordering.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderItemModel is the persistence model for the OrderItem entity.
type OrderItemModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID          uuid.UUID       `gorm:"type:uuid;not null"`
	Sku                string          `gorm:"type:varchar(100);not null;index"`
	Quantity           int             `gorm:"not null"`
	PriceExclTax       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ProviderSubClassID int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem entity.
func (m *OrderItemModel) ToDomain() *ordering.OrderItem {
	return &ordering.OrderItem{
		ID:                 m.ID,
		OrderID:            m.OrderID,
		ProductID:          m.ProductID,
		Sku:                m.Sku,
		Quantity:           m.Quantity,
		PriceExclTax:       m.PriceExclTax,
		ProviderSubClassID: m.ProviderSubClassID,
	}
}

// OrderItemModelFromDomain creates a new persistence model from a domain OrderItem entity.
func OrderItemModelFromDomain(i *ordering.OrderItem) *OrderItemModel {
	return &OrderItemModel{
		ID:                 i.ID,
		OrderID:            i.OrderID,
		ProductID:          i.ProductID,
		Sku:                i.Sku,
		Quantity:           i.Quantity,
		PriceExclTax:       i.PriceExclTax,
		ProviderSubClassID: i.ProviderSubClassID,
	}
}

// ShipmentModel is the persistence model for the Shipment entity.
type ShipmentModel struct {
	ID             uuid.UUID           `gorm:"type:uuid;primary_key"`
	OrderID        uuid.UUID           `gorm:"type:uuid;not null;index"`
	TrackingNumber string              `gorm:"type:varchar(100);not null;index"`
	TotalWeight    decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	AdminComment   string              `gorm:"type:text"`
	Items          []ShipmentItemModel `gorm:"foreignKey:ShipmentID;references:ID"`
	CreatedAt      time.Time           `gorm:"not null"`
	ShippedAt      *time.Time          `gorm:"index"`
	DeliveredAt    *time.Time
}

// TableName returns the table name for GORM
func (ShipmentModel) TableName() string {
	return "shipments"
}

// ToDomain converts the persistence model to a domain Shipment entity.
func (m *ShipmentModel) ToDomain() *ordering.Shipment {
	shipment := &ordering.Shipment{
		ID:             m.ID,
		OrderID:        m.OrderID,
		TrackingNumber: m.TrackingNumber,
		TotalWeight:    m.TotalWeight,
		AdminComment:   m.AdminComment,
		CreatedAt:      m.CreatedAt,
		ShippedAt:      m.ShippedAt,
		DeliveredAt:    m.DeliveredAt,
		Items:          make([]ordering.ShipmentItem, len(m.Items)),
	}
	for i, item := range m.Items {
		shipment.Items[i] = ordering.ShipmentItem{
			ID:          item.ID,
			ShipmentID:  item.ShipmentID,
			OrderItemID: item.OrderItemID,
			Quantity:    item.Quantity,
		}
	}
	return shipment
}

// FromDomain populates the persistence model from a domain Shipment entity.
func (m *ShipmentModel) FromDomain(s *ordering.Shipment) {
	m.ID = s.ID
	m.OrderID = s.OrderID
	m.TrackingNumber = s.TrackingNumber
	m.TotalWeight = s.TotalWeight
	m.AdminComment = s.AdminComment
	m.CreatedAt = s.CreatedAt
	m.ShippedAt = s.ShippedAt
	m.DeliveredAt = s.DeliveredAt
	m.Items = make([]ShipmentItemModel, len(s.Items))
	for i, item := range s.Items {
		m.Items[i] = ShipmentItemModel{
			ID:          item.ID,
			ShipmentID:  item.ShipmentID,
			OrderItemID: item.OrderItemID,
			Quantity:    item.Quantity,
		}
	}
}

// ShipmentModelFromDomain creates a new persistence model from a domain Shipment entity.
func ShipmentModelFromDomain(s *ordering.Shipment) *ShipmentModel {
	m := &ShipmentModel{}
	m.FromDomain(s)
	return m
}

// ShipmentItemModel is the persistence model for the ShipmentItem entity.
type ShipmentItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderItemID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity    int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ShipmentItemModel) TableName() string {
	return "shipment_items"
}

// StoreModel is the persistence model for the Store entity.
type StoreModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	Name               string    `gorm:"type:varchar(200);not null"`
	ProviderCustomerID string    `gorm:"type:varchar(100)"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (StoreModel) TableName() string {
	return "stores"
}

// ToDomain converts the persistence model to a domain Store entity.
func (m *StoreModel) ToDomain() *ordering.Store {
	return &ordering.Store{
		ID:                 m.ID,
		Name:               m.Name,
		ProviderCustomerID: m.ProviderCustomerID,
	}
}

// StoreModelFromDomain creates a new persistence model from a domain Store entity.
func StoreModelFromDomain(s *ordering.Store) *StoreModel {
	return &StoreModel{
		ID:                 s.ID,
		Name:               s.Name,
		ProviderCustomerID: s.ProviderCustomerID,
	}
}
