package fulfillment

import (
	"github.com/google/uuid"

	"github.com/commerce/fulfillsync/internal/domain/ordering"
)

// Address is the provider's address representation. It is flat: region and
// country are carried as codes, and every field is required by the provider's
// API, so mapping fills gaps from the billing address.
type Address struct {
	FirstName                 string
	LastName                  string
	Email                     string
	PhoneNumber               string
	Address1                  string
	Address2                  string
	City                      string
	StateProvinceAbbreviation string
	CountryTwoLetterISOCode   string
	ZipPostalCode             string
	// OriginalAddressID ties the address back to the local customer
	OriginalAddressID uuid.UUID
}

// MapBillingAddress translates an order's billing address into the provider
// representation. The caller must have validated that the billing address and
// its region data are present.
func MapBillingAddress(order *ordering.Order) Address {
	billing := order.BillingAddress
	return Address{
		FirstName:                 billing.FirstName,
		LastName:                  billing.LastName,
		Email:                     billing.Email,
		PhoneNumber:               billing.PhoneNumber,
		Address1:                  billing.Address1,
		Address2:                  billing.Address2,
		City:                      billing.City,
		StateProvinceAbbreviation: billing.StateProvince.Abbreviation,
		CountryTwoLetterISOCode:   billing.Country.TwoLetterISOCode,
		ZipPostalCode:             billing.ZipPostalCode,
		OriginalAddressID:         order.CustomerID,
	}
}

// MapShippingAddress translates an order's shipping address into the provider
// representation, falling back to billing fields wherever the shipping address
// is absent or incomplete.
func MapShippingAddress(order *ordering.Order) Address {
	mapped := MapBillingAddress(order)
	shipping := order.ShippingAddress
	if shipping == nil {
		return mapped
	}

	if shipping.FirstName != "" {
		mapped.FirstName = shipping.FirstName
	}
	if shipping.LastName != "" {
		mapped.LastName = shipping.LastName
	}
	if shipping.Email != "" {
		mapped.Email = shipping.Email
	}
	if shipping.PhoneNumber != "" {
		mapped.PhoneNumber = shipping.PhoneNumber
	}
	if shipping.Address1 != "" {
		mapped.Address1 = shipping.Address1
		mapped.Address2 = shipping.Address2
	}
	if shipping.City != "" {
		mapped.City = shipping.City
	}
	if shipping.StateProvince != nil {
		mapped.StateProvinceAbbreviation = shipping.StateProvince.Abbreviation
	}
	if shipping.Country != nil {
		mapped.CountryTwoLetterISOCode = shipping.Country.TwoLetterISOCode
	}
	if shipping.ZipPostalCode != "" {
		mapped.ZipPostalCode = shipping.ZipPostalCode
	}
	return mapped
}
