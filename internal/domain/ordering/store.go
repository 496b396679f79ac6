package ordering

import "github.com/google/uuid"

// Store is a storefront. Each store is registered with the fulfillment
// provider under its own customer account; ProviderCustomerID is the scope
// every provider API call is made under.
type Store struct {
	// ID is the unique identifier of the store
	ID uuid.UUID
	// Name is the display name
	Name string
	// ProviderCustomerID is the customer account at the fulfillment provider.
	// Empty means the store has not been onboarded with the provider.
	ProviderCustomerID string
}

// HasProviderAccount returns true if the store is onboarded with the
// fulfillment provider
func (s *Store) HasProviderAccount() bool {
	return s.ProviderCustomerID != ""
}
