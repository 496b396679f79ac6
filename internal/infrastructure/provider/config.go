package provider

import "errors"

// Errors for provider client configuration
var (
	ErrConfigMissingBaseURL = errors.New("provider: base URL is required")
	ErrConfigMissingAPIKey  = errors.New("provider: API key is required")
)

// ClientConfig holds configuration for the fulfillment provider API client
type ClientConfig struct {
	// BaseURL is the root of the provider's REST API
	BaseURL string
	// APIKey authorizes requests; sent as a bearer token
	APIKey string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
	// PageSize is the default page size for listings
	PageSize int
}

// NewClientConfig creates a provider client configuration with defaults
func NewClientConfig(baseURL, apiKey string) *ClientConfig {
	return &ClientConfig{
		BaseURL:        baseURL,
		APIKey:         apiKey,
		TimeoutSeconds: 30,
		PageSize:       100,
	}
}

// Validate validates the provider client configuration
func (c *ClientConfig) Validate() error {
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	if c.APIKey == "" {
		return ErrConfigMissingAPIKey
	}
	return nil
}
