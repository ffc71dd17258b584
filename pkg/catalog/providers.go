package catalog

import (
	"context"
	"fmt"

	"github.com/chat-api/modelcatalog/pkg/models"
)

// ListProviders returns the names of all providers known to the service
func (c *Client) ListProviders(ctx context.Context) ([]string, error) {
	var providers []string
	if err := c.getJSON(ctx, "/models", &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// GetProviderModels returns the raw model data for a single provider. The
// shape of the payload belongs to the service; it is returned uninterpreted.
// An unknown provider surfaces as a ServiceError with the service's status.
func (c *Client) GetProviderModels(ctx context.Context, provider string) (models.ProviderModels, error) {
	if provider == "" {
		return nil, fmt.Errorf("provider is required")
	}

	var result models.ProviderModels
	if err := c.getJSON(ctx, fmt.Sprintf("/models/%s", provider), &result); err != nil {
		return nil, err
	}
	return result, nil
}
