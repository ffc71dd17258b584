package catalog

import (
	"context"
	"fmt"

	"github.com/chat-api/modelcatalog/pkg/models"
)

// GetModelCapabilities returns the capability map for a (provider, model)
// pair. Capability keys and values are service-defined and passed through
// verbatim.
func (c *Client) GetModelCapabilities(ctx context.Context, provider, model string) (models.ModelCapabilities, error) {
	if provider == "" {
		return nil, fmt.Errorf("provider is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}

	var caps models.ModelCapabilities
	if err := c.getJSON(ctx, fmt.Sprintf("/models/%s/%s/capabilities", provider, model), &caps); err != nil {
		return nil, err
	}
	return caps, nil
}
