package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chat-api/modelcatalog/pkg/models"
)

// RegisterModel registers a new model with the service and returns the
// service's acknowledgement payload uninterpreted
func (c *Client) RegisterModel(ctx context.Context, provider, model string, metadata map[string]any) (models.RegisterResponse, error) {
	if provider == "" {
		return nil, fmt.Errorf("provider is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}

	req := models.RegisterRequest{
		Provider: provider,
		Model:    model,
		Metadata: metadata,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/models/register", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var ack models.RegisterResponse
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return ack, nil
}
