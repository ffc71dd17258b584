package catalog

import (
	"context"
	"net/url"

	"github.com/chat-api/modelcatalog/pkg/models"
)

// GetCategorizedModels returns the full provider → family → type taxonomy.
// When includeExperimental is true the request carries experimental=true;
// when false the parameter is omitted entirely, since the service may treat
// an absent parameter differently from experimental=false.
func (c *Client) GetCategorizedModels(ctx context.Context, includeExperimental bool) (models.CategorizedCatalog, error) {
	endpoint := "/models/categorized"
	if includeExperimental {
		params := url.Values{}
		params.Set("experimental", "true")
		endpoint = endpoint + "?" + params.Encode()
	}

	var catalog models.CategorizedCatalog
	if err := c.getJSON(ctx, endpoint, &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}
