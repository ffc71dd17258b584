package models

// CategorizedCatalog maps provider names to their model families as returned
// by the categorizer's /models/categorized endpoint
type CategorizedCatalog map[string]ProviderCatalog

// ProviderCatalog maps family names (e.g. "GPT-4") to the model types they group
type ProviderCatalog map[string]FamilyCatalog

// FamilyCatalog maps type names (e.g. "chat") to their version entry
type FamilyCatalog map[string]ModelTypeEntry

// ModelTypeEntry holds the recommended model and any superseded or alternate
// versions for a single model type. Latest is a pointer so that an absent
// field can be told apart from an empty one.
type ModelTypeEntry struct {
	Latest        *string  `json:"latest,omitempty"`
	OtherVersions []string `json:"other_versions,omitempty"`
}

// HasLatest reports whether the entry carries a non-empty latest model
func (e ModelTypeEntry) HasLatest() bool {
	return e.Latest != nil && *e.Latest != ""
}

// HasOtherVersions reports whether the entry lists any alternate versions
func (e ModelTypeEntry) HasOtherVersions() bool {
	return len(e.OtherVersions) > 0
}

// ModelCapabilities is the capability map for a single (provider, model)
// pair. The service owns its shape; clients must not assume specific keys.
type ModelCapabilities map[string]any

// ProviderModels is the raw per-provider model data from /models/{provider},
// returned verbatim without interpretation
type ProviderModels map[string]any

// RegisterRequest is the payload for registering a model with the service
type RegisterRequest struct {
	Provider string         `json:"provider"`
	Model    string         `json:"model"`
	Metadata map[string]any `json:"metadata"`
}

// RegisterResponse is the service's registration acknowledgement, passed
// through uninterpreted
type RegisterResponse map[string]any
