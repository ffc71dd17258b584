package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizedCatalogDecode(t *testing.T) {
	payload := `{
		"OpenAI": {
			"GPT-4": {
				"chat": {"latest": "gpt-4-turbo", "other_versions": ["gpt-4", "gpt-4-0314"]},
				"completion": {}
			}
		}
	}`

	var catalog CategorizedCatalog
	require.NoError(t, json.Unmarshal([]byte(payload), &catalog))

	chat := catalog["OpenAI"]["GPT-4"]["chat"]
	require.NotNil(t, chat.Latest)
	assert.Equal(t, "gpt-4-turbo", *chat.Latest)
	assert.Equal(t, []string{"gpt-4", "gpt-4-0314"}, chat.OtherVersions)

	completion := catalog["OpenAI"]["GPT-4"]["completion"]
	assert.Nil(t, completion.Latest)
	assert.Nil(t, completion.OtherVersions)
}

func TestModelTypeEntryPresenceChecks(t *testing.T) {
	latest := "gpt-4-turbo"
	empty := ""

	assert.True(t, ModelTypeEntry{Latest: &latest}.HasLatest())
	assert.False(t, ModelTypeEntry{Latest: &empty}.HasLatest())
	assert.False(t, ModelTypeEntry{}.HasLatest())

	assert.True(t, ModelTypeEntry{OtherVersions: []string{"gpt-4"}}.HasOtherVersions())
	assert.False(t, ModelTypeEntry{OtherVersions: []string{}}.HasOtherVersions())
	assert.False(t, ModelTypeEntry{}.HasOtherVersions())
}

func TestRegisterRequestWireFormat(t *testing.T) {
	req := RegisterRequest{
		Provider: "Anthropic",
		Model:    "claude-3",
		Metadata: map[string]any{"context_window": 200000},
	}

	encoded, err := json.Marshal(req)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, "Anthropic", decoded["provider"])
	assert.Equal(t, "claude-3", decoded["model"])
	assert.Equal(t, float64(200000), decoded["metadata"].(map[string]any)["context_window"])
}

func TestModelTypeEntryAbsentFieldsStayAbsent(t *testing.T) {
	encoded, err := json.Marshal(ModelTypeEntry{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(encoded))
}
