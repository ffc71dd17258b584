package catalog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chat-api/modelcatalog/pkg/models"
)

func sampleCatalog() models.CategorizedCatalog {
	latest := "gpt-4-turbo"
	return models.CategorizedCatalog{
		"OpenAI": {
			"GPT-4": {
				"chat": {
					Latest:        &latest,
					OtherVersions: []string{"gpt-4", "gpt-4-0314"},
				},
			},
		},
	}
}

func TestRenderTree(t *testing.T) {
	want := []string{
		"Provider: OpenAI",
		"  Family: GPT-4",
		"    Type: chat",
		"      Latest: gpt-4-turbo",
		"      Other versions: gpt-4, gpt-4-0314",
	}

	assert.Equal(t, want, RenderTree(sampleCatalog(), 0))
}

func TestRenderTreeBaseIndent(t *testing.T) {
	lines := RenderTree(sampleCatalog(), 4)
	require.NotEmpty(t, lines)
	assert.Equal(t, "    Provider: OpenAI", lines[0])
	assert.Equal(t, "      Family: GPT-4", lines[1])
}

func TestRenderTreeOmitsAbsentFields(t *testing.T) {
	latest := "claude-3-opus"
	catalog := models.CategorizedCatalog{
		"Anthropic": {
			"Claude": {
				"chat":       {Latest: &latest},
				"completion": {},
			},
		},
	}

	want := []string{
		"Provider: Anthropic",
		"  Family: Claude",
		"    Type: chat",
		"      Latest: claude-3-opus",
		"    Type: completion",
	}

	assert.Equal(t, want, RenderTree(catalog, 0))
}

func TestRenderTreeEmptyLatestOmitted(t *testing.T) {
	empty := ""
	catalog := models.CategorizedCatalog{
		"OpenAI": {
			"GPT-4": {
				"chat": {Latest: &empty},
			},
		},
	}

	lines := RenderTree(catalog, 0)
	for _, line := range lines {
		assert.NotContains(t, line, "Latest:")
	}
}

func TestRenderTreeProvidersSorted(t *testing.T) {
	catalog := models.CategorizedCatalog{
		"OpenAI":    {},
		"Anthropic": {},
		"Gemini":    {},
	}

	want := []string{
		"Provider: Anthropic",
		"Provider: Gemini",
		"Provider: OpenAI",
	}

	assert.Equal(t, want, RenderTree(catalog, 0))
}

func TestRenderTreeDeterministic(t *testing.T) {
	catalog := sampleCatalog()

	first := RenderTree(catalog, 0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, RenderTree(catalog, 0))
	}
}

func TestRenderTreeJSONRoundTrip(t *testing.T) {
	catalog := sampleCatalog()

	encoded, err := json.Marshal(catalog)
	require.NoError(t, err)

	var decoded models.CategorizedCatalog
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	assert.Equal(t, RenderTree(catalog, 0), RenderTree(decoded, 0))
}

func TestFprintTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FprintTree(&buf, sampleCatalog(), 0))

	want := strings.Join([]string{
		"Provider: OpenAI",
		"  Family: GPT-4",
		"    Type: chat",
		"      Latest: gpt-4-turbo",
		"      Other versions: gpt-4, gpt-4-0314",
		"",
	}, "\n")

	assert.Equal(t, want, buf.String())
}
