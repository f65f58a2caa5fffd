package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rleclezio/digital-twin/core/config"
	domainAI "github.com/rleclezio/digital-twin/domains/ai"
)

func configWithProvider(name string) *config.Config {
	return &config.Config{
		AI: config.AIConfig{Provider: name},
		APIKeys: config.APIKeysConfig{
			OpenAI:    "test-openai",
			Gemini:    "test-gemini",
			Anthropic: "test-anthropic",
		},
	}
}

func TestNewFromConfig(t *testing.T) {
	cases := []struct {
		provider string
		want     any
	}{
		{provider: "openai", want: &OpenAIProvider{}},
		{provider: "", want: &OpenAIProvider{}},
		{provider: "gemini", want: &GeminiProvider{}},
		{provider: "anthropic", want: &AnthropicProvider{}},
	}

	for _, tc := range cases {
		t.Run("provider "+tc.provider, func(t *testing.T) {
			provider, err := NewFromConfig(configWithProvider(tc.provider))
			require.NoError(t, err)
			assert.IsType(t, tc.want, provider)
		})
	}
}

func TestNewFromConfig_UnknownProvider(t *testing.T) {
	_, err := NewFromConfig(configWithProvider("bard"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bard")
}

func TestProviders_RejectMissingAPIKey(t *testing.T) {
	req := domainAI.ChatRequest{UserText: "hello"}

	cases := map[string]domainAI.AIProvider{
		"openai":    NewOpenAIProvider(""),
		"gemini":    NewGeminiProvider(""),
		"anthropic": NewAnthropicProvider(""),
	}

	for name, provider := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := provider.Chat(context.Background(), req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "API key")
		})
	}
}
