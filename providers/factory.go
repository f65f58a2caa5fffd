package providers

import (
	"fmt"

	"github.com/rleclezio/digital-twin/core/config"
	domainAI "github.com/rleclezio/digital-twin/domains/ai"
)

// NewFromConfig returns the provider adapter selected by AI_PROVIDER,
// wired with its API key.
func NewFromConfig(cfg *config.Config) (domainAI.AIProvider, error) {
	switch domainAI.Provider(cfg.AI.Provider) {
	case domainAI.ProviderOpenAI, "":
		return NewOpenAIProvider(cfg.APIKeys.OpenAI), nil
	case domainAI.ProviderGemini:
		return NewGeminiProvider(cfg.APIKeys.Gemini), nil
	case domainAI.ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKeys.Anthropic), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.AI.Provider)
	}
}
