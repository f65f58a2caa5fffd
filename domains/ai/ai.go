package ai

import (
	"context"

	"github.com/rleclezio/digital-twin/domains/chat"
)

type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderGemini    Provider = "gemini"
	ProviderAnthropic Provider = "anthropic"
)

const (
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultGeminiModel    = "gemini-2.0-flash"
	DefaultAnthropicModel = "claude-3-5-haiku-latest"
)

// ChatRequest is one fully assembled model input: the system prompt, prior
// turns in chronological order, the new user message, and generation
// parameters.
type ChatRequest struct {
	Model        string
	SystemPrompt string
	History      []chat.Turn
	UserText     string
	MaxTokens    int
	Temperature  float64
}

type ChatResponse struct {
	Text string
}

// AIProvider is the inference capability behind the twin. Failure modes are
// opaque errors; this layer performs no retries.
type AIProvider interface {
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
}
