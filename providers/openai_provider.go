package providers

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/sirupsen/logrus"

	domainAI "github.com/rleclezio/digital-twin/domains/ai"
	domainChat "github.com/rleclezio/digital-twin/domains/chat"
)

// OpenAIProvider is the adapter for the OpenAI API
type OpenAIProvider struct {
	apiKey string
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{apiKey: apiKey}
}

// Chat implements the AIProvider interface for OpenAI
func (p *OpenAIProvider) Chat(ctx context.Context, req domainAI.ChatRequest) (domainAI.ChatResponse, error) {
	if p.apiKey == "" {
		return domainAI.ChatResponse{}, fmt.Errorf("openai provider has no API key")
	}

	client := openai.NewClient(
		option.WithAPIKey(p.apiKey),
	)

	model := req.Model
	if model == "" {
		model = domainAI.DefaultOpenAIModel
	}

	var messages []openai.ChatCompletionMessageParamUnion
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}

	for _, t := range req.History {
		if t.Role == domainChat.RoleAssistant {
			messages = append(messages, openai.AssistantMessage(t.Content))
		} else {
			messages = append(messages, openai.UserMessage(t.Content))
		}
	}

	if req.UserText != "" {
		messages = append(messages, openai.UserMessage(req.UserText))
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	completion, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return domainAI.ChatResponse{}, err
	}

	if len(completion.Choices) == 0 {
		return domainAI.ChatResponse{}, fmt.Errorf("no response from openai")
	}

	logrus.WithFields(logrus.Fields{
		"model":         model,
		"input_tokens":  completion.Usage.PromptTokens,
		"output_tokens": completion.Usage.CompletionTokens,
	}).Debug("[OPENAI] Chat completed")

	return domainAI.ChatResponse{Text: completion.Choices[0].Message.Content}, nil
}
