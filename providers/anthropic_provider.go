package providers

import (
	"context"
	"fmt"

	anthropic "github.com/liushuangls/go-anthropic/v2"
	"github.com/sirupsen/logrus"

	domainAI "github.com/rleclezio/digital-twin/domains/ai"
	domainChat "github.com/rleclezio/digital-twin/domains/chat"
)

// AnthropicProvider is the adapter for the Anthropic API
type AnthropicProvider struct {
	apiKey string
}

// NewAnthropicProvider creates a new Anthropic provider
func NewAnthropicProvider(apiKey string) *AnthropicProvider {
	return &AnthropicProvider{apiKey: apiKey}
}

// Chat implements the AIProvider interface for Anthropic
func (p *AnthropicProvider) Chat(ctx context.Context, req domainAI.ChatRequest) (domainAI.ChatResponse, error) {
	if p.apiKey == "" {
		return domainAI.ChatResponse{}, fmt.Errorf("anthropic provider has no API key")
	}

	client := anthropic.NewClient(p.apiKey)

	model := req.Model
	if model == "" {
		model = domainAI.DefaultAnthropicModel
	}

	var messages []anthropic.Message
	for _, t := range req.History {
		if t.Role == domainChat.RoleAssistant {
			messages = append(messages, anthropic.NewAssistantTextMessage(t.Content))
		} else {
			messages = append(messages, anthropic.NewUserTextMessage(t.Content))
		}
	}
	if req.UserText != "" {
		messages = append(messages, anthropic.NewUserTextMessage(req.UserText))
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 2000
	}

	mreq := anthropic.MessagesRequest{
		Model:     anthropic.Model(model),
		Messages:  messages,
		MaxTokens: maxTokens,
	}
	if req.SystemPrompt != "" {
		mreq.System = req.SystemPrompt
	}
	if req.Temperature > 0 {
		temperature := float32(req.Temperature)
		mreq.Temperature = &temperature
	}

	resp, err := client.CreateMessages(ctx, mreq)
	if err != nil {
		return domainAI.ChatResponse{}, err
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == anthropic.MessagesContentTypeText && block.Text != nil {
			text += *block.Text
		}
	}

	logrus.WithFields(logrus.Fields{
		"model":         model,
		"input_tokens":  resp.Usage.InputTokens,
		"output_tokens": resp.Usage.OutputTokens,
	}).Debug("[ANTHROPIC] Chat completed")

	return domainAI.ChatResponse{Text: text}, nil
}
