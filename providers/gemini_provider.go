package providers

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	domainAI "github.com/rleclezio/digital-twin/domains/ai"
	domainChat "github.com/rleclezio/digital-twin/domains/chat"
)

// GeminiProvider is the adapter for the Google Gemini API
type GeminiProvider struct {
	apiKey string
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(apiKey string) *GeminiProvider {
	return &GeminiProvider{apiKey: apiKey}
}

// Chat implements the AIProvider interface for Gemini
func (p *GeminiProvider) Chat(ctx context.Context, req domainAI.ChatRequest) (domainAI.ChatResponse, error) {
	if p.apiKey == "" {
		return domainAI.ChatResponse{}, fmt.Errorf("gemini provider has no API key")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return domainAI.ChatResponse{}, err
	}

	model := req.Model
	if model == "" {
		model = domainAI.DefaultGeminiModel
	}

	genConfig := &genai.GenerateContentConfig{}
	if req.SystemPrompt != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, "")
	}
	if req.MaxTokens > 0 {
		genConfig.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Temperature > 0 {
		genConfig.Temperature = genai.Ptr(float32(req.Temperature))
	}

	var contents []*genai.Content
	for _, t := range req.History {
		var role genai.Role = genai.RoleUser
		if t.Role == domainChat.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Content, role))
	}
	if req.UserText != "" {
		contents = append(contents, genai.NewContentFromText(req.UserText, genai.RoleUser))
	}

	result, err := client.Models.GenerateContent(ctx, model, contents, genConfig)
	if err != nil {
		return domainAI.ChatResponse{}, err
	}

	if result == nil || len(result.Candidates) == 0 {
		return domainAI.ChatResponse{}, fmt.Errorf("no response from gemini")
	}

	// Extract text manually from the parts (more robust than result.Text())
	var fullText string
	if result.Candidates[0].Content != nil {
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				fullText += part.Text
			}
		}
	}

	logrus.WithField("model", model).Debug("[GEMINI] Chat completed")

	return domainAI.ChatResponse{Text: fullText}, nil
}
