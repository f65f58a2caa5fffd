package usecase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rleclezio/digital-twin/core/config"
	domainAI "github.com/rleclezio/digital-twin/domains/ai"
	domainChat "github.com/rleclezio/digital-twin/domains/chat"
	domainKnowledge "github.com/rleclezio/digital-twin/domains/knowledge"
	domainSession "github.com/rleclezio/digital-twin/domains/session"
	pkgError "github.com/rleclezio/digital-twin/pkg/error"
	"github.com/rleclezio/digital-twin/validations"
)

const fallbackReply = "Sorry, I could not generate a response."

type chatService struct {
	knowledge domainKnowledge.IKnowledgeUsecase
	sessions  domainSession.ISessionStore
	provider  domainAI.AIProvider
	ai        config.AIConfig
}

func NewChatService(
	knowledge domainKnowledge.IKnowledgeUsecase,
	sessions domainSession.ISessionStore,
	provider domainAI.AIProvider,
	ai config.AIConfig,
) domainChat.IChatUsecase {
	return &chatService{
		knowledge: knowledge,
		sessions:  sessions,
		provider:  provider,
		ai:        ai,
	}
}

// Converse runs one chat exchange: validate, resolve the session, brief the
// model with the system prompt and prior turns, then persist the exchange.
// The session is only mutated after a successful inference call.
func (s *chatService) Converse(ctx context.Context, req domainChat.ConverseRequest) (domainChat.ConverseResponse, error) {
	if err := validations.ValidateConverse(ctx, req); err != nil {
		return domainChat.ConverseResponse{}, err
	}

	sessionID, history, err := s.sessions.GetOrCreate(ctx, req.SessionID)
	if err != nil {
		return domainChat.ConverseResponse{}, err
	}

	base, ignored := s.knowledge.Load(ctx)
	if len(ignored) > 0 {
		logrus.WithField("ignored_files", len(ignored)).Debug("[CHAT] Knowledge loaded partially")
	}

	resp, err := s.provider.Chat(ctx, domainAI.ChatRequest{
		Model:        s.ai.Model,
		SystemPrompt: buildSystemPrompt(base, time.Now()),
		History:      history,
		UserText:     req.Message,
		MaxTokens:    s.ai.MaxTokens,
		Temperature:  s.ai.Temperature,
	})
	if err != nil {
		logrus.WithError(err).Error("[CHAT] Inference call failed")
		return domainChat.ConverseResponse{}, pkgError.InternalServerError(err.Error())
	}

	reply := resp.Text
	if reply == "" {
		reply = fallbackReply
	}

	userTurn := domainChat.Turn{Role: domainChat.RoleUser, Content: req.Message}
	assistantTurn := domainChat.Turn{Role: domainChat.RoleAssistant, Content: reply}
	if err := s.sessions.Append(ctx, sessionID, userTurn, assistantTurn); err != nil {
		logrus.WithError(err).Error("[CHAT] Failed to persist exchange")
		return domainChat.ConverseResponse{}, err
	}

	return domainChat.ConverseResponse{
		Response:  reply,
		SessionID: sessionID,
	}, nil
}
