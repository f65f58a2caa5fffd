package chat

import "context"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message exchanged in a conversation, tagged user or assistant.
// Turns are immutable once created.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ConverseRequest is the body the chat widget posts for one exchange.
// SessionID is optional; a fresh session is opened when it is absent.
type ConverseRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ConverseResponse carries the assistant reply and the session the caller
// should present on its next request.
type ConverseResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

type IChatUsecase interface {
	Converse(ctx context.Context, req ConverseRequest) (ConverseResponse, error)
}
