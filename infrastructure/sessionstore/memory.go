package sessionstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	domainChat "github.com/rleclezio/digital-twin/domains/chat"
	domainSession "github.com/rleclezio/digital-twin/domains/session"
)

// MemoryStore keeps session histories in process memory behind a mutex.
// Sessions materialize on first append, so a request that fails before the
// exchange is persisted leaves no trace in the map.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string][]domainChat.Turn
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]domainChat.Turn)}
}

func (s *MemoryStore) GetOrCreate(ctx context.Context, id string) (string, []domainChat.Turn, error) {
	if id == "" {
		return uuid.NewString(), nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.sessions[id]
	out := make([]domainChat.Turn, len(history))
	copy(out, history)
	return id, out, nil
}

func (s *MemoryStore) Append(ctx context.Context, id string, user, assistant domainChat.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.sessions[id], user, assistant)
	if len(history) > domainSession.MaxTurns {
		history = history[len(history)-domainSession.MaxTurns:]
	}
	s.sessions[id] = history
	return nil
}
