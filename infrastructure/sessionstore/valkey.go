package sessionstore

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	domainChat "github.com/rleclezio/digital-twin/domains/chat"
	domainSession "github.com/rleclezio/digital-twin/domains/session"
	"github.com/rleclezio/digital-twin/infrastructure/valkey"
)

// ValkeyStore keeps session histories in an external Valkey instance so
// several replicas can share conversation state. Histories are stored as one
// JSON value per session; concurrent appends to the same session remain
// last-write-wins, matching the in-memory semantics.
type ValkeyStore struct {
	client *valkey.Client
}

func NewValkeyStore(client *valkey.Client) *ValkeyStore {
	return &ValkeyStore{client: client}
}

func (s *ValkeyStore) key(id string) string {
	return s.client.Key("session", id)
}

func (s *ValkeyStore) GetOrCreate(ctx context.Context, id string) (string, []domainChat.Turn, error) {
	if id == "" {
		return uuid.NewString(), nil, nil
	}

	inner := s.client.Inner()
	raw, err := inner.Do(ctx, inner.B().Get().Key(s.key(id)).Build()).AsBytes()
	if err != nil {
		if valkey.IsNil(err) {
			return id, nil, nil
		}
		return "", nil, err
	}

	var history []domainChat.Turn
	if err := json.Unmarshal(raw, &history); err != nil {
		return "", nil, err
	}
	return id, history, nil
}

func (s *ValkeyStore) Append(ctx context.Context, id string, user, assistant domainChat.Turn) error {
	_, history, err := s.GetOrCreate(ctx, id)
	if err != nil {
		return err
	}

	history = append(history, user, assistant)
	if len(history) > domainSession.MaxTurns {
		history = history[len(history)-domainSession.MaxTurns:]
	}

	data, err := json.Marshal(history)
	if err != nil {
		return err
	}

	inner := s.client.Inner()
	return inner.Do(ctx, inner.B().Set().Key(s.key(id)).Value(string(data)).Build()).Error()
}
