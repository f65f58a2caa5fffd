package session

import (
	"context"

	"github.com/rleclezio/digital-twin/domains/chat"
)

// MaxTurns caps the stored history per session at 20 turns (10 exchanges);
// the oldest turns are dropped first after each append.
const MaxTurns = 20

// ISessionStore exclusively owns all session histories. Implementations must
// be safe for concurrent use. Sessions are never explicitly destroyed; a
// client starts over by presenting a new identifier.
type ISessionStore interface {
	// GetOrCreate resolves id to its history. An unknown id is treated as a
	// fresh, empty session under that id; an empty id yields a generated
	// identifier. Resolution alone never persists anything.
	GetOrCreate(ctx context.Context, id string) (string, []chat.Turn, error)

	// Append stores one user/assistant exchange in order, then truncates the
	// history to the MaxTurns most recent turns.
	Append(ctx context.Context, id string, user, assistant chat.Turn) error
}
