package sessionstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainChat "github.com/rleclezio/digital-twin/domains/chat"
	domainSession "github.com/rleclezio/digital-twin/domains/session"
)

func exchange(n int) (domainChat.Turn, domainChat.Turn) {
	return domainChat.Turn{Role: domainChat.RoleUser, Content: fmt.Sprintf("question %d", n)},
		domainChat.Turn{Role: domainChat.RoleAssistant, Content: fmt.Sprintf("answer %d", n)}
}

func TestMemoryStore_GeneratesUniqueIDs(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, history, err := store.GetOrCreate(ctx, "")
	require.NoError(t, err)
	assert.NotEmpty(t, first)
	assert.Empty(t, history)

	second, _, err := store.GetOrCreate(ctx, "")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestMemoryStore_UnknownIDIsFreshSession(t *testing.T) {
	store := NewMemoryStore()

	id, history, err := store.GetOrCreate(context.Background(), "visitor-supplied")
	require.NoError(t, err)
	assert.Equal(t, "visitor-supplied", id)
	assert.Empty(t, history)

	// Resolution alone must not materialize the session
	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Empty(t, store.sessions)
}

func TestMemoryStore_AppendKeepsOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		user, assistant := exchange(i)
		require.NoError(t, store.Append(ctx, "s1", user, assistant))
	}

	_, history, err := store.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 6)
	assert.Equal(t, "question 1", history[0].Content)
	assert.Equal(t, "answer 1", history[1].Content)
	assert.Equal(t, "answer 3", history[5].Content)
}

func TestMemoryStore_TruncatesToMaxTurns(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	// 15 exchanges = 30 turns; only the last 20 survive.
	for i := 1; i <= 15; i++ {
		user, assistant := exchange(i)
		require.NoError(t, store.Append(ctx, "s1", user, assistant))
	}

	_, history, err := store.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, domainSession.MaxTurns)

	// Oldest retained turn is the user half of exchange 6.
	assert.Equal(t, "question 6", history[0].Content)
	assert.Equal(t, "answer 15", history[len(history)-1].Content)
}

func TestMemoryStore_ReturnedHistoryIsACopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	user, assistant := exchange(1)
	require.NoError(t, store.Append(ctx, "s1", user, assistant))

	_, history, err := store.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	history[0].Content = "mutated"

	_, again, err := store.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "question 1", again[0].Content)
}

func TestMemoryStore_ConcurrentAppends(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			user, assistant := exchange(n)
			_ = store.Append(ctx, fmt.Sprintf("s%d", n%5), user, assistant)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		_, history, err := store.GetOrCreate(ctx, fmt.Sprintf("s%d", i))
		require.NoError(t, err)
		assert.Len(t, history, domainSession.MaxTurns)
	}
}
