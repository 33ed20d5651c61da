// Package conversation keeps the per-user message history the interpreter
// reads for pronoun resolution. The log is append-only and ordered; nothing
// is persisted across restarts.
package conversation

import (
	"sync"

	"homehub/internal/domain"
)

// DefaultUserID is used when a caller supplies no user identity.
const DefaultUserID = "default"

type Log struct {
	mu    sync.RWMutex
	turns map[string][]domain.ConversationTurn
}

func NewLog() *Log {
	return &Log{turns: make(map[string][]domain.ConversationTurn)}
}

func key(userID string) string {
	if userID == "" {
		return DefaultUserID
	}
	return userID
}

func (l *Log) Append(userID string, turn domain.ConversationTurn) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.turns[key(userID)] = append(l.turns[key(userID)], turn)
}

// Turns returns a copy of the user's history in chronological order.
func (l *Log) Turns(userID string) []domain.ConversationTurn {
	l.mu.RLock()
	defer l.mu.RUnlock()

	turns := l.turns[key(userID)]
	result := make([]domain.ConversationTurn, len(turns))
	copy(result, turns)
	return result
}

// Previous returns the turn immediately before the most recent one, from
// either sender. This is what "what were we just talking about" means here:
// exactly one turn back, never further.
func (l *Log) Previous(userID string) (domain.ConversationTurn, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	turns := l.turns[key(userID)]
	if len(turns) < 2 {
		return domain.ConversationTurn{}, false
	}
	return turns[len(turns)-2], true
}
