package memory

import (
	"sync"

	"rso-assistant-be/pkg/genai"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps live conversations in process memory. Sessions
// never expire on their own; a restart drops them all, which matches the
// client contract (the caller owns the session id and can always start over).
type SessionRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// GetOrCreate returns the conversation for sessionID, creating it with
// create when absent. The lock covers the whole check-and-insert so two
// concurrent first messages for the same id share one conversation.
func (r *SessionRepository) GetOrCreate(sessionID string, create func() genai.Conversation) genai.Conversation {
	r.mu.Lock()
	defer r.mu.Unlock()

	if x, found := r.cache.Get(sessionID); found {
		return x.(genai.Conversation)
	}
	conv := create()
	r.cache.Set(sessionID, conv, cache.NoExpiration)
	return conv
}

func (r *SessionRepository) Get(sessionID string) (genai.Conversation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if x, found := r.cache.Get(sessionID); found {
		return x.(genai.Conversation), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Delete(sessionID)
}

func (r *SessionRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.ItemCount()
}
