package memory

import (
	"time"

	"cpd-events-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository creates the in-memory editor session store.
// Sessions idle longer than ttl are purged on the sweep interval.
func NewSessionRepository(ttl, sweep time.Duration) *SessionRepository {
	return &SessionRepository{
		cache: cache.New(ttl, sweep),
	}
}

func (r *SessionRepository) Save(session *store.EditorSession) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

// Touch resets the expiration clock on every editor interaction.
func (r *SessionRepository) Touch(sessionID string) {
	if x, found := r.cache.Get(sessionID); found {
		r.cache.Set(sessionID, x, cache.DefaultExpiration)
	}
}

func (r *SessionRepository) Get(sessionID string) (*store.EditorSession, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.EditorSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
