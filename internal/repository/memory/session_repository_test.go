package memory

import (
	"testing"
	"time"

	"cpd-events-be/pkg/layout"
	"cpd-events-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestSession() *store.EditorSession {
	return store.NewEditorSession(uuid.New(), uuid.New(), layout.NewEditor(nil))
}

func TestSessionRepository_SaveAndGet(t *testing.T) {
	repo := NewSessionRepository(time.Minute, time.Minute)

	session := newTestSession()
	repo.Save(session)

	got, found := repo.Get(session.ID)
	assert.True(t, found)
	assert.Same(t, session, got)

	_, found = repo.Get(uuid.New().String())
	assert.False(t, found)
}

func TestSessionRepository_Delete(t *testing.T) {
	repo := NewSessionRepository(time.Minute, time.Minute)

	session := newTestSession()
	repo.Save(session)
	repo.Delete(session.ID)

	_, found := repo.Get(session.ID)
	assert.False(t, found)
}

func TestSessionRepository_Expiry(t *testing.T) {
	repo := NewSessionRepository(30*time.Millisecond, time.Minute)

	session := newTestSession()
	repo.Save(session)

	time.Sleep(60 * time.Millisecond)

	_, found := repo.Get(session.ID)
	assert.False(t, found)
}

func TestSessionRepository_TouchExtendsExpiry(t *testing.T) {
	repo := NewSessionRepository(80*time.Millisecond, time.Minute)

	session := newTestSession()
	repo.Save(session)

	// Keep touching past the original deadline
	for i := 0; i < 4; i++ {
		time.Sleep(40 * time.Millisecond)
		repo.Touch(session.ID)
	}

	_, found := repo.Get(session.ID)
	assert.True(t, found)

	// Touching an unknown id must not create an entry
	repo.Touch("missing")
	_, found = repo.Get("missing")
	assert.False(t, found)
}
