package store

import (
	"sync"

	"cpd-events-be/pkg/layout"

	"github.com/google/uuid"
)

// EditorSession holds the live editor state for one organizer working on
// one template. Handlers must hold the session lock for the duration of
// any read or mutation, mirroring the single-threaded interaction model
// of the browser editor.
type EditorSession struct {
	mu sync.Mutex

	ID            string
	UserID        uuid.UUID
	TemplateID    uuid.UUID
	Editor        *layout.Editor
	ViewportWidth float64

	// Busy flags guard the two slow operations. A request that finds the
	// flag set returns a conflict instead of queueing behind the first.
	PreviewBusy bool
	SaveBusy    bool
}

func NewEditorSession(userID, templateID uuid.UUID, editor *layout.Editor) *EditorSession {
	return &EditorSession{
		ID:         uuid.New().String(),
		UserID:     userID,
		TemplateID: templateID,
		Editor:     editor,
	}
}

func (s *EditorSession) Lock()   { s.mu.Lock() }
func (s *EditorSession) Unlock() { s.mu.Unlock() }
