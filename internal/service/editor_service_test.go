package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cpd-events-be/internal/pkg/serverutils"
	"cpd-events-be/internal/repository/memory"
	"cpd-events-be/pkg/layout"
	"cpd-events-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBusySessionService wires only the session store; the busy gates reject
// before any repository, cache or publisher is touched.
func newBusySessionService(t *testing.T) (*editorService, *store.EditorSession, uuid.UUID) {
	t.Helper()

	sessions := memory.NewSessionRepository(time.Minute, time.Minute)
	userId := uuid.New()

	editor := layout.NewEditor(nil)
	editor.Initialize(nil, 842, 595, 1.0)

	session := store.NewEditorSession(userId, uuid.New(), editor)
	sessions.Save(session)

	return &editorService{sessions: sessions}, session, userId
}

func TestPreviewRejectsConcurrentGeneration(t *testing.T) {
	svc, session, userId := newBusySessionService(t)
	session.PreviewBusy = true

	resp, err := svc.Preview(context.Background(), userId, session.ID)

	assert.Nil(t, resp)
	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, fiber.StatusConflict, appErr.Code)

	// The rejected call must leave the in-flight marker untouched.
	assert.True(t, session.PreviewBusy)
	assert.False(t, session.SaveBusy)
}

func TestSaveRejectsConcurrentSave(t *testing.T) {
	svc, session, userId := newBusySessionService(t)
	session.SaveBusy = true

	resp, err := svc.Save(context.Background(), userId, session.ID)

	assert.Nil(t, resp)
	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, fiber.StatusConflict, appErr.Code)

	assert.True(t, session.SaveBusy)
	assert.False(t, session.PreviewBusy)
}
