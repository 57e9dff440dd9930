package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"cpd-events-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestHubDropsStalledClientWithoutPanic(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	userID := uuid.New()
	stalled := &Client{Hub: hub, UserID: userID, Send: make(chan []byte)}
	hub.register <- stalled

	hub.Send(userID, model.Notification{ID: uuid.New(), UserID: userID, Message: "first"})

	// Run removes the client and closes its Send channel exactly once.
	require.Eventually(t, func() bool {
		select {
		case _, open := <-stalled.Send:
			return !open
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond, "stalled client was not dropped")

	hub.mu.RLock()
	_, stillRegistered := hub.clients[userID]
	hub.mu.RUnlock()
	assert.False(t, stillRegistered)

	// A second send to the same user must be a no-op, not a repeat close.
	assert.NotPanics(t, func() {
		hub.Send(userID, model.Notification{ID: uuid.New(), UserID: userID, Message: "second"})
	})
}

func TestHubBroadcastReturnsWithStalledClients(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	stalledA := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte)}
	stalledB := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte)}
	healthy := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 8)}
	hub.register <- stalledA
	hub.register <- stalledB
	hub.register <- healthy

	done := make(chan struct{})
	go func() {
		hub.Broadcast(model.Notification{ID: uuid.New(), Message: "maintenance window"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast did not return while stalled clients were connected")
	}

	select {
	case msg := <-healthy.Send:
		var envelope struct {
			Type string `json:"type"`
		}
		require.NoError(t, json.Unmarshal(msg, &envelope))
		assert.Equal(t, "notification", envelope.Type)
	case <-time.After(time.Second):
		t.Fatal("healthy client did not receive the broadcast")
	}
}
