package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"cpd-events-be/internal/model"
	"cpd-events-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// clusterChannel is the Redis pub/sub channel that fans notifications out
// to every running instance. Each message names a target user id, or "*"
// for a broadcast.
const clusterChannel = "cluster_events"

// Hub tracks live websocket connections and delivers issuance progress
// notifications to organizers. It implements service.NotificationDelivery.
type Hub struct {
	// UserID -> open connections (an organizer may have several tabs).
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fan-out. Nil disables it.
	rdb *redis.Client

	// instanceID lets this hub skip its own cluster messages; local
	// delivery already happened before publishing.
	instanceID string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		instanceID: uuid.New().String(),
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.UserID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.UserID]) == 0 {
					delete(h.clients, client.UserID)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends a notification to every connected client.
func (h *Hub) Broadcast(notification model.Notification) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})

	h.deliverLocal(h.snapshotAll(), data)
	h.publishToCluster("*", data)
}

// Send delivers a notification to one user's connections, local and remote.
func (h *Hub) Send(userID uuid.UUID, notification model.Notification) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})

	h.deliverLocal(h.snapshotUser(userID), data)
	h.publishToCluster(userID.String(), data)
}

func (h *Hub) publishToCluster(target string, data []byte) {
	if h.rdb == nil {
		return
	}
	payload, _ := json.Marshal(map[string]interface{}{
		"origin":         h.instanceID,
		"target_user_id": target,
		"message":        json.RawMessage(data),
	})
	h.rdb.Publish(context.Background(), clusterChannel, payload)
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			Origin       string          `json:"origin"`
			TargetUserID string          `json:"target_user_id"`
			Message      json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if payload.Origin == h.instanceID {
			continue
		}

		if payload.TargetUserID == "*" {
			h.deliverLocal(h.snapshotAll(), payload.Message)
			continue
		}

		uid, err := uuid.Parse(payload.TargetUserID)
		if err != nil {
			continue
		}

		h.deliverLocal(h.snapshotUser(uid), payload.Message)
	}
}

func (h *Hub) snapshotAll() []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var all []*Client
	for _, clients := range h.clients {
		all = append(all, clients...)
	}
	return all
}

func (h *Hub) snapshotUser(userID uuid.UUID) []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]*Client(nil), h.clients[userID]...)
}

// deliverLocal pushes a message to each client. A client whose buffer is
// full is queued for unregister; Run closes its Send channel exactly once
// when it removes the client from the map. Callers must not hold the hub
// lock, unregister delivery blocks until Run picks it up.
func (h *Hub) deliverLocal(clients []*Client, message []byte) {
	for _, client := range clients {
		select {
		case client.Send <- message:
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"user_id": client.UserID})
			h.unregister <- client
		}
	}
}
