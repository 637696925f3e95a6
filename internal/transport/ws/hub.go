package ws

import (
	"context"
	"encoding/json"
	"sync"

	"chatfuture/internal/logging"

	"go.uber.org/zap"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans out per-user notifications to every open connection of that user
type Hub struct {
	conns map[string]map[*Connection]struct{} // userID -> connections

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *userMessage
	done       chan struct{}
	closeOnce  sync.Once

	logger *logging.Logger
}

// Connection represents a WebSocket connection
type Connection struct {
	UserID string
	Send   chan []byte
	Hub    *Hub
}

type userMessage struct {
	userID string
	data   []byte
}

// NewHub creates a new WebSocket hub and starts its loop
func NewHub(logger *logging.Logger) *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *userMessage, 256),
		done:       make(chan struct{}),
		logger:     logger.Named("ws"),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	ctx := context.Background()
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for userID, set := range h.conns {
				for conn := range set {
					close(conn.Send)
				}
				delete(h.conns, userID)
			}
			h.mu.Unlock()
			return

		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.UserID] == nil {
				h.conns[conn.UserID] = make(map[*Connection]struct{})
			}
			h.conns[conn.UserID][conn] = struct{}{}
			h.mu.Unlock()
			h.logger.Debug(ctx, "websocket connected", zap.String("user_id", conn.UserID))

		case conn := <-h.unregister:
			h.mu.Lock()
			if set, ok := h.conns[conn.UserID]; ok {
				if _, ok := set[conn]; ok {
					delete(set, conn)
					close(conn.Send)
					if len(set) == 0 {
						delete(h.conns, conn.UserID)
					}
					h.logger.Debug(ctx, "websocket disconnected", zap.String("user_id", conn.UserID))
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			for conn := range h.conns[msg.userID] {
				select {
				case conn.Send <- msg.data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// NotifyUser sends a message to all of a user's connections (implements service.Notifier)
func (h *Hub) NotifyUser(userID string, msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error(context.Background(), "failed to encode websocket payload", zap.String("type", msgType), zap.Error(err))
		return
	}
	envelope, _ := json.Marshal(&Message{Type: msgType, Payload: data})

	select {
	case h.broadcast <- &userMessage{userID: userID, data: envelope}:
	case <-h.done:
	}
}

// Connections returns how many connections a user has open
func (h *Hub) Connections(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID])
}

// Close stops the hub and closes every connection's send channel
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}
