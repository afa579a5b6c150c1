package realtime

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks connected admin panel sessions and fans entity-change events out
// to them so open list pages can refetch.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*wsConn
}

func NewHub() *Hub {
	return &Hub{sessions: make(map[string]*wsConn)}
}

// wsConn wraps a websocket connection with a write mutex to serialize writes.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Register adds a session connection. A session ID collision replaces (and
// closes) the previous connection.
func (h *Hub) Register(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.sessions[sessionID]; ok {
		old.conn.Close()
	}
	h.sessions[sessionID] = &wsConn{conn: conn}
}

func (h *Hub) Unregister(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.sessions[sessionID]; ok {
		c.conn.Close()
		delete(h.sessions, sessionID)
	}
}

// Broadcast sends a typed event payload to every connected session. Write
// failures are logged and do not interrupt delivery to other sessions.
func (h *Hub) Broadcast(event string, payload any) {
	h.mu.RLock()
	conns := make(map[string]*wsConn, len(h.sessions))
	for id, c := range h.sessions {
		conns[id] = c
	}
	h.mu.RUnlock()

	msg := map[string]any{"event": event, "data": payload}
	for id, wc := range conns {
		wc.mu.Lock()
		err := wc.conn.WriteJSON(msg)
		wc.mu.Unlock()
		if err != nil {
			log.Printf("ws: write to session %s failed for event %s: %v", id, event, err)
		}
	}
}

// Count reports the number of connected sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}
