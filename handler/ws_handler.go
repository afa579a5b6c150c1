package api

import (
	"net/http"

	"github.com/abdhalim18/inventory-backend/realtime"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// WSHandler upgrades admin panel sessions to websocket connections on the
// event feed. Each open tab gets its own session on the hub.
type WSHandler struct {
	hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler { return &WSHandler{hub: hub} }

// AdminSocket upgrades to WS and registers the session until the peer goes away.
func (h *WSHandler) AdminSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		// auth middleware runs before this handler
		if c.GetString("user_id") == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "user_id missing in context"})
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		sessionID := uuid.NewString()
		h.hub.Register(sessionID, conn)
		// read loop: the panel sends nothing we act on; exit on close/error
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.Unregister(sessionID)
				break
			}
		}
	}
}
