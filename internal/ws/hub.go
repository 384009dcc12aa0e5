// Package ws streams workflow completion events to connected dashboard clients.
package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Hub tracks active WebSocket connections and broadcasts events to all of them.
type Hub struct {
	mu       sync.Mutex
	conns    map[*websocket.Conn]bool
	log      *logrus.Logger
	upgrader websocket.Upgrader
}

// NewHub initializes an empty hub.
func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]bool),
		log:   log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The dashboard is served from arbitrary origins in demo setups.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP lets the hub be mounted directly on a route.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.HandleWS(w, r)
}

// HandleWS upgrades the request and serves the connection until the client
// disconnects. Inbound text frames are acknowledged.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("WebSocket upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()
	h.log.Debugf("WebSocket client connected (%d active)", h.ClientCount())

	defer func() {
		h.remove(conn)
		conn.Close()
		h.log.Debug("WebSocket client disconnected")
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		h.log.Debugf("Received WebSocket message: %s", msg)

		ack := map[string]any{
			"type":      "acknowledgment",
			"message":   "Message received",
			"timestamp": time.Now().UTC(),
		}
		h.mu.Lock()
		err = conn.WriteJSON(ack)
		h.mu.Unlock()
		if err != nil {
			return
		}
	}
}

// Broadcast sends an event to every connected client. Connections that fail to
// write are dropped.
func (h *Hub) Broadcast(event map[string]any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(event); err != nil {
			delete(h.conns, conn)
			conn.Close()
		}
	}
}

// ClientCount reports the number of active connections.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}
