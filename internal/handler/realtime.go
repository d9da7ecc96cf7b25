package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/templui/studytracker/internal/view"
)

const pingInterval = 25 * time.Second

type RealtimeHandler struct {
	hub      *view.Hub
	upgrader websocket.Upgrader
}

func NewRealtimeHandler(hub *view.Hub) *RealtimeHandler {
	return &RealtimeHandler{
		hub: hub,
		// default CheckOrigin: same host only
		upgrader: websocket.Upgrader{},
	}
}

// Live upgrades to a websocket and streams render instructions until the
// page goes away. Incoming messages are ignored.
func (h *RealtimeHandler) Live(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Debug("websocket upgrade failed", "error", err)
		return
	}
	client := h.hub.Register(conn)

	done := make(chan struct{})
	defer close(done)

	go func() {
		t := time.NewTicker(pingInterval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := h.hub.Ping(client); err != nil {
					h.hub.Unregister(client)
					return
				}
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.hub.Unregister(client)
			return
		}
	}
}
