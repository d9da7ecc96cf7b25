package view

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/templui/studytracker/internal/model"
)

const writeWait = 10 * time.Second

// Client is one open page listening for render instructions.
type Client struct {
	ID   string
	conn *websocket.Conn
	mu   sync.Mutex // gorilla allows one concurrent writer per connection
}

func (c *Client) write(msgType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(msgType, data)
}

// Hub pushes render instructions as JSON to every connected page.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*Client)}
}

func (h *Hub) Register(conn *websocket.Conn) *Client {
	c := &Client{ID: uuid.New().String(), conn: conn}

	h.mu.Lock()
	h.clients[c.ID] = c
	h.mu.Unlock()

	slog.Debug("live view client connected", "client_id", c.ID)
	return c
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c.ID]
	delete(h.clients, c.ID)
	h.mu.Unlock()

	if ok {
		_ = c.conn.Close()
		slog.Debug("live view client disconnected", "client_id", c.ID)
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Ping keeps idle connections open through proxies.
func (h *Hub) Ping(c *Client) error {
	return c.write(websocket.PingMessage, nil)
}

// broadcast never fails the command: a dead client is dropped.
func (h *Hub) broadcast(in Instruction) error {
	msg, err := json.Marshal(in)
	if err != nil {
		return err
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		err := c.write(websocket.TextMessage, msg)
		if err != nil {
			slog.Warn("live view write failed", "error", err, "client_id", c.ID)
			h.Unregister(c)
		}
	}
	return nil
}

func (h *Hub) RenderAll(_ context.Context, subjects []model.Subject) error {
	return h.broadcast(renderAll(subjects))
}

func (h *Hub) RenderOne(_ context.Context, subject string, hoursStudied, goal model.Hours) error {
	return h.broadcast(renderOne(subject, hoursStudied, goal))
}

func (h *Hub) RemoveItem(_ context.Context, subject string) error {
	return h.broadcast(removeItem(subject))
}

func (h *Hub) Notify(_ context.Context, subject, message string) error {
	return h.broadcast(notify(subject, message))
}
