// Package realtime pushes item events to websocket clients, optionally
// sharing them between API instances through Redis.
package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"compatron/internal/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 16
)

// Logger defines minimal logging interface required by the hub.
type Logger interface {
	Infof(string, ...interface{})
	Errorf(string, ...interface{})
}

type client struct {
	id     uuid.UUID
	userID int64
	conn   *websocket.Conn
	send   chan []byte
}

// Hub keeps the connected clients. All access to the client set happens in Run.
type Hub struct {
	logger   Logger
	upgrader websocket.Upgrader

	register   chan *client
	unregister chan *client
	events     chan models.Event
	done       chan struct{}

	clients map[uuid.UUID]*client
	count   atomic.Int64
}

func NewHub(logger Logger) *Hub {
	return &Hub{
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		register:   make(chan *client),
		unregister: make(chan *client),
		events:     make(chan models.Event, 64),
		done:       make(chan struct{}),
		clients:    make(map[uuid.UUID]*client),
	}
}

// Run serves registrations and fans events out until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for id, c := range h.clients {
				h.drop(id, c)
			}
			return

		case c := <-h.register:
			h.clients[c.id] = c
			h.count.Store(int64(len(h.clients)))
			h.infof("ws client %s connected (user=%d)", c.id, c.userID)

		case c := <-h.unregister:
			if cur, ok := h.clients[c.id]; ok && cur == c {
				h.drop(c.id, c)
				h.infof("ws client %s disconnected", c.id)
			}

		case ev := <-h.events:
			data, err := json.Marshal(ev)
			if err != nil {
				h.errorf("marshal %s event: %v", ev.Type, err)
				continue
			}
			for id, c := range h.clients {
				if !visibleTo(ev, c.userID) {
					continue
				}
				select {
				case c.send <- data:
				default:
					h.errorf("ws client %s is too slow, dropping", id)
					h.drop(id, c)
				}
			}
		}
	}
}

// Publish queues ev for every connected client allowed to see it.
func (h *Hub) Publish(ctx context.Context, ev models.Event) error {
	select {
	case h.events <- ev:
		return nil
	case <-h.done:
		return context.Canceled
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Broadcast is Publish without a caller deadline.
func (h *Hub) Broadcast(ev models.Event) {
	_ = h.Publish(context.Background(), ev)
}

// Clients reports the number of registered connections.
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// ServeWS upgrades the request and registers the connection for viewerID.
// Anonymous viewers pass 0 and only receive public events.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, viewerID int64) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.errorf("ws upgrade failed: %v", err)
		return
	}

	c := &client{id: uuid.New(), userID: viewerID, conn: conn, send: make(chan []byte, sendBuffer)}
	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go h.writeLoop(c)
	go h.readLoop(c)
}

func (h *Hub) drop(id uuid.UUID, c *client) {
	delete(h.clients, id)
	h.count.Store(int64(len(h.clients)))
	close(c.send)
}

func (h *Hub) leave(c *client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) writeLoop(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.leave(c)
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				h.leave(c)
				return
			}
		}
	}
}

func (h *Hub) readLoop(c *client) {
	defer h.leave(c)

	c.conn.SetReadLimit(4 << 10)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// clients only listen; incoming frames just keep the connection alive
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}

// visibleTo hides private item payloads from everyone but the owner.
func visibleTo(ev models.Event, viewerID int64) bool {
	if ev.Item == nil || !ev.Item.Private {
		return true
	}
	return ev.Item.OwnerID == viewerID
}

func (h *Hub) infof(format string, args ...interface{}) {
	if h.logger != nil {
		h.logger.Infof(format, args...)
	}
}

func (h *Hub) errorf(format string, args ...interface{}) {
	if h.logger != nil {
		h.logger.Errorf(format, args...)
	}
}
