// Package realtime pushes chat and notification events to browsers over websockets.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"sync"
	"time"

	"dcars/config"
	"dcars/internal/domain/service"
	"dcars/internal/errors"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/fx"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxInboundSize = 512
	sendBufferSize = 32
)

// ErrHubClosed is returned when a connection arrives after shutdown.
var ErrHubClosed = errors.New("realtime hub closed")

// Frame is the JSON envelope written to clients.
type Frame struct {
	Type   string    `json:"type"`
	Data   any       `json:"data"`
	SentAt time.Time `json:"sent_at"`
}

type client struct {
	userID uuid.UUID
	conn   *websocket.Conn
	send   chan []byte
	once   sync.Once
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.send)
	})
}

// Hub tracks live websocket connections per user.
type Hub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[uuid.UUID]map[*client]struct{}
	closed  bool
	wg      sync.WaitGroup
}

// NewHub creates a hub. Origins are checked against allowOrigins; an empty list or "*" allows any origin.
func NewHub(logger *slog.Logger, allowOrigins []string) *Hub {
	h := &Hub{
		logger:  logger,
		clients: make(map[uuid.UUID]map[*client]struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowOrigins),
	}

	return h
}

func originChecker(allowOrigins []string) func(r *http.Request) bool {
	if len(allowOrigins) == 0 || slices.Contains(allowOrigins, "*") {
		return func(*http.Request) bool { return true }
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if _, err := url.Parse(origin); err != nil {
			return false
		}

		return slices.Contains(allowOrigins, origin)
	}
}

// Params defines the dependencies of the fx provider.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New provides a Hub that closes every connection on shutdown.
func New(params Params) *Hub {
	hub := NewHub(params.Logger, params.Config.HTTP.AllowOrigins)
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return hub.Close(ctx)
		},
	})

	return hub
}

// NewRealtimeNotifier exposes the hub through the domain interface.
func NewRealtimeNotifier(hub *Hub) service.RealtimeNotifier {
	return hub
}

// Serve upgrades the request and pumps frames to the connection until it closes.
// It returns once the connection is registered; pumps run in the background.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, userID uuid.UUID) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return errors.Wrap(err, "websocket upgrade failed")
	}

	c := &client{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
	}

	if !h.register(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()

		return ErrHubClosed
	}

	h.wg.Add(2)
	go h.writePump(c)
	go h.readPump(c)

	h.logger.Debug("[Realtime] Client connected", slog.String("user_id", userID.String()))

	return nil
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}

	conns, ok := h.clients[c.userID]
	if !ok {
		conns = make(map[*client]struct{})
		h.clients[c.userID] = conns
	}
	conns[c] = struct{}{}

	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if conns, ok := h.clients[c.userID]; ok {
		if _, ok := conns[c]; ok {
			delete(conns, c)
			c.close()
		}
		if len(conns) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.mu.Unlock()
}

// readPump drains inbound frames so control frames are processed; clients do not send data.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
		h.wg.Done()
	}()

	c.conn.SetReadLimit(maxInboundSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("[Realtime] Unexpected close", slog.Any("error", err))
			}

			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
		h.wg.Done()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))

				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendToUser queues a frame for every connection of the user.
// Connections whose buffer is full are dropped instead of blocking the caller.
func (h *Hub) SendToUser(userID uuid.UUID, eventType string, payload any) {
	msg, err := json.Marshal(Frame{Type: eventType, Data: payload, SentAt: time.Now().UTC()})
	if err != nil {
		h.logger.Error("[Realtime] Failed to encode frame", slog.String("type", eventType), slog.Any("error", err))

		return
	}

	// Channels are only closed under the write lock, so sending under the read lock is safe.
	var slow []*client
	h.mu.RLock()
	for c := range h.clients[userID] {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("[Realtime] Dropping slow client", slog.String("user_id", userID.String()))
		h.unregister(c)
	}
}

// ConnectionCount returns the number of live connections of a user.
func (h *Hub) ConnectionCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[userID])
}

// Close disconnects every client and waits for their pumps to exit.
func (h *Hub) Close(ctx context.Context) error {
	h.mu.Lock()
	h.closed = true
	for userID, conns := range h.clients {
		for c := range conns {
			c.close()
		}
		delete(h.clients, userID)
	}
	h.mu.Unlock()

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "realtime hub shutdown")
	}
}
