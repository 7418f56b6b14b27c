package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 1024
	sendBuffer     = 256
)

// Conn is the websocket surface the hub needs; *websocket.Conn
// satisfies it and tests inject fakes.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(string) error)
	Close() error
}

type client struct {
	conn   Conn
	send   chan []byte
	userID int64 // 0 until the connection joins a room
}

// clientMessage is what connected clients send upward. Only join is
// understood; everything else is ignored.
type clientMessage struct {
	Event  string `json:"event"`
	UserID int64  `json:"user_id"`
}

// envelope is the outbound wire format.
type envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub tracks which live connections belong to which user room and
// fans events out to them. Membership is claimed by the client's join
// message and dies with the connection; nothing is queued for absent
// rooms.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[int64]map[*client]struct{}
	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		rooms:  make(map[int64]map[*client]struct{}),
		logger: logger,
	}
}

// Handler upgrades HTTP requests to websocket connections and serves
// them until disconnect.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		h.Serve(conn)
	})
}

// Upgrade gate for the /ws route.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Serve owns the connection: it starts the write pump and blocks on
// the read pump until the peer goes away.
func (h *Hub) Serve(conn Conn) {
	c := &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.leave(c)
		close(c.send)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket read error", zap.Error(err))
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			h.logger.Debug("ignoring malformed client message", zap.Error(err))
			continue
		}

		if msg.Event == "join" {
			h.handleJoin(c, msg.UserID)
		}
	}
}

// handleJoin trusts the claimed user id; there is no auth handshake at
// this layer yet. A second join moves the connection to the new room.
func (h *Hub) handleJoin(c *client, userID int64) {
	if userID <= 0 {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if c.userID != 0 {
		h.removeLocked(c)
	}
	c.userID = userID
	room, ok := h.rooms[userID]
	if !ok {
		room = make(map[*client]struct{})
		h.rooms[userID] = room
	}
	room[c] = struct{}{}
}

func (h *Hub) leave(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	if c.userID == 0 {
		return
	}
	if room, ok := h.rooms[c.userID]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, c.userID)
		}
	}
	c.userID = 0
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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

// EmitToUser delivers the payload to every connection in the user's
// room. An empty room is a silent no-op, and a client whose send
// buffer is full is skipped rather than blocked on.
func (h *Hub) EmitToUser(userID int64, event string, payload interface{}) {
	data, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		h.logger.Error("failed to serialize realtime event",
			zap.String("event", event),
			zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[userID] {
		select {
		case c.send <- data:
		default:
			h.logger.Warn("dropping realtime event, slow consumer",
				zap.Int64("userID", userID),
				zap.String("event", event))
		}
	}
}
