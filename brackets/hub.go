package brackets

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event types pushed to spectators.
const (
	EventBracketUpdated = "BRACKET_UPDATED"
	EventMatchCompleted = "MATCH_COMPLETED"
	EventTournamentDone = "TOURNAMENT_COMPLETED"
	EventRoomUpdated    = "ROOM_UPDATED"
	EventChatMessage    = "CHAT_MESSAGE"
	EventTimerUpdated   = "TIMER_UPDATED"
)

type Event struct {
	Type    string      `json:"type"`
	Channel string      `json:"channel,omitempty"`
	Payload interface{} `json:"payload"`
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Client is one websocket subscriber pinned to a channel (a tournament
// ID or room code).
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	channel string

	mu     sync.Mutex
	closed bool
}

func NewClient(h *Hub, conn *websocket.Conn, channel string) *Client {
	return &Client{
		hub:     h,
		conn:    conn,
		send:    make(chan []byte, 16),
		channel: channel,
	}
}

// Hub fans events out to channel subscribers. Registration and teardown
// go through the Run loop; Publish may be called from any goroutine.
type Hub struct {
	register   chan *Client
	unregister chan *Client

	mu       sync.RWMutex
	channels map[string]map[*Client]bool

	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		channels:   make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.channels[c.channel] == nil {
				h.channels[c.channel] = make(map[*Client]bool)
			}
			h.channels[c.channel][c] = true
			h.mu.Unlock()
			h.logger.Debug("websocket client registered", slog.String("channel", c.channel))

		case c := <-h.unregister:
			h.mu.Lock()
			if subs, ok := h.channels[c.channel]; ok && subs[c] {
				delete(subs, c)
				if len(subs) == 0 {
					delete(h.channels, c.channel)
				}
				c.closeSend()
			}
			h.mu.Unlock()
			h.logger.Debug("websocket client unregistered", slog.String("channel", c.channel))
		}
	}
}

func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Publish sends an event to every subscriber of the channel. Slow
// clients are skipped rather than blocking the publisher.
func (h *Hub) Publish(channel, eventType string, payload interface{}) {
	data, err := json.Marshal(Event{Type: eventType, Channel: channel, Payload: payload})
	if err != nil {
		h.logger.Error("failed to marshal websocket event", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.channels[channel] {
		c.mu.Lock()
		if !c.closed {
			select {
			case c.send <- data:
			default:
			}
		}
		c.mu.Unlock()
	}
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		close(c.send)
		c.closed = true
	}
}

// ReadPump drains inbound frames until the peer disconnects. Incoming
// messages are ignored; the socket is push-only.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Debug("websocket read error", slog.Any("error", err))
			}
			return
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
