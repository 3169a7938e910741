package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/Dosada05/debate-arena/brackets"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The frontend is served from arbitrary dev origins; the socket
		// is push-only, so origin checks stay permissive.
		return true
	},
}

type WebSocketHandler struct {
	hub    *brackets.Hub
	logger *slog.Logger
}

func NewWebSocketHandler(hub *brackets.Hub, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, logger: logger}
}

// ServeTournament handles GET /ws/tournaments/{tournamentID}: the client
// subscribes to that tournament's bracket and judgment events.
func (h *WebSocketHandler) ServeTournament(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, chi.URLParam(r, "tournamentID"))
}

// ServeRoom handles GET /ws/rooms/{code}: room membership, chat, and
// timer events.
func (h *WebSocketHandler) ServeRoom(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, chi.URLParam(r, "code"))
}

func (h *WebSocketHandler) serve(w http.ResponseWriter, r *http.Request, channel string) {
	if channel == "" {
		http.Error(w, "missing channel identifier", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		h.logger.Warn("websocket upgrade failed",
			slog.String("channel", channel),
			slog.Any("error", err))
		return
	}

	client := brackets.NewClient(h.hub, conn, channel)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
