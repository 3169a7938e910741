package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/debate-arena/services"
)

type RoomHandler struct {
	rooms *services.RoomService
}

func NewRoomHandler(rs *services.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rs}
}

// CreateHandler handles POST /rooms
func (h *RoomHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name            string `json:"name"`
		Format          string `json:"format"`
		SkillLevel      string `json:"skill_level"`
		MaxParticipants int    `json:"max_participants"`
		Creator         string `json:"creator"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	room, err := h.rooms.CreateRoom(services.CreateRoomInput{
		Name:            input.Name,
		Format:          input.Format,
		SkillLevel:      input.SkillLevel,
		MaxParticipants: input.MaxParticipants,
		Creator:         input.Creator,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"room": room}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListHandler handles GET /rooms
func (h *RoomHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	rooms := h.rooms.ListActiveRooms()
	if err := writeJSON(w, http.StatusOK, jsonResponse{"rooms": rooms}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetHandler handles GET /rooms/{code}
func (h *RoomHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	room, err := h.rooms.GetRoom(chi.URLParam(r, "code"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"room": room}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// JoinHandler handles POST /rooms/{code}/join
func (h *RoomHandler) JoinHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	room, err := h.rooms.JoinRoom(chi.URLParam(r, "code"), input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"room": room}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// LeaveHandler handles POST /rooms/{code}/leave
func (h *RoomHandler) LeaveHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.rooms.LeaveRoom(chi.URLParam(r, "code"), input.Name); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ChatHandler handles POST /rooms/{code}/chat
func (h *RoomHandler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Sender  string `json:"sender"`
		Message string `json:"message"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	msg, err := h.rooms.PostChatMessage(chi.URLParam(r, "code"), input.Sender, input.Message)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"message": msg}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// TimerHandler handles POST /rooms/{code}/timer
func (h *RoomHandler) TimerHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Action         string `json:"action"`
		CurrentSpeaker string `json:"current_speaker"`
		TimeRemaining  int    `json:"time_remaining"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := h.rooms.UpdateTimer(chi.URLParam(r, "code"), services.TimerInput{
		Action:         input.Action,
		CurrentSpeaker: input.CurrentSpeaker,
		TimeRemaining:  input.TimeRemaining,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"timer": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// StartDebateHandler handles POST /rooms/{code}/start
func (h *RoomHandler) StartDebateHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Motion string `json:"motion"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	room, err := h.rooms.StartRoomDebate(r.Context(), chi.URLParam(r, "code"), input.Motion)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"room": room}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
