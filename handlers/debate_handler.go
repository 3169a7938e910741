package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/debate-arena/middleware"
	"github.com/Dosada05/debate-arena/services"
)

type DebateHandler struct {
	debates *services.DebateService
}

func NewDebateHandler(ds *services.DebateService) *DebateHandler {
	return &DebateHandler{debates: ds}
}

// StartHandler handles POST /debates
func (h *DebateHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Motion       string `json:"motion"`
		Format       string `json:"format"`
		Difficulty   string `json:"difficulty"`
		UserPosition string `json:"user_position"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	session, err := h.debates.StartDebate(r.Context(), services.StartDebateInput{
		Motion:       input.Motion,
		Format:       input.Format,
		Difficulty:   input.Difficulty,
		UserPosition: input.UserPosition,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"session": session}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetHandler handles GET /debates/{sessionID}
func (h *DebateHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	session, err := h.debates.GetSession(chi.URLParam(r, "sessionID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"session": session}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SubmitSpeechHandler handles POST /debates/{sessionID}/speech
func (h *DebateHandler) SubmitSpeechHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Content string `json:"content"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.debates.SubmitSpeech(r.Context(), chi.URLParam(r, "sessionID"), input.Content)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"session": result.Session, "feedback": result.Feedback}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SubmitPOIHandler handles POST /debates/{sessionID}/poi
func (h *DebateHandler) SubmitPOIHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		POI string `json:"poi"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	record, err := h.debates.SubmitPOI(r.Context(), chi.URLParam(r, "sessionID"), input.POI)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"poi": record}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// EndHandler handles POST /debates/{sessionID}/end. The verdict is
// credited to the authenticated profile when a session token is present.
func (h *DebateHandler) EndHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	result, err := h.debates.EndSession(r.Context(), chi.URLParam(r, "sessionID"), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"result": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
