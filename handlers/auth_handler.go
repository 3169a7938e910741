package handlers

import (
	"net/http"

	"github.com/Dosada05/debate-arena/middleware"
)

type AuthHandler struct {
	auth *middleware.SessionAuth
}

func NewAuthHandler(auth *middleware.SessionAuth) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// CreateSessionHandler handles POST /session. It mints an anonymous
// session token the client presents on profile-scoped requests.
func (h *AuthHandler) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	userID, token, err := h.auth.IssueSession()
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{
		"user_id": userID,
		"token":   token,
	}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
