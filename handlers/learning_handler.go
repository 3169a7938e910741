package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/debate-arena/middleware"
	"github.com/Dosada05/debate-arena/services"
)

type LearningHandler struct {
	learning *services.LearningService
}

func NewLearningHandler(ls *services.LearningService) *LearningHandler {
	return &LearningHandler{learning: ls}
}

// ListLessonsHandler handles GET /lessons?level=
func (h *LearningHandler) ListLessonsHandler(w http.ResponseWriter, r *http.Request) {
	lessons := h.learning.Lessons(r.URL.Query().Get("level"))
	if err := writeJSON(w, http.StatusOK, jsonResponse{"lessons": lessons}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetLessonHandler handles GET /lessons/{lessonID}
func (h *LearningHandler) GetLessonHandler(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.learning.Lesson(chi.URLParam(r, "lessonID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"lesson": lesson}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CompleteLessonHandler handles POST /lessons/{lessonID}/complete
func (h *LearningHandler) CompleteLessonHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "a session token is required to complete lessons")
		return
	}

	var input struct {
		Answer string `json:"answer"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.learning.CompleteLesson(r.Context(), userID, chi.URLParam(r, "lessonID"), input.Answer)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"result": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ProfileHandler handles GET /profile
func (h *LearningHandler) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "a session token is required to view the profile")
		return
	}

	profile, err := h.learning.Profile(userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"profile": profile}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AnalyticsHandler handles GET /analytics
func (h *LearningHandler) AnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "a session token is required to view analytics")
		return
	}

	analytics, err := h.learning.Analytics(userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"analytics": analytics}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AchievementsHandler handles GET /achievements
func (h *LearningHandler) AchievementsHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"achievements": services.AllAchievements()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// FormatsHandler handles GET /formats
func (h *LearningHandler) FormatsHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"formats": services.ListFormats()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
