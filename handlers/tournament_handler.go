package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/debate-arena/services"
)

type TournamentHandler struct {
	tournaments *services.TournamentService
	leaderboard *services.LeaderboardService
}

func NewTournamentHandler(ts *services.TournamentService, ls *services.LeaderboardService) *TournamentHandler {
	return &TournamentHandler{tournaments: ts, leaderboard: ls}
}

// CreateHandler handles POST /tournaments
func (h *TournamentHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name            string `json:"name"`
		Format          string `json:"format"`
		TournamentType  string `json:"tournament_type"`
		Description     string `json:"description"`
		SkillLevel      string `json:"skill_level"`
		MaxParticipants int    `json:"max_participants"`
		PrizePool       int    `json:"prize_pool"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournaments.CreateTournament(services.CreateTournamentInput{
		Name:            input.Name,
		Format:          input.Format,
		BracketKind:     input.TournamentType,
		Description:     input.Description,
		SkillLevel:      input.SkillLevel,
		MaxParticipants: input.MaxParticipants,
		PrizePool:       input.PrizePool,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListHandler handles GET /tournaments
func (h *TournamentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	tournaments := h.tournaments.ListTournaments()
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournaments": tournaments}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByIDHandler handles GET /tournaments/{tournamentID}
func (h *TournamentHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tournamentID")
	tournament, err := h.tournaments.GetTournament(id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// JoinHandler handles POST /tournaments/{tournamentID}/join
func (h *TournamentHandler) JoinHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tournamentID")

	var input struct {
		ParticipantName string `json:"participant_name"`
		SkillLevel      string `json:"skill_level"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournaments.JoinTournament(id, input.ParticipantName, input.SkillLevel)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// StartHandler handles POST /tournaments/{tournamentID}/start
func (h *TournamentHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tournamentID")
	tournament, err := h.tournaments.StartTournament(id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SubmitResultHandler handles POST /tournaments/{tournamentID}/matches/{matchID}/result
func (h *TournamentHandler) SubmitResultHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tournamentID")
	matchID := chi.URLParam(r, "matchID")

	var input struct {
		Winner        string         `json:"winner"`
		Scores        map[string]int `json:"scores"`
		Motion        string         `json:"motion"`
		JudgeFeedback string         `json:"judge_feedback"`
		Override      bool           `json:"override"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournaments.SubmitMatchResult(id, services.SubmitResultInput{
		MatchID:       matchID,
		Winner:        input.Winner,
		Scores:        input.Scores,
		Motion:        input.Motion,
		JudgeFeedback: input.JudgeFeedback,
		Override:      input.Override,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// JudgeMatchHandler handles POST /tournaments/{tournamentID}/matches/{matchID}/judge
func (h *TournamentHandler) JudgeMatchHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tournamentID")
	matchID := chi.URLParam(r, "matchID")

	var input struct {
		Speech1 string `json:"speech1"`
		Speech2 string `json:"speech2"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournaments.JudgeMatch(r.Context(), id, services.JudgeMatchInput{
		MatchID: matchID,
		Speech1: input.Speech1,
		Speech2: input.Speech2,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// LeaderboardHandler handles GET /tournaments/{tournamentID}/leaderboard
func (h *TournamentHandler) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "tournamentID")
	sortBy := r.URL.Query().Get("sort_by")

	entries, err := h.leaderboard.TournamentLeaderboard(id, sortBy)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"leaderboard": entries}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GlobalLeaderboardHandler handles GET /leaderboard
func (h *TournamentHandler) GlobalLeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	sortBy := r.URL.Query().Get("sort_by")
	entries := h.leaderboard.GlobalLeaderboard(sortBy)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"leaderboard": entries}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// StatsHandler handles GET /tournaments/stats
func (h *TournamentHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"stats": h.tournaments.Stats()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// JudgmentsHandler handles GET /tournaments/judgments
func (h *TournamentHandler) JudgmentsHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"judgments": h.tournaments.RecentJudgments()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
