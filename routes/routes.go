package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Dosada05/debate-arena/handlers"
	"github.com/Dosada05/debate-arena/middleware"
)

func SetupRoutes(
	router *chi.Mux,
	auth *middleware.SessionAuth,
	authHandler *handlers.AuthHandler,
	tournamentHandler *handlers.TournamentHandler,
	debateHandler *handlers.DebateHandler,
	roomHandler *handlers.RoomHandler,
	learningHandler *handlers.LearningHandler,
	wsHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(auth.Authenticate)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	router.Post("/session", authHandler.CreateSessionHandler)

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", tournamentHandler.ListHandler)
		r.Post("/", tournamentHandler.CreateHandler)
		r.Get("/stats", tournamentHandler.StatsHandler)
		r.Get("/judgments", tournamentHandler.JudgmentsHandler)
		r.Get("/{tournamentID}", tournamentHandler.GetByIDHandler)
		r.Post("/{tournamentID}/join", tournamentHandler.JoinHandler)
		r.Post("/{tournamentID}/start", tournamentHandler.StartHandler)
		r.Get("/{tournamentID}/leaderboard", tournamentHandler.LeaderboardHandler)
		r.Post("/{tournamentID}/matches/{matchID}/result", tournamentHandler.SubmitResultHandler)
		r.Post("/{tournamentID}/matches/{matchID}/judge", tournamentHandler.JudgeMatchHandler)
	})

	router.Get("/leaderboard", tournamentHandler.GlobalLeaderboardHandler)

	router.Route("/debates", func(r chi.Router) {
		r.Post("/", debateHandler.StartHandler)
		r.Get("/{sessionID}", debateHandler.GetHandler)
		r.Post("/{sessionID}/speech", debateHandler.SubmitSpeechHandler)
		r.Post("/{sessionID}/poi", debateHandler.SubmitPOIHandler)
		r.Post("/{sessionID}/end", debateHandler.EndHandler)
	})

	router.Route("/rooms", func(r chi.Router) {
		r.Get("/", roomHandler.ListHandler)
		r.Post("/", roomHandler.CreateHandler)
		r.Get("/{code}", roomHandler.GetHandler)
		r.Post("/{code}/join", roomHandler.JoinHandler)
		r.Post("/{code}/leave", roomHandler.LeaveHandler)
		r.Post("/{code}/chat", roomHandler.ChatHandler)
		r.Post("/{code}/timer", roomHandler.TimerHandler)
		r.Post("/{code}/start", roomHandler.StartDebateHandler)
	})

	router.Route("/lessons", func(r chi.Router) {
		r.Get("/", learningHandler.ListLessonsHandler)
		r.Get("/{lessonID}", learningHandler.GetLessonHandler)
		r.Post("/{lessonID}/complete", learningHandler.CompleteLessonHandler)
	})

	router.Get("/formats", learningHandler.FormatsHandler)
	router.Get("/achievements", learningHandler.AchievementsHandler)
	router.Get("/profile", learningHandler.ProfileHandler)
	router.Get("/analytics", learningHandler.AnalyticsHandler)

	router.Get("/ws/tournaments/{tournamentID}", wsHandler.ServeTournament)
	router.Get("/ws/rooms/{code}", wsHandler.ServeRoom)
}
