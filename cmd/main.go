package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/debate-arena/ai"
	"github.com/Dosada05/debate-arena/brackets"
	"github.com/Dosada05/debate-arena/config"
	"github.com/Dosada05/debate-arena/handlers"
	"github.com/Dosada05/debate-arena/middleware"
	"github.com/Dosada05/debate-arena/registry"
	api "github.com/Dosada05/debate-arena/routes"
	"github.com/Dosada05/debate-arena/services"
	"github.com/Dosada05/debate-arena/workers"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// The AI collaborator. Without an API key the platform runs on
	// deterministic fallbacks.
	var collab ai.Collaborator
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(ai.GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.GeminiTimeout,
			Logger:  logger,
		})
		if err != nil {
			logger.Error("failed to initialize gemini client", slog.Any("error", err))
			os.Exit(1)
		}
		collab = gemini
		logger.Info("gemini collaborator initialized", slog.String("model", cfg.GeminiModel))
	} else {
		collab = ai.NewOfflineCollaborator()
		logger.Warn("GEMINI_API_KEY not set, running with offline fallbacks")
	}

	reg := registry.New()

	wsHub := brackets.NewHub(logger)
	go wsHub.Run()
	logger.Info("websocket hub started")

	tournamentService := services.NewTournamentService(reg, collab, wsHub, logger)
	leaderboardService := services.NewLeaderboardService(reg)
	debateService := services.NewDebateService(reg, collab, logger)
	roomService := services.NewRoomService(reg, collab, wsHub, logger)
	learningService := services.NewLearningService(reg, collab, logger)
	logger.Info("services initialized")

	cleanup, err := workers.NewCleanupWorker(reg, roomService, logger)
	if err != nil {
		logger.Error("failed to initialize cleanup worker", slog.Any("error", err))
		os.Exit(1)
	}
	if err := cleanup.Start(); err != nil {
		logger.Error("failed to start cleanup worker", slog.Any("error", err))
		os.Exit(1)
	}
	defer cleanup.Stop()

	auth := middleware.NewSessionAuth(cfg.SessionSecret)

	authHandler := handlers.NewAuthHandler(auth)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService, leaderboardService)
	debateHandler := handlers.NewDebateHandler(debateService)
	roomHandler := handlers.NewRoomHandler(roomService)
	learningHandler := handlers.NewLearningHandler(learningService)
	wsHandler := handlers.NewWebSocketHandler(wsHub, logger)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		auth,
		authHandler,
		tournamentHandler,
		debateHandler,
		roomHandler,
		learningHandler,
		wsHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second, // AI judging can take a while
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
