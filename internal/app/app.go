package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"sehat-ai/backend/internal/api"
	"sehat-ai/backend/internal/auth"
	"sehat-ai/backend/internal/config"
	"sehat-ai/backend/internal/llm"
	"sehat-ai/backend/internal/resources"
	"sehat-ai/backend/internal/service"
)

// App is the fully wired application. Every dependency is constructed once
// here and injected explicitly; there is no ambient global state.
type App struct {
	Server *http.Server
}

// New wires the application from configuration: provider client, classifier,
// resolver, chat service, auth verifier, router, HTTP server.
func New(cfg *config.Config) (*App, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	upstreamTimeout := time.Duration(cfg.UpstreamTimeoutSeconds) * time.Second
	provider := llm.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, upstreamTimeout)

	classifier := service.NewClassifier(provider, cfg.ClassifierModel)
	resolver := resources.NewResolver()
	chatService := service.NewChatService(provider, classifier, resolver, cfg.DefaultModel)

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	respondHandler := api.NewRespondHandler(chatService)
	router := api.NewRouter(respondHandler, verifier, cfg.AllowedOrigins())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for the streaming endpoint.
		IdleTimeout:       120 * time.Second,
	}

	return &App{Server: server}, nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)
	logConfigSource(cfg)

	application, err := New(cfg)
	if err != nil {
		slog.Error("Failed to wire application", "error", err)
		return 1
	}

	slog.Info("Starting server", "port", cfg.AppPort, "default_model", cfg.DefaultModel)
	if err := application.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource(cfg *config.Config) {
	if cfg.ConfigFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", cfg.ConfigFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
