package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leetdeck/internal/api"
	"leetdeck/internal/api/handler"
	"leetdeck/internal/app/service"
	"leetdeck/internal/app/worker"
	"leetdeck/internal/platform/cardsink"
	"leetdeck/internal/platform/config"
	"leetdeck/internal/platform/llm"
	"leetdeck/internal/platform/logger"
)

func main() {
	// 1. Load Configuration
	config.Load()
	cfg := config.AppConfig

	// 2. Logging
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	slog.Info("configuration loaded", "port", cfg.APIPort)

	// 3. Upstream Clients
	llmClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)

	var sink cardsink.Sink
	if cfg.MochiAPIKey == "" {
		slog.Warn("MOCHI_API_KEY not set, card creation is disabled")
		sink = cardsink.NoopSink{}
	} else {
		sink = cardsink.NewMochiSink(cfg.MochiAPIKey, cfg.MochiBaseURL, cfg.MochiDeckID)
	}

	// 4. Background Dispatcher & Services
	dispatcher := worker.NewDispatcher()
	submissionService := service.NewSubmissionService(llmClient, sink)

	// 5. Handlers & Router
	submissionHandler := handler.NewSubmissionHandler(submissionService, dispatcher)
	healthHandler := handler.NewHealthHandler(cfg.AppName + " running")
	frontendHandler := handler.NewFrontendHandler(cfg.FrontendDist)

	router := api.NewRouter(submissionHandler, healthHandler, frontendHandler)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 6. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	// Drain in-flight submissions before exiting; their outcomes only
	// exist in the logs, so cutting them short loses the record.
	drainCtx, drainCancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.ShutdownDrainSeconds)*time.Second)
	defer drainCancel()
	if err := dispatcher.Shutdown(drainCtx); err != nil {
		slog.Warn("background tasks did not drain in time", "error", err)
	}

	slog.Info("server stopped")
}
