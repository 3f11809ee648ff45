package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"campus-assistant/config"
	_ "campus-assistant/docs" // Swagger docs
	"campus-assistant/internal/httpserver"
	"campus-assistant/pkg/gemini"
	"campus-assistant/pkg/log"
	"campus-assistant/pkg/supabase"
)

// @title       Campus Assistant API
// @description Campus assistant chatbot: classroom availability, library occupancy, faculty locations, and a generative AI fallback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Campus Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Supabase URL: %s", cfg.Supabase.URL)

	// 3. Shared clients
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey)

	geminiClient := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if geminiClient.IsAvailable() {
		logger.Infof(ctx, "AI fallback enabled (model: %s)", geminiClient.Model())
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY not set, AI fallback disabled")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AppConfig:      cfg,
		SupabaseClient: supabaseClient,
		GeminiClient:   geminiClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
