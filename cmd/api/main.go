package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-assistant/config"
	_ "task-assistant/docs" // Swagger docs
	assistantDelivery "task-assistant/internal/assistant/delivery/http"
	assistantUC "task-assistant/internal/assistant/usecase"
	"task-assistant/internal/extractor"
	"task-assistant/internal/httpserver"
	"task-assistant/internal/middleware"
	todoistRepo "task-assistant/internal/task/repository/todoist"
	taskUC "task-assistant/internal/task/usecase"
	"task-assistant/pkg/gemini"
	"task-assistant/pkg/log"
)

// @title       Task Assistant API
// @description Natural language task assistant backed by Gemini and Todoist.
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

	logger.Info(ctx, "Starting Task Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini LLM client
	geminiClient, err := gemini.New(gemini.Config{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
		APIURL: cfg.Gemini.APIURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}
	logger.Infof(ctx, "Gemini client ready, model=%s", geminiClient.Model())

	// 4. Extraction service
	extractorSvc, err := extractor.New(logger, geminiClient, extractor.Config{
		Timeout:   cfg.Assistant.ExtractionTimeout,
		CacheSize: cfg.Assistant.ExtractionCacheSize,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize extractor: ", err)
		return
	}

	// 5. Task domain (Todoist-backed)
	todoistClient := todoistRepo.NewClient(cfg.Todoist.BaseURL, cfg.Todoist.APIToken)
	taskRepo := todoistRepo.New(todoistClient, logger)
	taskUseCase := taskUC.New(logger, taskRepo)

	// 6. Assistant domain
	assistantUseCase := assistantUC.New(logger, extractorSvc, taskUseCase)
	assistantHandler := assistantDelivery.New(logger, assistantUseCase)

	// 7. HTTP server
	mw := middleware.New(logger, cfg.RateLimit.PerMin)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		AssistantHandler: assistantHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
