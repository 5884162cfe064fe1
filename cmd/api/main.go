package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"alpaca-ollama/config"
	_ "alpaca-ollama/docs" // Swagger docs
	"alpaca-ollama/internal/httpserver"
	"alpaca-ollama/internal/middleware"
	"alpaca-ollama/pkg/log"
	"alpaca-ollama/pkg/metrics"
	"alpaca-ollama/pkg/ollama"
)

// @title       Alpaca Ollama API
// @description Sentence similarity ranking and chat completions on top of a local Ollama server.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Alpaca Ollama API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Ollama URL: %s (embed=%s, prompt=%s, timeout=%s)",
		cfg.Ollama.BaseURL, cfg.Ollama.EmbedModel, cfg.Ollama.PromptModel, cfg.Ollama.Timeout)

	// 3. Metrics (optional)
	srvCfg := httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		MaxConcurrency: cfg.Similarity.MaxConcurrency,
		Inference: httpserver.InferenceInfo{
			BaseURL:     cfg.Ollama.BaseURL,
			EmbedModel:  cfg.Ollama.EmbedModel,
			PromptModel: cfg.Ollama.PromptModel,
		},
		RateLimit: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		},
	}

	ollamaCfg := ollama.Config{
		BaseURL:     cfg.Ollama.BaseURL,
		EmbedModel:  cfg.Ollama.EmbedModel,
		PromptModel: cfg.Ollama.PromptModel,
		Timeout:     cfg.Ollama.Timeout,
		JSONOutput:  &cfg.Ollama.JSONOutput,
	}

	if cfg.Metrics.Enabled {
		m := metrics.New(metrics.Config{
			Namespace:               cfg.Metrics.Namespace,
			EnableDefaultCollectors: true,
		})
		ollamaCfg.Observer = m
		srvCfg.MetricsHandler = m.Handler()
		srvCfg.SimilarityObserver = m
		logger.Info(ctx, "Metrics enabled at GET /metrics")
	}

	// 4. Ollama client
	client, err := ollama.New(ollamaCfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Ollama client: ", err)
		os.Exit(1)
	}
	srvCfg.Ollama = client

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
