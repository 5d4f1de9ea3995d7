package main

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"asha-assistant/config"
	"asha-assistant/internal/aggregator"
	chatHTTP "asha-assistant/internal/chat/delivery/http"
	redisRepo "asha-assistant/internal/chat/repository/redis"
	chatUC "asha-assistant/internal/chat/usecase"
	"asha-assistant/internal/httpserver"
	"asha-assistant/internal/intent"
	"asha-assistant/internal/middleware"
	"asha-assistant/internal/moderation"
	"asha-assistant/pkg/herkey"
	"asha-assistant/pkg/llmprovider"
	"asha-assistant/pkg/log"
	"asha-assistant/pkg/translate"
)

// @title       Asha Assistant API
// @description Conversational career assistant grounding LLM answers in live HerKey job, mentorship and event listings.
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

	ctx := context.Background()
	logger.Info(ctx, "Starting Asha Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Provider clients
	herkeyClient, err := herkey.New(herkey.Config{
		BaseURL:       cfg.HerKey.BaseURL,
		JobsToken:     cfg.HerKey.JobsToken,
		SessionsToken: cfg.HerKey.SessionsToken,
		EventsToken:   cfg.HerKey.EventsToken,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HerKey client: ", err)
		return
	}

	translator, err := translate.New(translate.Config{
		BaseURL: cfg.Translate.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize translator: ", err)
		return
	}

	// 4. Completion chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	// 5. Session store
	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	sessionRepo, err := redisRepo.New(ctx, logger, redisClient)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	logger.Infof(ctx, "Redis connected at %s", cfg.Redis.Addr)

	// 6. Chat domain
	uc := chatUC.New(
		logger,
		translator,
		moderation.New(cfg.Moderation.Phrases),
		intent.New(cfg.Intent.JobTitles),
		aggregator.NewRunner(logger, herkeyClient),
		llmManager,
		sessionRepo,
	)
	chatHandler := chatHTTP.New(logger, uc)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger),
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
