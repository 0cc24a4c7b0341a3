package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/recruitu/backend/configs"
	"github.com/recruitu/backend/internal/application/services"
	"github.com/recruitu/backend/internal/core/domain/search"
	"github.com/recruitu/backend/internal/core/ports"
	"github.com/recruitu/backend/internal/infrastructure/health"
	"github.com/recruitu/backend/internal/infrastructure/httpserver"
	"github.com/recruitu/backend/internal/infrastructure/llm"
	"github.com/recruitu/backend/internal/infrastructure/memcache"
	"github.com/recruitu/backend/internal/infrastructure/peopleapi"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting recruiting search proxy...")

	// Initialize the LLM client for the configured provider
	llmClient, err := llm.NewClient(&llm.Config{
		Provider: cfg.LLM.Provider,
		Host:     cfg.LLM.OllamaHost,
		Model:    cfg.LLM.OllamaModel,
		Timeout:  cfg.LLM.Timeout,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize LLM client:", err)
	}
	if !llmClient.Available() {
		logger.Warn("No LLM provider configured - query parsing and suggestions run in fallback mode")
	}

	// Initialize the people API client
	peopleClient := peopleapi.NewClient(&peopleapi.Config{
		BaseURL: cfg.PeopleAPI.BaseURL,
		Timeout: cfg.PeopleAPI.Timeout,
	}, logger)

	// Construct both caches once and inject them; parsed queries cache
	// longer than suggestions because profile data changes more often.
	queryCache := memcache.New[search.Filters](cfg.Cache.QueryParsingTTL)
	suggestionsCache := memcache.New(cfg.Cache.SuggestionsTTL, memcache.WithClone(memcache.CloneStrings))

	logger.WithFields(logrus.Fields{
		"query_parsing_ttl": cfg.Cache.QueryParsingTTL,
		"suggestions_ttl":   cfg.Cache.SuggestionsTTL,
	}).Info("Initialized in-memory TTL caches")

	// Wire services with their dependencies
	queryParsingService := services.NewQueryParsingService(llmClient, queryCache, logger)
	suggestionService := services.NewSuggestionService(llmClient, suggestionsCache, logger)
	maintenanceService := services.NewCacheMaintenanceService(queryCache, suggestionsCache, logger)

	hcSlice := []ports.HealthChecker{health.NewPeopleAPIHealthChecker(peopleClient)}
	if ollama, ok := llmClient.(*llm.OllamaClient); ok {
		hcSlice = append(hcSlice, health.NewLLMHealthChecker(ollama))
	}

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		TLSCertFile:  cfg.Server.TLSCertFile,
		TLSKeyFile:   cfg.Server.TLSKeyFile,
	}

	deps := httpserver.ServerDeps{
		QueryParsingService: queryParsingService,
		SuggestionService:   suggestionService,
		PeopleClient:        peopleClient,
		CacheMaintenance:    maintenanceService,
		HealthCheckers:      hcSlice,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
