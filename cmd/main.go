package main

import (
	"support-assistant-backend/internal/api"
	"support-assistant-backend/internal/api/routes"
	"support-assistant-backend/internal/config"
	llmHandlers "support-assistant-backend/internal/llm_handlers"
	"support-assistant-backend/internal/logging"

	"github.com/rs/zerolog/log"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := config.MigrateAllModels(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	llmClient, err := llmHandlers.New(llmHandlers.Config{
		Provider: llmHandlers.Provider(cfg.LLMProvider),
		Model:    cfg.LLMModel,
		BaseURL:  cfg.LLMBaseURL,
		APIKey:   cfg.LLMAPIKey,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize completion client")
	}

	app := api.NewServer()
	routes.Register(app, db, cfg, llmClient)

	if err := api.StartServer(app, cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
