package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/emicklei/go-restful/v3"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AmiraLearning/amira-amirabot-analysis/internal/api"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/api/middleware"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/config"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/setup/logger"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	serviceLogger := logger.New(os.Getenv("LOG_LEVEL"))
	log.Logger = serviceLogger

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	// Default thresholds; per-request overrides come in the body
	thresholds, err := config.LoadThresholds(os.Getenv("THRESHOLDS_CONFIG_PATH"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load thresholds")
	}

	// API
	handler := api.NewHandler(thresholds, &serviceLogger)
	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	// Server
	port := os.Getenv("REPORT_API_PORT")
	if port == "" {
		port = "18082"
	}

	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("address", addr).Msg("Starting Quality Report API")

	server := http.Server{
		Addr:    addr,
		Handler: corsHandler.Handler(container),
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
