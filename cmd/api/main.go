package main

import (
	"context"
	"log"
	"time"

	"delivery-ops-api-server/config"
	"delivery-ops-api-server/internal/api/routes"
	"delivery-ops-api-server/internal/auth"
	"delivery-ops-api-server/internal/database"
	"delivery-ops-api-server/internal/s3"
	"delivery-ops-api-server/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Could not create logger: %v", err)
	}
	defer logger.Sync()

	if cfg.JWT.Secret != "" {
		auth.JwtSecret = []byte(cfg.JWT.Secret)
	}
	if cfg.JWT.Expiration != "" {
		expiration, err := time.ParseDuration(cfg.JWT.Expiration)
		if err != nil {
			logger.Fatal("invalid jwt expiration", zap.String("value", cfg.JWT.Expiration), zap.Error(err))
		}
		auth.Expiration = expiration
	}

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Fatal("failed to connect to mongo", zap.Error(err))
	}
	entityStore := store.NewMongo(db)

	if err := database.SeedAdmin(ctx, entityStore, cfg.Seed, logger); err != nil {
		logger.Fatal("failed to seed admin", zap.Error(err))
	}
	if err := database.SeedDrivers(ctx, entityStore, logger); err != nil {
		logger.Fatal("failed to seed drivers", zap.Error(err))
	}

	signer, err := s3.NewSigner(cfg.S3)
	if err != nil {
		logger.Fatal("failed to create s3 signer", zap.Error(err))
	}

	router := routes.SetupRouter(entityStore, signer, logger)

	logger.Info("starting API server", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
