package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jobportal/job-portal/internal/api"
	"github.com/jobportal/job-portal/internal/core/service"
	"github.com/jobportal/job-portal/internal/infrastructure/bootstrap"
	"github.com/jobportal/job-portal/internal/infrastructure/config"
	mongorepo "github.com/jobportal/job-portal/internal/infrastructure/db/mongo"
	redisinfra "github.com/jobportal/job-portal/internal/infrastructure/db/redis"
	"github.com/jobportal/job-portal/internal/infrastructure/storage"
	"github.com/jobportal/job-portal/pkg/logger"
)

func main() {
	// Best effort: a missing .env file is fine, real env vars win anyway.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})
	log.Info().Str("env", cfg.Env).Msg("starting job portal API")

	ctx := context.Background()

	mongoClient, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	documents, err := storage.NewFSStore(cfg.DocumentRoot)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise document storage")
	}

	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour

	// Seed indexes and the admin account before accepting traffic.
	seedAuth := service.NewAuthService(
		mongorepo.NewIdentityRepository(db),
		mongorepo.NewCompanyRepository(db),
		mongorepo.NewEmployeeRepository(db),
		cfg.JWTSecret, tokenTTL, cfg.MinPasswordLen, log,
	)
	if err := bootstrap.Run(ctx, db, seedAuth, cfg.AdminEmail, cfg.AdminPassword, log); err != nil {
		log.Fatal().Err(err).Msg("startup bootstrap failed")
	}

	e := api.NewRouter(db, rdb, documents, api.Options{
		JWTSecret:      cfg.JWTSecret,
		TokenTTL:       tokenTTL,
		MinPasswordLen: cfg.MinPasswordLen,
		Logger:         log,
	})

	// Graceful shutdown on SIGINT/SIGTERM.
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("error shutting down server")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}
