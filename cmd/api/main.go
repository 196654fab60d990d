package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pageza/cookbook/backend/config"
	"github.com/pageza/cookbook/backend/internal/database"
	"github.com/pageza/cookbook/backend/internal/logger"
	"github.com/pageza/cookbook/backend/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logg.Sync()

	db, err := database.Open(cfg, logg)
	if err != nil {
		logg.Fatal("failed to connect to database", "error", err)
	}

	deps := server.Deps{DB: db, Log: logg}

	// Continue without rate limiting if Redis is not available
	if redisClient, err := database.NewRedisClient(cfg, logg); err != nil {
		logg.Warn("rate limiting disabled", "error", err)
	} else {
		deps.Redis = redisClient
		defer redisClient.Close()
	}

	if storage, err := config.NewS3Config(context.Background(), cfg); err != nil {
		logg.Warn("preview image uploads disabled", "error", err)
	} else {
		deps.Storage = storage
	}

	srv := server.New(cfg, deps)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logg.Fatal("server error", "error", err)
		}
	case sig := <-quit:
		logg.Info("received signal", "signal", sig.String())
	}

	logg.Info("shutting down server")
	if err := srv.Shutdown(context.Background()); err != nil {
		logg.Fatal("server shutdown error", "error", err)
	}
	logg.Info("server stopped")
}
