package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mehdiozdemir/EduAI-sub002/database"
	"github.com/mehdiozdemir/EduAI-sub002/internal/config"
	"github.com/mehdiozdemir/EduAI-sub002/internal/pkg/statestore"
	"github.com/mehdiozdemir/EduAI-sub002/internal/pkg/validate"
)

func main() {
	viperConfig := config.NewViper()

	log := config.NewLogger(viperConfig)
	db := database.New(viperConfig)
	validator := validate.NewValidator()
	api := config.NewAPI(viperConfig, log)

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Migrations completed successfully")

	// Seed the course catalog
	if err := database.SeedCatalog(db); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	log.Info("Seeders completed successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := statestore.NewClient(
		ctx,
		viperConfig.GetString("redis.addr"),
		viperConfig.GetString("redis.password"),
		viperConfig.GetInt("redis.db"),
	)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	defer redisClient.Close()

	quizSessions := config.Bootstrap(&config.BootstrapConfig{
		Config:    viperConfig,
		Log:       log,
		Api:       api,
		Validator: validator,
		DB:        db,
		Redis:     redisClient,
	})

	listenAddr := ":8080"

	go func() {
		if err := api.Listen(listenAddr); err != nil {
			log.Fatalf("Failed to start API server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	quizSessions.Shutdown()

	if err := api.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("API shutdown error: %v", err)
	}

	log.Info("Shutting down server...")
}
