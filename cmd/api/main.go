// @title Trivia API
// @version 1.0
// @description REST backend for a trivia game: browse, add, delete and search questions, and play quizzes.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "trivia-api/cmd/api/docs"
	"trivia-api/internal/bootstrap"
	"trivia-api/internal/config"
	"trivia-api/internal/handler"
	"trivia-api/internal/logger"
	"trivia-api/internal/server"
	"trivia-api/internal/service"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to open store", zap.Error(err))
	}
	defer store.Close()

	if cfg.Seed.File != "" {
		if _, err := store.SeedFromFile(ctx, cfg.Seed.File); err != nil {
			appLogger.Fatal("Failed to seed store", zap.String("file", cfg.Seed.File), zap.Error(err))
		}
	}

	triviaService := service.NewTriviaService(store.Categories, store.Questions)
	triviaHandler := handler.NewTriviaHandler(triviaService)
	app := server.New(*cfg, triviaHandler)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("driver", cfg.DB.Driver))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
