package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/whispr-campus/whispr/internal/app"
	"github.com/whispr-campus/whispr/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	env, envErr := loadEnv()

	log := logger.New(logger.Opts{Env: env})
	if envErr != nil && !os.IsNotExist(envErr) {
		log.Warn("Failed to load .env file", "error", envErr)
	}

	app := fx.New(
		fx.Logger(log),
		app.Module,
	)

	// Start the application
	if err := app.Start(context.Background()); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	// Gracefully shutdown the application
	if err := app.Stop(context.Background()); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}
}

// loadEnv reads .env into the process environment and returns APP_ENV, so
// the bootstrap logger sees values that only live in the file.
func loadEnv() (string, error) {
	err := godotenv.Load()
	return os.Getenv("APP_ENV"), err
}
