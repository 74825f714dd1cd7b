package main

import (
	"context"
	"fmt"
	"os"

	"github.com/haguru/persona/config"
	"github.com/haguru/persona/internal/app"
	"github.com/haguru/persona/internal/seed"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; MONGODB_URI may come from the real env.
	_ = godotenv.Load()

	ctx := context.Background()

	application, err := app.NewApp(ctx, config.CONFIG_PATH)
	if err != nil {
		fmt.Fprintf(os.Stderr, "persona-seed: %v\n", err)
		os.Exit(1)
	}
	application.HandleSignals(ctx)
	defer application.Shutdown(ctx)

	logger := application.Logger.WithContext(map[string]interface{}{
		"run_id": uuid.NewString(),
	})

	runner := seed.NewRunner(application.Service, logger, application.Config.Seed.InsertsPerSecond)
	if err := runner.Run(ctx); err != nil {
		logger.Error("Seed run failed", "error", err)
		application.Shutdown(ctx)
		os.Exit(1)
	}

	logger.Info("Seed completed")
}
