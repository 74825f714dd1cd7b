package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/haguru/persona/config"
	"github.com/haguru/persona/internal/interfaces"
	personRepo "github.com/haguru/persona/internal/personrepo/mongo"
	"github.com/haguru/persona/internal/personservice"
	"github.com/haguru/persona/pkg/databases/mongo"
	"github.com/haguru/persona/pkg/metrics"
	"github.com/haguru/persona/pkg/zerolog"

	structValidator "github.com/go-playground/validator/v10"
)

// App wires the configuration, logger, metrics, database client, repository
// and service together for the demo and seed entry points.
type App struct {
	Config  *config.ServiceConfig
	Logger  interfaces.Logger
	Metrics interfaces.Metrics
	Service interfaces.PersonService

	dbClient interfaces.DBClient
	repo     interfaces.PersonRepository
}

// NewApp creates and configures a new App instance. Connection failure is
// terminal: a single failed attempt returns an error the entry point treats
// as fatal. No retry or backoff is performed.
func NewApp(ctx context.Context, configPath string) (*App, error) {
	cfg, err := config.ReadLocalConfig(configPath)
	if err != nil {
		return nil, err
	}

	// Validate the configuration
	validator := structValidator.New()
	if err := validator.Struct(cfg); err != nil {
		errors := err.(structValidator.ValidationErrors)
		return nil, fmt.Errorf("validation error: %s", errors)
	}

	// The connection string comes from the environment; absence is fatal.
	envCfg, err := config.ReadEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	logger := zerolog.NewZerologLogger(cfg.ServiceName)
	logger.SetLevel(cfg.LogLevel)

	app := &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: initializeMetrics(cfg.ServiceName),
	}

	dbClient, err := mongo.NewMongoDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MongoDB client: %v", err)
	}

	logger.Info("Connecting to MongoDB")
	if err := dbClient.Connect(ctx, envCfg.MongoURI); err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
	}
	logger.Info("Connected to MongoDB", "database", cfg.Database.DatabaseName)
	app.dbClient = dbClient

	repo, err := personRepo.NewMongoPersonRepository(dbClient)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize person repository: %v", err)
	}
	if err := repo.EnsureIndices(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure indices: %v", err)
	}
	app.repo = repo

	app.Service = personservice.NewPersonService(repo, logger, app.Metrics)

	return app, nil
}

// Connected reports the current connection state.
func (app *App) Connected() bool {
	return app.dbClient != nil && app.dbClient.Connected()
}

// Shutdown disconnects from the database. Safe to call when never connected.
func (app *App) Shutdown(ctx context.Context) {
	if app.dbClient == nil || !app.dbClient.Connected() {
		return
	}
	app.Logger.Info("Disconnecting from MongoDB")
	if err := app.dbClient.Disconnect(ctx); err != nil {
		app.Logger.Error("Failed to disconnect from MongoDB", "error", err)
	}
}

// HandleSignals closes the connection and exits when the process receives an
// interrupt or termination signal.
func (app *App) HandleSignals(ctx context.Context) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		app.Logger.Warn("Received signal, shutting down", "signal", sig.String())
		app.Shutdown(ctx)
		os.Exit(1)
	}()
}

// LogMetricsSummary gathers the registry and logs every counter so a demo run
// ends with a visible account of what it did. There is no HTTP exposure.
func (app *App) LogMetricsSummary() {
	families, err := app.Metrics.GetRegistry().Gather()
	if err != nil {
		app.Logger.Error("Failed to gather metrics", "error", err)
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			if metric.GetCounter() == nil {
				continue
			}
			keyvals := []interface{}{"metric", family.GetName()}
			for _, label := range metric.GetLabel() {
				keyvals = append(keyvals, label.GetName(), label.GetValue())
			}
			keyvals = append(keyvals, "value", metric.GetCounter().GetValue())
			app.Logger.Info("Metric", keyvals...)
		}
	}
}

func initializeMetrics(serviceName string) interfaces.Metrics {
	appMetrics := metrics.NewMetrics(serviceName)
	appMetrics.RegisterCounterVec(
		personservice.OperationRequestsTotal,
		personservice.OperationRequestsTotalHelp,
		personservice.OperationLabels)
	appMetrics.RegisterCounterVec(
		personservice.OperationErrorsTotal,
		personservice.OperationErrorsTotalHelp,
		personservice.OperationLabels)
	appMetrics.RegisterHistogramVec(
		personservice.OperationDurationSeconds,
		personservice.OperationDurationSecondsHelp,
		personservice.OperationDurationSecondsBuckets,
		personservice.OperationLabels)

	return appMetrics
}
