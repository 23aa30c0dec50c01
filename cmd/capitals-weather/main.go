package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/capitals-weather/internal/api/http"
	"github.com/i474232898/capitals-weather/internal/capitals"
	"github.com/i474232898/capitals-weather/internal/capitals/providers"
	"github.com/i474232898/capitals-weather/internal/config"
	"github.com/i474232898/capitals-weather/internal/logger"
	"github.com/i474232898/capitals-weather/internal/scheduler"
	"github.com/i474232898/capitals-weather/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load config: %w", err))
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Fatal(fmt.Errorf("invalid LOG_LEVEL: %w", err))
	}

	// Source tables are loaded once; the scheduler swaps in a new dataset only if they change.
	tables := store.NewCSVStore(cfg.CitiesFile, cfg.CapitalsFile)
	cities, caps, err := tables.Load()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load source tables: %w", err))
	}
	dataset := capitals.NewDataset(cities, caps)

	st := dataset.Stats()
	logger.WithFields(logger.Fields{
		"cities":     st.Cities,
		"capitals":   st.Capitals,
		"reconciled": st.Reconciled,
	}).Info("capitals dataset loaded")

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	fetcher := providers.NewOpenWeatherFetcher(providers.HTTPClientConfig{
		Client:             httpClient,
		BreakerMaxFailures: cfg.BreakerMaxFailures,
	}, cfg.OpenWeatherBaseURL, cfg.FetchTimeout)

	service := capitals.NewService(dataset, fetcher, cfg.FetchWorkers)

	sched := scheduler.New(tables, service, cfg.ReloadInterval)
	if err := sched.Start(); err != nil {
		logger.Fatal(fmt.Errorf("failed to start scheduler: %w", err))
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "capitals-weather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		// Sequential fetches for a broad letter can take a while.
		WriteTimeout: 2 * time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())

	httpapi.RegisterRoutes(app, service)

	go func() {
		logger.Info(fmt.Sprintf("starting capitals-weather on port %s", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error(fmt.Errorf("fiber server stopped: %w", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error(fmt.Errorf("error during shutdown: %w", err))
	}
}
