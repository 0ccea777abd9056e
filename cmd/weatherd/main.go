package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/weather-forecast-service/internal/api/http"
	"github.com/i474232898/weather-forecast-service/internal/config"
	"github.com/i474232898/weather-forecast-service/internal/openweather"
	"github.com/i474232898/weather-forecast-service/internal/scheduler"
	"github.com/i474232898/weather-forecast-service/internal/status"
)

func main() {
	// Load configuration; fails fast when the provider API key is absent.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.ProviderTimeout,
	}

	client := openweather.NewClient(httpClient, cfg.OpenWeatherAPIKey)

	// Periodic provider reachability probe feeding the health endpoint.
	recorder := status.NewRecorder()
	sched := scheduler.New(client, recorder, cfg.ProbeLat, cfg.ProbeLon, cfg.ProbeInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-forecast-service",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// API routes.
	api := httpapi.New(client, recorder, cfg.ProviderTimeout)
	httpapi.RegisterRoutes(app, api)

	// Landing page and assets.
	app.Static("/", cfg.StaticDir)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
