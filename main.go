package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/camknopp/open-mics-near-me/config"
	"github.com/camknopp/open-mics-near-me/internal/geocode"
	"github.com/camknopp/open-mics-near-me/internal/handler"
	"github.com/camknopp/open-mics-near-me/internal/middleware"
	"github.com/camknopp/open-mics-near-me/internal/repository"
	"github.com/camknopp/open-mics-near-me/internal/service"
	"github.com/camknopp/open-mics-near-me/internal/validation"
	"github.com/camknopp/open-mics-near-me/pkg/database"
	"github.com/camknopp/open-mics-near-me/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())
	defer database.Close(db)

	// Publishing is optional: no broker configured means no events
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Printf("rabbitmq unreachable, event publishing disabled: %v", err)
		} else {
			publisher = p
			defer publisher.Close()
		}
	}

	geocoder := geocode.NewClient(geocode.Config{
		BaseURL:  cfg.GeocodeBaseURL,
		Cache:    config.NewRedisClient(cfg),
		CacheTTL: cfg.GeocodeCacheTTL,
	})

	micRepo := repository.NewOpenMicRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	micSvc := service.NewOpenMicService(micRepo, venueRepo, publisher)

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = validation.New()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "open-mics-near-me"})
	})

	mics := e.Group("/api/openmics", middleware.OptionalAuth(cfg.JWTSecret))
	handler.NewOpenMicHandler(micSvc).RegisterRoutes(mics)

	handler.NewGeocodeHandler(geocoder).RegisterRoutes(e.Group("/api/geocode"))
	handler.NewAuthHandler(cfg.JWTSecret, cfg.SessionTTL).RegisterRoutes(e.Group("/api/auth"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Startup failures come back over errCh so the deferred DB and
	// publisher closes still run.
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Open Mics Near Me starting on :%s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		log.Printf("server error: %v", err)
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
