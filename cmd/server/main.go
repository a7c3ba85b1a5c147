// Package main is the entry point for the prompt flight search service.
//
//	@title						Prompt Flight Search API
//	@version					1.0.0
//	@description				A flight search service that turns natural-language prompts into live flight searches and returns the cheapest matching flight.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/promptflight/prompt-flight-search/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/promptflight/prompt-flight-search/docs"

	flighthttp "github.com/promptflight/prompt-flight-search/internal/adapter/http"
	"github.com/promptflight/prompt-flight-search/internal/adapter/http/middleware"
	"github.com/promptflight/prompt-flight-search/internal/agent"
	"github.com/promptflight/prompt-flight-search/internal/browser"
	"github.com/promptflight/prompt-flight-search/internal/config"
	"github.com/promptflight/prompt-flight-search/internal/infrastructure/logger"
	"github.com/promptflight/prompt-flight-search/internal/infrastructure/timeutil"
	"github.com/promptflight/prompt-flight-search/internal/intent"
	"github.com/promptflight/prompt-flight-search/internal/usecase"
	"github.com/promptflight/prompt-flight-search/internal/webhook"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "prompt-flight-search",
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("model", cfg.OpenAI.Model).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	dispatcher := setupRoutes(e, cfg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, dispatcher, cfg.Server.ShutdownTaskWait, log)
}

// setupRoutes builds the search pipeline and registers the HTTP routes.
// It returns the background dispatcher so shutdown can drain deferred searches.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) *usecase.Dispatcher {
	clock := timeutil.NewRealClock()

	provider := agent.NewOpenAIProvider(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		cfg.OpenAI.MaxToolRounds,
		log.Logger,
	)
	extractor := intent.NewExtractor(provider, clock, log.Logger)

	browserAgent := browser.NewClient(browser.Config{
		BaseURL:      cfg.Browser.BaseURL,
		APIKey:       cfg.Browser.APIKey,
		PollInterval: cfg.Browser.PollInterval,
		TaskTimeout:  cfg.Browser.TaskTimeout,
	}, log.Logger)

	deliverer := webhook.NewHTTPDeliverer(cfg.Webhook.DeliveryTimeout, log.Logger)
	dispatcher := usecase.NewDispatcher(log.Logger)

	flightUseCase := usecase.NewFlightSearchUseCase(
		extractor,
		browserAgent,
		deliverer,
		dispatcher,
		log.Logger,
	)

	flightHandler := flighthttp.NewFlightHandler(flightUseCase)
	flighthttp.RegisterRoutes(e, flightHandler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return dispatcher
}

// gracefulShutdown stops the HTTP server and drains in-flight deferred
// searches on interrupt signals.
func gracefulShutdown(e *echo.Echo, dispatcher *usecase.Dispatcher, taskWait time.Duration, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	// Deferred searches already accepted still owe a webhook call.
	if !dispatcher.Wait(taskWait) {
		log.Warn().Dur("waited", taskWait).Msg("Shutdown proceeding with unfinished background searches")
	}

	log.Info().Msg("Server stopped")
}
