package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/meeting-notes/backend/internal/api"
	"github.com/meeting-notes/backend/internal/config"
	"github.com/meeting-notes/backend/internal/logger"
	"github.com/meeting-notes/backend/internal/mailer"
	"github.com/meeting-notes/backend/internal/summarizer"
	"github.com/meeting-notes/backend/internal/web"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const shutdownTimeout = 15 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	start := time.Now()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env is normal outside local development.
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load configuration",
			"error", err)

		return 1
	}

	log := logger.New(os.Stdout, cfg.Log.Level)
	slog.SetDefault(log)

	if envErr == nil {
		log.InfoContext(ctx, ".env file is loaded")
	}
	if !cfg.HasOpenAIKey() {
		log.WarnContext(ctx, "OPENAI_API_KEY is missing so summary requests will fail",
			"envVar", "OPENAI_API_KEY")
	}
	if !cfg.HasMailCredentials() {
		log.WarnContext(ctx, "Mail credentials are missing so email requests will fail",
			"envVars", []string{"EMAIL_USER", "EMAIL_PASSWORD"})
	}

	deps := &api.Dependencies{
		Summarizer:     summarizer.NewOpenAISummarizer(cfg.OpenAI, cfg.RequestTimeout),
		Mailer:         mailer.NewSender(cfg.Mail, cfg.RequestTimeout),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         log,
	}
	e := api.NewServer(deps)

	if cfg.Server.ServeUI && web.HasEmbeddedFiles() {
		if err := web.RegisterStaticRoutes(e); err != nil {
			log.WarnContext(ctx, "Failed to register static routes",
				"error", err)
		} else {
			log.InfoContext(ctx, "Serving embedded UI")
		}
	}

	srv := &http.Server{
		Addr:         cfg.GetServerAddr(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	log.InfoContext(ctx, "Server is starting",
		"addr", srv.Addr,
		"version", Version,
		"buildTime", BuildTime,
		"model", cfg.OpenAI.Model,
		"allowedOrigins", cfg.Server.AllowedOrigins)

	if err := serve(ctx, e, srv, shutdownTimeout); err != nil {
		log.ErrorContext(ctx, "Server stopped with error",
			"error", err)

		return 1
	}

	log.InfoContext(ctx, "Server is stopped",
		"uptimeSeconds", time.Since(start).Seconds())
	return 0
}

// serve runs srv until it fails or ctx is cancelled. On cancellation it
// stops accepting connections, waits up to drain for in-flight requests and
// returns only after the listener goroutine has exited.
func serve(ctx context.Context, e *echo.Echo, srv *http.Server, drain time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- e.StartServer(srv)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.InfoContext(ctx, "Shutdown signal is received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), drain)
	defer cancel()

	// StartServer does not record srv on e, so e.Shutdown would not reach it.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
