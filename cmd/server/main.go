// Package main is the entry point for the CarDiagnosis server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SaranSelva18/CarDiagnosis/internal/config"
	"github.com/SaranSelva18/CarDiagnosis/internal/diagnose"
	"github.com/SaranSelva18/CarDiagnosis/internal/gemini"
	"github.com/SaranSelva18/CarDiagnosis/internal/handler"
	"github.com/SaranSelva18/CarDiagnosis/internal/security"
	"github.com/SaranSelva18/CarDiagnosis/internal/ui"
)

func main() {
	// A local .env is a convenience for development; absence is fine.
	_ = godotenv.Load()

	logger := setupLogger()

	ui.PrintBanner()
	logger.Info("starting cardiagnosis")

	cfg, err := config.GetConfig()
	if err != nil {
		ui.PrintError(err.Error())
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		slog.String("host", cfg.Server.Host),
		slog.Int("port", cfg.Server.Port),
		slog.String("model", cfg.Gemini.Model),
		slog.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	// Gemini client and the diagnosis service around it.
	client := gemini.NewClient(cfg.Gemini.APIKey,
		gemini.WithBaseURL(cfg.Gemini.BaseURL),
		gemini.WithModel(cfg.Gemini.Model),
		gemini.WithTimeout(time.Duration(cfg.Gemini.TimeoutSeconds)*time.Second),
	)

	svc := diagnose.NewService(client,
		diagnose.WithLimits(cfg.Limits),
		diagnose.WithRate(cfg.Currency),
		diagnose.WithLogger(logger),
	)

	handlerOpts := []handler.DiagnoseHandlerOption{handler.WithLogger(logger)}
	if cfg.Cache.Enabled {
		cache := handler.NewResultCache(
			handler.WithCacheTTL(time.Duration(cfg.Cache.TTLSeconds)*time.Second),
			handler.WithCacheLogger(logger),
		)
		handlerOpts = append(handlerOpts, handler.WithCache(cache))
	}
	diagnoseHandler := handler.NewDiagnoseHandler(svc, handlerOpts...)

	// Gin router with middleware.
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(handler.RecoveryMiddleware(logger))
	router.Use(handler.CORSMiddleware())
	router.Use(handler.LoggingMiddleware(logger))

	router.POST("/api/diagnose/code", diagnoseHandler.HandleCode)
	router.POST("/api/diagnose/media", diagnoseHandler.HandleMedia)
	router.GET("/health", diagnoseHandler.HandleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// HTTP server with graceful shutdown.
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.String("address", addr))
		ui.PrintStartup(addr)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	ui.PrintShutdown()

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
	ui.PrintStopped()
}

// setupLogger creates the structured JSON logger wrapped in the credential
// redactor, and installs it as the default.
func setupLogger() *slog.Logger {
	level := slog.LevelInfo
	switch os.Getenv("CARDIAG_LOGGING_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(security.NewRedactedHandler(jsonHandler))

	slog.SetDefault(logger)

	return logger
}
