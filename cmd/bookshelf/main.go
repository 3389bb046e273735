// Package main is the entry point for the bookshelf server application.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ASHISH26940/bookshelf/internal/config"
	"github.com/ASHISH26940/bookshelf/internal/logger"
	"github.com/ASHISH26940/bookshelf/internal/server"
	"github.com/ASHISH26940/bookshelf/internal/store"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	if err := run(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "bookshelf: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	// --- Configuration ---
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	log, err := logger.Init(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	// --- Initialize Store ---
	st := store.NewStore(cfg.DataPath(), log)
	books, err := st.Load(context.Background())
	if err != nil {
		return fmt.Errorf("open book collection: %w", err)
	}
	log.Info().Str("path", st.Path()).Int("books", len(books)).Msg("Book collection loaded")

	// --- Start the HTTP Server ---
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.New(st, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Environment).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout.Duration)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info().Msg("Server exited gracefully")
	return nil
}

// loadConfig applies defaults, the optional config file and the environment,
// in that order.
func loadConfig(path string) (*config.Config, error) {
	cfg := config.New()
	if err := cfg.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
