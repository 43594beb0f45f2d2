package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/gamefeed/gamefeed/frontend/internal/router"
	"github.com/gamefeed/gamefeed/frontend/internal/setup"
	"github.com/gamefeed/gamefeed/shared/config"
	"github.com/gamefeed/gamefeed/shared/logger"
)

const (
	defaultPort         = "8081"
	defaultConfigFolder = "frontend/config"
	readTimeout         = 5 * time.Second
	writeTimeout        = 30 * time.Second
	shutdownTimeout     = 10 * time.Second
)

func main() {
	// .env is optional, real environment variables win
	_ = godotenv.Load()

	var configFolder string
	flag.StringVar(&configFolder, "config_folder", envOr("CONFIG_FOLDER", defaultConfigFolder), "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.SetupDependencies(ctx, cfg)
	if err != nil {
		logger.Log.Error("failed to setup dependencies", "error", err)
		os.Exit(1)
	}

	server := configureServer(router.New(deps))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.Info("starting frontend", "addr", server.Addr, "env", os.Getenv("ENV"))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return deps.Sessions.Run(gctx, cfg.Public.SessionSweepInterval)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := server.Shutdown(shutdownCtx)
		deps.Cleanup(shutdownCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error("frontend stopped", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("frontend stopped")
}

func configureServer(handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + envOr("PORT", defaultPort),
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
