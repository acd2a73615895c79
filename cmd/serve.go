package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"pragency/internal/activity"
	"pragency/internal/agent"
	"pragency/internal/api"
	"pragency/internal/api/handler/v1handler"
	"pragency/internal/auth"
	"pragency/internal/config"
	"pragency/pkg/logger"
	"pragency/pkg/storage"
	"pragency/pkg/textgen/gemini"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupServices builds the application services on top of the storage layer.
func setupServices(ctx context.Context, cfg *config.Config, strg storage.Storage) v1handler.Deps {
	tokens, err := auth.NewTokens(auth.TokensOptions{
		Secret:         cfg.JWT.Secret,
		Algorithm:      cfg.JWT.Algorithm,
		AccessTokenTTL: time.Duration(cfg.JWT.AccessTokenTTLMinutes) * time.Minute,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create token service", zap.Error(err))
	}

	mp, err := api.NewMeterProvider()
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}

	textgenClient := gemini.New(&http.Client{Timeout: cfg.Gemini.RequestTimeout},
		cfg.Gemini.APIKey,
		cfg.Gemini.Model)

	agents, err := agent.New(textgenClient, mp.Meter("pragency/agent"))
	if err != nil {
		logger.Fatal(ctx, "could not create agent service", zap.Error(err))
	}

	return v1handler.Deps{
		Accounts:   auth.NewAccounts(strg, tokens),
		Agents:     agents,
		Activities: activity.New(strg),
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps v1handler.Deps) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{Deps: deps}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		Run: func(_ *cobra.Command, _ []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			stopWebserver := setupServer(ctx, cfg, setupServices(ctx, cfg, strg))

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
