package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"recruit/internal/api"
	"recruit/internal/api/handler/v1handler"
	"recruit/internal/config"
	"recruit/internal/recruit"
	"recruit/internal/worker"
	"recruit/pkg/blob"
	"recruit/pkg/domain"
	"recruit/pkg/logger"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
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
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			blobs, err := blob.NewFS(cfg.Blob.Dir, domain.MaxLogoSize)
			if err != nil {
				logger.Fatal(ctx, "could not create blob store", zap.Error(err))
			}

			issuer, err := v1handler.NewTokenIssuer(v1handler.NewTokenIssuerOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
			}

			core := recruit.New(strg, blobs, recruit.NewOptions(cfg))

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Recruit: core,
					Issuer:  issuer,
				},
			})

			riverClient, err := worker.Start(ctx, strg.Pool, blobs)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
