package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"RealtyAPI/config"
	"RealtyAPI/handlers"
	"RealtyAPI/routes"
	"RealtyAPI/utils"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var (
		port     string
		inMemory bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if port != "" {
				cfg.Port = port
			}
			utils.InitLogger(config.AppName, cfg.LogLevel)
			return serve(cmd.Context(), cfg, inMemory)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port, overrides PORT")
	cmd.Flags().BoolVar(&inMemory, "in-memory", false, "keep records in process memory instead of MongoDB")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, inMemory bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := openStore(ctx, cfg, inMemory)
	cache := utils.NewCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL)
	if err := cache.Ping(ctx); err != nil {
		utils.Logger.WithError(err).Warn("Redis unreachable, list cache will miss")
	}

	e := routes.New(routes.Controllers{
		Health:   handlers.NewHealthController(st, cfg.DatabaseURL != ""),
		Property: handlers.NewPropertyController(st, cache, cfg.PropertyCollection),
		Inquiry:  handlers.NewInquiryController(st, cache, cfg.InquiryCollection),
	})

	errCh := make(chan error, 1)
	go func() {
		utils.Logger.Infof("Server starting on port %s", cfg.Port)
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		closeResources(context.Background(), st, cache)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	utils.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		utils.Logger.WithError(err).Error("server shutdown")
	}
	closeResources(shutdownCtx, st, cache)
	return nil
}
