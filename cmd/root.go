package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"RealtyAPI/config"
	"RealtyAPI/store"
	"RealtyAPI/utils"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "realty",
		Short:         "Property listings and inquiries API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newServeCmd(), newSeedCmd())
	return rootCmd
}

func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore never fails: a database that cannot be reached leaves the API
// up with every data operation reporting a store error.
func openStore(ctx context.Context, cfg *config.Config, inMemory bool) store.Store {
	if inMemory {
		utils.Logger.Info("Using in-memory store")
		return store.NewMemory()
	}
	m, err := store.NewMongo(ctx, cfg.DatabaseURL, cfg.DatabaseName, cfg.StoreTimeout)
	if err != nil {
		utils.Logger.WithError(err).Error("MongoDB connection failed, continuing without database")
	}
	return m
}

func closeResources(ctx context.Context, s store.Store, cache *utils.Cache) {
	if err := s.Close(ctx); err != nil {
		utils.Logger.WithError(err).Error("closing store")
	}
	if err := cache.Close(); err != nil {
		utils.Logger.WithError(err).Error("closing cache")
	}
}
