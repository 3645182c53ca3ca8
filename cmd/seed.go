package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"RealtyAPI/config"
	"RealtyAPI/models"
	"RealtyAPI/utils"
)

// Seed bodies go through the same schema as POST /api/properties.
var sampleProperties = []string{
	`{"title":"Cozy Condo","address":"1 Main St","city":"Austin","state":"TX","zip_code":"78701","price":250000,"beds":2,"baths":1.5}`,
	`{"title":"Hill Country Ranch","address":"4400 Ranch Rd 12","city":"Wimberley","state":"TX","zip_code":"78676","price":1150000,"beds":4,"baths":3.5,"sqft":3200,"lot_size":12.5,"year_built":1998,"features":["Pool","Workshop"],"type":"Ranch"}`,
	`{"title":"Downtown Loft","address":"210 Lavaca St","city":"Austin","state":"TX","zip_code":"78701","price":610000,"beds":1,"baths":1,"sqft":980,"status":"Pending","type":"Condo"}`,
}

func newSeedCmd() *cobra.Command {
	var inMemory bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample property listings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			utils.InitLogger(config.AppName, cfg.LogLevel)

			ctx := cmd.Context()
			st := openStore(ctx, cfg, inMemory)
			cache := utils.NewCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL)
			defer closeResources(ctx, st, cache)

			for i, body := range sampleProperties {
				input, err := models.ParseProperty([]byte(body))
				if err != nil {
					return fmt.Errorf("sample property %d: %w", i, err)
				}
				id, err := st.Insert(ctx, cfg.PropertyCollection, input.Document(time.Now()))
				if err != nil {
					return fmt.Errorf("seeding %q: %w", *input.Title, err)
				}
				utils.Logger.WithField("id", id).Infof("seeded %q", *input.Title)
			}

			if err := cache.Invalidate(ctx, string(cfg.PropertyCollection)); err != nil {
				utils.Logger.WithError(err).Warn("cache invalidation failed")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&inMemory, "in-memory", false, "insert into a throwaway in-memory store")
	return cmd
}
