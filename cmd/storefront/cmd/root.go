// Package cmd implements the storefront CLI commands.
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/db/mock"
	applog "storefront/internal/log"
)

var (
	newFetcher = func(v *viper.Viper) (catalog.Fetcher, error) {
		return catalog.NewClient(catalog.Config{
			BaseURL: v.GetString("catalog-url"),
			Timeout: v.GetDuration("timeout"),
		})
	}
	openDatabase = func(ctx context.Context, v *viper.Viper) (*gorm.DB, error) {
		if v.GetBool("mock-db") {
			return mock.New(ctx)
		}
		return db.Configure(config.DatabaseConfig{URL: v.GetString("database")})
	}
)

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "storefront",
		Short: "Browse the product catalog and manage the storefront theme",
		Long: "storefront queries the same product catalog the web storefront shows\n" +
			"and reads or changes the site-wide default theme.",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return applog.SetLevel(v.GetString("log-level"))
		},
	}

	flags := root.PersistentFlags()
	flags.String("catalog-url", "https://fakestoreapi.com", "products API base URL")
	flags.Duration("timeout", 0, "products API timeout (default 10s)")
	flags.String("database", "storefront.db", "preference database: postgres URL or sqlite path")
	flags.Bool("mock-db", false, "use an in-memory preference database")
	flags.String("output", "table", "output format (table, json)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	for _, name := range []string{"catalog-url", "timeout", "database", "mock-db", "output", "log-level"} {
		cobra.CheckErr(v.BindPFlag(name, flags.Lookup(name)))
	}
	cobra.CheckErr(v.BindEnv("catalog-url", "CATALOG_BASE_URL"))
	cobra.CheckErr(v.BindEnv("timeout", "CATALOG_TIMEOUT"))
	cobra.CheckErr(v.BindEnv("database", "DATABASE_URL"))
	cobra.CheckErr(v.BindEnv("mock-db", "DATABASE_USE_MOCK"))
	cobra.CheckErr(v.BindEnv("log-level", "LOG_LEVEL"))
	v.SetEnvPrefix("STOREFRONT")
	cobra.CheckErr(v.BindEnv("output"))

	root.AddCommand(
		productsCmd(v),
		categoriesCmd(v),
		themeCmd(v),
	)
	return root
}

func jsonOutput(v *viper.Viper) bool {
	return v.GetString("output") == "json"
}
