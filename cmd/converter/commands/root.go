package commands

import (
	"CurrencyConverter/internal/app"
	"CurrencyConverter/internal/config"
	"context"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        *config.Config
)

func Execute() error {
	root := &cobra.Command{
		Use:           "converter",
		Short:         "Currency converter backed by the Frankfurter exchange-rate API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "init" {
				return nil
			}
			if configPath == "" {
				configPath = os.Getenv("CONVERTER_CONFIG")
			}
			var err error
			cfg, err = config.Load(configPath)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file (default $CONVERTER_CONFIG)")

	root.AddCommand(tuiCmd(), serveCmd(), convertCmd(), currenciesCmd(), favoritesCmd(), configCmd())
	return root.ExecuteContext(context.Background())
}

// build wires the application with a private metrics registry.
func build(ctx context.Context) (*app.App, error) {
	return app.Build(ctx, cfg, prometheus.NewRegistry())
}
