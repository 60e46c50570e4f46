package commands

import (
	"CurrencyConverter/internal/model"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func favoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Show or change favourite currencies",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the favourite currencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			printFavorites(cmd, a.Ctrl.Snapshot().Favorites.Codes())
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle CODE...",
		Short: "Add each code when absent, remove it when present",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			for _, arg := range args {
				if err := a.Ctrl.ToggleFavorite(cmd.Context(), model.NormalizeCode(arg)); err != nil {
					return fmt.Errorf("toggle %s: %w", arg, err)
				}
			}
			printFavorites(cmd, a.Ctrl.Snapshot().Favorites.Codes())
			return nil
		},
	})
	return cmd
}

func printFavorites(cmd *cobra.Command, codes []model.CurrencyCode) {
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = string(c)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " "))
}
