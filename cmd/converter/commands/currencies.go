package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func currenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List the supported currency codes, favourites first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if len(a.LoadCurrencies(cmd.Context())) == 0 {
				return errors.New("no currencies available")
			}
			s := a.Ctrl.Snapshot()
			for _, c := range s.Favorites.Codes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s *\n", c)
			}
			for _, c := range s.Currencies {
				if !s.Favorites.Contains(c) {
					fmt.Fprintln(cmd.OutOrStdout(), c)
				}
			}
			return nil
		},
	}
}
