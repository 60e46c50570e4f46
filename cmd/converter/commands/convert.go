package commands

import (
	"CurrencyConverter/internal/converter"
	"CurrencyConverter/internal/model"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func convertCmd() *cobra.Command {
	var amount, from, to string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an amount once and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if cmd.Flags().Changed("amount") {
				a.Ctrl.SetAmount(amount)
			}
			a.LoadCurrencies(cmd.Context())
			if err := applySelection(a.Ctrl, model.NormalizeCode(from), model.NormalizeCode(to)); err != nil {
				return err
			}

			s := a.Ctrl.Convert(cmd.Context())
			if s.Err != nil {
				return errors.New(s.Err.Message())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Converted Amount: %s\n", s.Result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "amount to convert (default converter.default_amount)")
	cmd.Flags().StringVarP(&from, "from", "f", "", "source currency (default converter.default_from)")
	cmd.Flags().StringVarP(&to, "to", "t", "", "target currency (default converter.default_to)")
	return cmd
}

// applySelection moves the selectors to from/to, swapping first when a
// requested code is currently held by the opposite selector.
func applySelection(ctrl *converter.Controller, from, to model.CurrencyCode) error {
	s := ctrl.Snapshot()
	switch {
	case from != "" && from == s.To:
		ctrl.Swap()
	case from == "" && to != "" && to == s.From:
		ctrl.Swap()
	}
	if from != "" {
		if err := ctrl.Select(converter.From, from); err != nil {
			return fmt.Errorf("select %s: %w", from, err)
		}
	}
	if to != "" {
		if err := ctrl.Select(converter.To, to); err != nil {
			return fmt.Errorf("select %s: %w", to, err)
		}
	}
	return nil
}
