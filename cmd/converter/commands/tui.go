package commands

import (
	"CurrencyConverter/internal/ui"
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive converter (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context())
		},
	}
}

func runTUI(ctx context.Context) error {
	logFile, err := tea.LogToFile(cfg.Log.File, "converter")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	a, err := build(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	p := tea.NewProgram(ui.New(ctx, a.Ctrl, a), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
