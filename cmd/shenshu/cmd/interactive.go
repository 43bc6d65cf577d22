package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/shenshu/internal/tui"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch the interactive terminal UI.

Views:
  1. 巧連神數   name divination
  2. 八字排盘   birth chart

Controls:
  Enter    Submit
  Ctrl+Y   Copy the reading
  Tab      Toggle sidebar focus
  Ctrl+C   Quit`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	d, err := newDiviner()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		tui.NewApp(d, appConfig),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
