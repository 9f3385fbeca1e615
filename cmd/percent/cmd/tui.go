package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"percentcalc/internal/present"
	"percentcalc/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive calculator form",
	Long: `Opens the calculator as an interactive terminal form.

Keys:
  tab / shift+tab   next / previous mode
  up / down         move between inputs
  left / right      toggle increase / decrease (on the direction row)
  enter             calculate
  ctrl+y            copy the result
  ctrl+r            clear
  esc / ctrl+c      quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(tui.New(calc, present.SystemClipboard{}), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
