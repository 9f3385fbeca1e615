package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"percentcalc/internal/percent"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the supported calculation modes and their inputs",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		for _, m := range percent.Modes {
			names := make([]string, 0, 3)
			for _, f := range m.Fields() {
				names = append(names, f.Name)
			}
			if m.TakesDirection() {
				names = append(names, "direction")
			}
			fmt.Fprintf(w, "%-13s %-26s %s\n", m, m.Title(), strings.Join(names, ", "))
		}
	},
}

func init() {
	rootCmd.AddCommand(modesCmd)
}
