// Package cmd provides the CLI commands for percent.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"percentcalc/internal/config"
	"percentcalc/internal/observability"
	"percentcalc/internal/percent"
)

var (
	cfgFile string
	locale  string
	verbose bool

	// calc is built from the resolved configuration before any subcommand runs.
	calc *percent.Calculator
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "percent",
	Short: "Percentage calculator",
	Long: `percent computes percentages from the command line or an interactive form.

Examples:
  percent of 15 200          # 15% of 200 = 30
  percent what 30 200        # 30 is 15% of 200
  percent apply 100 15       # 100 increase 15% = 115 (+15)
  percent apply --decrease 100 15
  percent change 80 100      # 80 → 100 = 25% increase
  percent tui

Negative numbers must follow "--", e.g. percent change -- -50 -25`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML config file (default $PERCENT_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "BCP 47 locale for number display (default from config, \"en\")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	level := "error"
	if verbose {
		level = "debug"
	}
	if err := observability.InitLogger(level); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	if locale != "" {
		cfg.Locale = locale
	}
	formatter, err := percent.NewFormatterForLocale(cfg.Locale)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
	}
	calc = percent.NewCalculator(formatter)

	return nil
}
