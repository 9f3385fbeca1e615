package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"percentcalc/internal/calculator"
	"percentcalc/internal/observability"
	"percentcalc/internal/percent"
	"percentcalc/internal/present"
)

var (
	explain  bool
	copyOut  bool
	jsonOut  bool
	decrease bool
)

var (
	ofCmd     = newModeCmd("of <percent> <value>", "Compute X% of Y", percent.PercentOf)
	whatCmd   = newModeCmd("what <part> <whole>", "Compute what percent A is of B", percent.WhatPercent)
	applyCmd  = newModeCmd("apply <base> <percent>", "Increase or decrease a value by a percentage", percent.ApplyPercent)
	changeCmd = newModeCmd("change <from> <to>", "Compute the percent change between two values", percent.PercentChange)
)

func init() {
	for _, c := range []*cobra.Command{ofCmd, whatCmd, applyCmd, changeCmd} {
		c.Flags().BoolVarP(&explain, "explain", "e", false, "print how the result was computed")
		c.Flags().BoolVarP(&copyOut, "copy", "c", false, "copy the result line to the clipboard")
		c.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")
		rootCmd.AddCommand(c)
	}
	applyCmd.Flags().BoolVarP(&decrease, "decrease", "d", false, "subtract the percentage instead of adding it")
}

func newModeCmd(use, short string, mode percent.Mode) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(len(mode.Fields())),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMode(cmd, mode, args)
		},
	}
}

func runMode(cmd *cobra.Command, mode percent.Mode, args []string) error {
	in := make(percent.Input, len(args)+1)
	for i, f := range mode.Fields() {
		in[f.Name] = args[i]
	}
	if mode.TakesDirection() {
		in[percent.FieldDirection] = string(percent.Increase)
		if decrease {
			in[percent.FieldDirection] = string(percent.Decrease)
		}
	}

	var out present.Output
	res, err := calc.Calculate(mode, in)
	if err != nil {
		observability.Logger.Debug("calculation rejected", zap.String("mode", mode.String()), zap.Error(err))
		return err
	}
	out.Show(res)

	observability.Logger.Debug("calculation completed",
		zap.String("mode", mode.String()),
		zap.String("display", res.Display),
	)

	w := cmd.OutOrStdout()
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(calculator.NewCalcResponse(res)); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	} else {
		fmt.Fprintln(w, out.Text())
		if explain && out.Meta() != "" {
			fmt.Fprintln(w, out.Meta())
		}
	}

	if copyOut {
		if err := present.Copy(present.SystemClipboard{}, out); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), present.CopiedMessage)
	}

	return nil
}
