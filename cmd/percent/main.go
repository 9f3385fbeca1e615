// Package main is the entry point for the percent CLI.
package main

import (
	"os"

	"percentcalc/cmd/percent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
