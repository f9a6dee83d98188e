package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "finquant",
	Short: "A financial computation toolkit for option pricing and indicators",
	Long: `FinQuant is a financial computation toolkit written in Go.

It provides tools for:
  - Black-Scholes-Merton option pricing with full Greeks
  - Implied volatility solving
  - Exponential moving averages, batch and streaming
  - Scenario runs driven by YAML/JSON configuration
  - Journaling results to CSV or SQLite`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
