package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tradesim",
	Short: "Replay equity tick data through RSI/MACD signal strategies",
	Long: `Tradesim replays historical intraday tick exports through per-instrument
RSI/MACD signal engines trading against a simulated cash account.

It provides tools for:
  - Replaying tick CSV exports against intraday or long-term presets
  - Stop-loss and take-profit position management
  - Portfolio bookkeeping with a full order statement and run summary
  - Persisting runs to CSV files or a SQLite database`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
