package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/abacus/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "abacus",
	Short: "Abacus converts Roman numerals, Pascal rows and plane figures",
	Long: `Abacus is a small calculator toolbox: a bidirectional Roman/Arabic
numeral converter, a Pascal-triangle row generator and a plane-figure
geometry calculator. It can run as a CLI, an HTTP JSON API or an MCP server.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// newLogger builds the application logger honoring the --debug flag.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	return logging.New(level)
}
