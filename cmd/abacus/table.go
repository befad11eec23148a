package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/abacus/internal/cli"
	"github.com/aretw0/abacus/internal/presentation/tui"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print a Roman numeral reference table",
	Long: `Renders a markdown table of Arabic values and their canonical Roman
numerals. The table is styled when stdout is a terminal and emitted as plain
markdown when piped.`,
	Run: func(cmd *cobra.Command, args []string) {
		from, _ := cmd.Flags().GetInt("from")
		to, _ := cmd.Flags().GetInt("to")

		table, err := cli.BuildTable(from, to)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		render := tui.NewRenderer()
		out, err := render(table)
		if err != nil {
			// Fall back to the raw markdown if styling fails.
			out = table
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().Int("from", 1, "First value in the table")
	tableCmd.Flags().Int("to", 100, "Last value in the table")
}
