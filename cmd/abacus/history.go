package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	loamAdapter "github.com/aretw0/abacus/internal/adapters/loam"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled conversions",
	Long:  `Lists the conversions recorded in a journal directory, oldest first.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")

		journal, err := loamAdapter.New(dir)
		if err != nil {
			fmt.Printf("Error opening history: %v\n", err)
			os.Exit(1)
		}

		entries, err := journal.List(cmd.Context())
		if err != nil {
			fmt.Printf("Error reading history: %v\n", err)
			os.Exit(1)
		}

		if len(entries) == 0 {
			fmt.Println("No conversions recorded.")
			return
		}

		for _, e := range entries {
			fmt.Printf("%s  %-10s  %s -> %s\n",
				e.At.Format(time.RFC3339), e.Direction, e.Input, e.Output)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().String("dir", ".", "Journal directory")
}
