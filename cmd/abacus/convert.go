package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/abacus"
	loamAdapter "github.com/aretw0/abacus/internal/adapters/loam"
	"github.com/aretw0/abacus/internal/cli"
)

var convertCmd = &cobra.Command{
	Use:   "convert [inputs...]",
	Short: "Convert between Roman numerals and Arabic integers",
	Long: `Classifies each input and converts it in the matching direction:
Roman numerals decode to integers, digit strings encode to numerals.
Invalid items are reported and the remaining inputs keep converting.

With no inputs, prints the full 1..4000 round-trip sweep.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)

		opts := []abacus.Option{abacus.WithLogger(logger)}

		if dir, _ := cmd.Flags().GetString("history"); dir != "" {
			journal, err := loamAdapter.New(dir)
			if err != nil {
				fmt.Printf("Error opening history: %v\n", err)
				os.Exit(1)
			}
			opts = append(opts, abacus.WithHistory(journal))
		}

		svc := abacus.New(opts...)

		if err := cli.RunConvert(cmd.Context(), svc, os.Stdout, args); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().String("history", "", "Directory to journal conversions in")
}
