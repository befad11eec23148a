package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/abacus/pkg/pascal"
)

var pascalCmd = &cobra.Command{
	Use:   "pascal <n> [m...]",
	Short: "Print the n-th row of Pascal's triangle",
	Long: `Computes row n of Pascal's triangle. Any further arguments are element
indices to look up within the row; invalid indices are reported per item.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Error: %q is not a row number\n", args[0])
			os.Exit(1)
		}

		row, err := pascal.NewRow(n)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		values := make([]string, 0, n+1)
		for _, v := range row.Values() {
			values = append(values, strconv.Itoa(v))
		}
		fmt.Printf("Row %d: %s\n", n, strings.Join(values, " "))

		for _, arg := range args[1:] {
			m, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Printf("%s - not a valid index\n", arg)
				continue
			}
			element, err := row.Element(m)
			if err != nil {
				fmt.Printf("%d - %v\n", m, err)
				continue
			}
			fmt.Printf("%d - %d\n", m, element)
		}
	},
}

func init() {
	rootCmd.AddCommand(pascalCmd)
}
