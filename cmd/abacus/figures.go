package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/abacus/pkg/figures"
)

var figuresCmd = &cobra.Command{
	Use:   "figures <spec...>",
	Short: "Compute areas and perimeters of plane figures",
	Long: `Reads a stream of figure descriptions and prints each figure's area
and perimeter:

  o <radius>                      circle
  p <side>                        regular pentagon
  s <side>                        regular hexagon
  c <s1> <s2> <s3> <s4> <angle>   quadrilateral (recognized as square,
                                  rectangle or rhombus)
  c <side> <angle>                quadrilateral shorthand

Example: abacus figures o 2 c 3 3 3 3 90`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		figs, err := figures.Parse(args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		for _, f := range figs {
			fmt.Printf("Figure: %s\n", f.Name())
			fmt.Printf("Area: %g\n", f.Area())
			fmt.Printf("Perimeter: %g\n", f.Perimeter())
			fmt.Println("------------------------")
		}
	},
}

func init() {
	rootCmd.AddCommand(figuresCmd)
}
