// Package cli implements the batch behaviors behind the abacus commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/abacus"
	"github.com/aretw0/abacus/pkg/roman"
)

// RunConvert converts each input in its classified direction, reporting
// per-item errors and continuing with the remaining inputs.
//
// With no inputs it sweeps the full encodable range, printing both directions
// for every value (the reference's self-check mode).
func RunConvert(ctx context.Context, svc *abacus.Service, out io.Writer, inputs []string) error {
	if len(inputs) == 0 {
		return sweep(ctx, svc, out)
	}

	for _, input := range inputs {
		output, _, err := svc.Convert(ctx, input)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "%s -> %s\n", input, output)
	}
	return nil
}

// sweep prints the full round trip for every value in 1..roman.Max.
func sweep(ctx context.Context, svc *abacus.Service, out io.Writer) error {
	for n := 1; n <= roman.Max; n++ {
		numeral, err := svc.ToRoman(ctx, n)
		if err != nil {
			return fmt.Errorf("sweep failed at %d: %w", n, err)
		}
		fmt.Fprintf(out, "%d -> %s\n", n, numeral)

		value, err := svc.FromRoman(ctx, numeral)
		if err != nil {
			return fmt.Errorf("sweep failed at %q: %w", numeral, err)
		}
		fmt.Fprintf(out, "%s -> %d\n", numeral, value)
	}
	return nil
}

// BuildTable renders the reference table for [from, to] as a markdown table.
func BuildTable(from, to int) (string, error) {
	if from > to {
		return "", fmt.Errorf("invalid range: %d..%d", from, to)
	}

	var b []byte
	b = append(b, "| Arabic | Roman |\n|---:|---|\n"...)
	for n := from; n <= to; n++ {
		numeral, err := roman.ToRoman(n)
		if err != nil {
			return "", err
		}
		b = append(b, ("| " + strconv.Itoa(n) + " | " + numeral + " |\n")...)
	}
	return string(b), nil
}
