/*
Package abacus converts between Arabic integers and canonical Roman numerals,
and bundles two sibling calculators: Pascal-triangle rows and plane-figure
geometry.

The pure algorithms live in pkg/roman, pkg/pascal and pkg/figures and have no
dependencies; this root package wraps them in a Service that adds the
operational concerns: result caching, conversion history, lifecycle hooks for
observability, and structured logging.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/abacus"
	)

	func main() {
		svc := abacus.New()

		ctx := context.Background()
		numeral, err := svc.ToRoman(ctx, 1994)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(numeral) // MCMXCIV

		// Auto-classified conversion: Roman input decodes, digits encode.
		out, direction, err := svc.Convert(ctx, "MMXXIV")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(direction, out) // from_roman 2024
	}

Adapters under internal/ expose the Service over HTTP (chi), MCP, and a cobra
CLI; caching can be backed by memory or Redis via the ports.Cache interface.
*/
package abacus
