package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for Abacus.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Using a subtle gradient-like color scheme (Indigo/Violet)
	s1 := termenv.String("        _                         ").Foreground(p.Color("#818cf8"))
	s2 := termenv.String("   __ _| |__   __ _  ___ _   _ ___").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String("  / _` | '_ \\ / _` |/ __| | | / __|").Foreground(p.Color("#c084fc"))
	s4 := termenv.String(" | (_| | |_) | (_| | (__| |_| \\__ \\").Foreground(p.Color("#e879f9"))
	s5 := termenv.String("  \\__,_|_.__/ \\__,_|\\___|\\__,_|___/").Foreground(p.Color("#f472b6"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Printf("  v%s\n", version)
	fmt.Println()
}
