package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Gantry.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Subtle gradient from teal to indigo
	s1 := termenv.String("   ____             _              ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String("  / ___| __ _ _ __ | |_ _ __ _   _ ").Foreground(p.Color("#38bdf8"))
	s3 := termenv.String(" | |  _ / _` | '_ \\| __| '__| | | |").Foreground(p.Color("#60a5fa"))
	s4 := termenv.String(" | |_| | (_| | | | | |_| |  | |_| |").Foreground(p.Color("#818cf8"))
	s5 := termenv.String("  \\____|\\__,_|_| |_|\\__|_|   \\__, |").Foreground(p.Color("#a78bfa"))
	s6 := termenv.String("                             |___/ ").Foreground(p.Color("#c084fc"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
