package ui

import (
	"os"

	"golang.org/x/term"
)

// ShouldUseColor reports whether CLI output should be colorized.
// Respects NO_COLOR, dumb terminals, and non-TTY stdout.
func ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive reports whether stdin and stdout are both terminals,
// which the interactive pet view requires.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
