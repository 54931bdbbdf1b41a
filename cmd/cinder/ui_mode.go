package main

import (
	"fmt"
	"os"
	"strings"
)

// readUIMode resolves the --ui flag: on forces the interactive progress
// view, off suppresses it, auto enables it only when stdout is a TTY.
func readUIMode(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		return isTerminal(os.Stdout), nil
	default:
		return false, fmt.Errorf("unsupported ui mode %q (must be auto, on, or off)", value)
	}
}
