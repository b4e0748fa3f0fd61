package main

import (
	"fmt"
	"os"
)

var verbose bool

func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format, args...)
}

// debugf logs only in verbose mode.
func debugf(format string, args ...any) {
	if verbose {
		logf(format, args...)
	}
}
