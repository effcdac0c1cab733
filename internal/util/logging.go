// Package util provides common utilities including logging helpers,
// data directory resolution, and small arithmetic helpers.
package util

import (
	"io"
	"log"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// LogWarn logs a recoverable condition the user will not see on screen.
func LogWarn(format string, args ...any) {
	log.Printf("warn: "+format, args...)
}

// DiscardLogs silences the standard logger, used when the TUI owns the
// terminal and file logging is turned off.
func DiscardLogs() {
	log.SetOutput(io.Discard)
}
