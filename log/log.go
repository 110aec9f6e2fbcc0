// Package log configures the process-wide zerolog logger used by the CLI
// and the xlsx interchange layer. The core sheetcalc engine never imports
// this package: a formula-evaluation library has no business logging on
// every cell read.
package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger to write human-readable,
// colorized output to w at the given level. Call it once, early in main.
func Init(w io.Writer, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(console).With().Timestamp().Logger()
}

// Default configures logging to stderr at the info level, for callers
// (tests, simple scripts) that don't need Init's verbosity knob.
func Default() {
	Init(os.Stderr, false)
}
