package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// ValidLogFormats lists the accepted --log-format values.
var ValidLogFormats = map[string]bool{
	"console": true,
	"json":    true,
}

// LogFormatNames returns the valid log formats in sorted order.
func LogFormatNames() []string {
	names := lo.Keys(ValidLogFormats)
	slices.Sort(names)
	return names
}

// newLogger builds the diagnostic logger written to w. Console output is
// coloured only when w is a terminal.
func newLogger(format string, verbose bool, w io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	switch strings.ToLower(format) {
	case "json":
		return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
	case "console", "":
		cw := zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(w),
		}
		return zerolog.New(cw).Level(level).With().Timestamp().Logger(), nil
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q: must be one of: %s", format, strings.Join(LogFormatNames(), ", "))
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
