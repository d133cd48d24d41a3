// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger returns a console logger on dst for diagnostics. Worksheet
// output never goes through it. Default level is warn; verbose enables
// debug and quiet silences everything.
func NewLogger(dst io.Writer, quiet, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case quiet:
		level = zerolog.Disabled
	case verbose:
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{
		Out:          dst,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(cw).Level(level)
}

func Warnf(log zerolog.Logger, format string, a ...any) {
	log.Warn().Msgf(format, a...)
}
