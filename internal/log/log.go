package log

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = newLogger(zerolog.InfoLevel, os.Stdout)
}

// Init reconfigures the process logger. With debug set, per-stage detail is
// emitted alongside the normal progress lines.
func Init(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger = newLogger(level, os.Stdout)
}

func newLogger(level zerolog.Level, out io.Writer) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
}

func Debugf(format string, args ...any) {
	logger.Debug().Msg(fmt.Sprintf(format, args...))
}

func Infof(format string, args ...any) {
	logger.Info().Msg(fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...any) {
	logger.Warn().Msg(fmt.Sprintf(format, args...))
}

func Errorf(format string, args ...any) {
	logger.Error().Msg(fmt.Sprintf(format, args...))
}

// Artifact records one written output file with its pixel dimensions.
func Artifact(family, path string, widthPx, heightPx int) {
	logger.Info().
		Str("family", family).
		Int("w", widthPx).
		Int("h", heightPx).
		Msg(path)
}
