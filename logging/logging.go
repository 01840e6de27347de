package logging

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var (
	ErrInvalidLogOutput = errors.New("logging: unknown output format")
	ErrInvalidLogLevel  = errors.New("logging: unknown level")
)

type Config struct {
	LogOutput string
	LogLevel  string
}

// Provide builds the logger used by the command line tool.  Diagnostics go to
// stderr unless asked otherwise; stdout usually carries the ciphertext.
func Provide(cfg Config) (zerolog.Logger, error) {
	var output io.Writer
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMicro

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), ErrInvalidLogLevel
	}

	switch cfg.LogOutput {
	case "console", "":
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	case "stdout":
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339, NoColor: true}
	case "stderr":
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339, NoColor: true}
	case "json":
		output = os.Stderr
	default:
		return zerolog.Nop(), ErrInvalidLogOutput
	}

	return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
}
