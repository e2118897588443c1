package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/tatianab/text-adventure/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the application logger. Logs go to cfg.LogFile as JSON lines;
// with no file configured the returned logger discards everything. The
// caller closes the returned io.Closer on shutdown.
func New(cfg *config.Config) (zerolog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(f).Level(cfg.LogLevel).With().Timestamp().Logger()
	return logger, f, nil
}

// WithError adds error to logger context
func WithError(logger zerolog.Logger, err error) zerolog.Logger {
	return logger.With().Err(err).Logger()
}
