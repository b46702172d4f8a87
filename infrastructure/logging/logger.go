package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const logFileName = "booking.log"

// Config controls where and how much we log
type Config struct {
	Dir   string
	Debug bool
	// Console receives a copy of every line; nil means stdout
	Console io.Writer
}

// Setup returns a logger writing to the console and <Dir>/booking.log, plus
// a cleanup that closes the file
func Setup(cfg Config) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	console := cfg.Console
	if console == nil {
		console = os.Stdout
	}

	if cfg.Dir == "" {
		logger.SetOutput(console)
		return logger, func() error { return nil }, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(cfg.Dir, logFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger.SetOutput(io.MultiWriter(console, f))
	logger.Debugf("Logging to %s", path)

	return logger, f.Close, nil
}
