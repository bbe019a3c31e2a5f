// Package logging builds the application logger. The terminal belongs to
// the game screen, so logs go to a rotated file.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/samdwyer/torchcrawl/internal/config"
)

// New returns a logger configured from cfg and a function that closes the
// underlying file.
func New(cfg config.LogConfig) (*logrus.Logger, func() error, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	if cfg.File == "" {
		logger.SetOutput(io.Discard)
		return logger, func() error { return nil }, nil
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
	logger.SetOutput(file)
	return logger, file.Close, nil
}
