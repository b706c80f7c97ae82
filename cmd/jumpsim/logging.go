package main

import (
	"fmt"
	"io"
	"os"

	cfg "github.com/automoto/jumpcore/config"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogging applies the level and routes output to a rotating file when
// one is configured. The returned func flushes and closes it.
func setupLogging(c cfg.LogConfig) (func(), error) {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if c.File == "" {
		log.SetOutput(os.Stderr)
		return func() {}, nil
	}

	rotator := &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
	}
	log.SetOutput(io.MultiWriter(os.Stderr, rotator))
	return func() { _ = rotator.Close() }, nil
}
