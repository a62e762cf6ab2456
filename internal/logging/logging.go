// Package logging wires zerolog to a console writer and a rotating file
// writer, adapted verbatim in spirit from the reconciliation service's
// internal/config/logger.go.
package logging

import (
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"worddist/internal/settings"
)

// Setup builds a zerolog.Logger that writes human-readable output to
// stdout and rotating JSON lines to s.LogFile, and installs it as the
// package-level zerolog/log logger. An unparseable LogLevel falls back to
// info rather than failing startup.
func Setup(s settings.Settings) zerolog.Logger {
	if dir := filepath.Dir(s.LogFile); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	file := &lumberjack.Logger{
		Filename:   s.LogFile,
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}

	mw := zerolog.MultiLevelWriter(console, file)
	lvl, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	logger := zerolog.New(mw).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}
