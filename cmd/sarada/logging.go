package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

const (
	logDir      = "logs"
	logFileName = "sarada.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB

	envLogLevel = "SARADA_LOG_LEVEL"
)

// setupLogging routes zerolog and the standard logger to logs/sarada.log when debug is set
// The terminal owns stdout, so with debug off every log is discarded
// Returns the open log file, nil when logging is disabled or the file cannot be opened
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		zlog.Logger = zerolog.New(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		zlog.Logger = zerolog.New(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		zlog.Logger = zerolog.New(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	level := zerolog.DebugLevel
	if v := os.Getenv(envLogLevel); v != "" {
		if lvl, err := zerolog.ParseLevel(v); err == nil {
			level = lvl
		}
	}
	zlog.Logger = zerolog.New(f).Level(level).With().Timestamp().Logger()

	return f
}

// rotateLog renames an oversized log with a timestamp suffix
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(logPath)
	base := logPath[:len(logPath)-len(ext)]
	rotated := fmt.Sprintf("%s.%s%s", base, time.Now().Format("20060102-150405"), ext)
	_ = os.Rename(logPath, rotated)
}
