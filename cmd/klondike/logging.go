package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/klondike/constants"
)

// setupLogging routes log and slog output to dir/klondike.log when debug is set and
// discards it otherwise. The screen owns stdout, so nothing is ever written there.
// The returned file is nil when logging is disabled
func setupLogging(debug bool, dir string) (*os.File, *slog.Logger) {
	if !debug {
		logger := slog.New(slog.DiscardHandler)
		slog.SetDefault(logger)
		log.SetOutput(io.Discard)
		return nil, logger
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil, slog.New(slog.DiscardHandler)
	}

	logPath := filepath.Join(dir, constants.LogFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil, slog.New(slog.DiscardHandler)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	return f, logger
}

// rotateLog renames an oversized log to a timestamped sibling
func rotateLog(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= constants.MaxLogSize {
		return
	}
	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	_ = os.Rename(path, rotated)
}
