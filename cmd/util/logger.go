// Copyright 2025-2026, the go-reth authors.
// For license information, see https://github.com/Madmaxs2/reth/blob/master/LICENSE

package util

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/log"
)

func ToSlogLevel(str string) (slog.Level, error) {
	switch strings.ToLower(str) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	case "crit":
		return log.LevelCrit, nil
	default:
		return log.LevelInfo, fmt.Errorf("unknown log level %q", str)
	}
}

func SetLogger(logLevelStr string, logType string) error {
	logLevel, err := ToSlogLevel(logLevelStr)
	if err != nil {
		return err
	}

	var handler slog.Handler
	switch logType {
	case "plaintext":
		handler = log.NewTerminalHandler(io.Writer(os.Stderr), false)
	case "json":
		handler = log.JSONHandler(io.Writer(os.Stderr))
	default:
		return fmt.Errorf("unknown log type %q", logType)
	}

	glogger := log.NewGlogHandler(handler)
	glogger.Verbosity(logLevel)
	log.SetDefault(log.NewLogger(glogger))
	return nil
}
