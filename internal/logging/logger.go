// Package logging builds the file-backed logger for dailyverse. The app runs
// full-screen in the terminal, so nothing may be written to stdout or stderr;
// all logs go to a dated file under the state directory. When debug mode is
// off the logger is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names used with Logger.Named.
const (
	CategoryBoot    = "boot"
	CategoryAPI     = "api"
	CategoryNav     = "nav"
	CategoryGesture = "gesture"
	CategoryAdmin   = "admin"
	CategoryCache   = "cache"
	CategoryTheme   = "theme"
)

// Options controls logger construction.
type Options struct {
	Dir   string // state directory; logs land in Dir/logs
	Debug bool   // when false New returns a no-op logger
	Level string // debug/info/warn/error, defaults to info
}

// New creates the application logger. The returned close function flushes
// and must be called at shutdown.
func New(opts Options) (*zap.Logger, func(), error) {
	if !opts.Debug {
		return zap.NewNop(), func() {}, nil
	}

	logsDir := filepath.Join(opts.Dir, "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	// Date prefix keeps rotation a matter of deleting old files.
	name := fmt.Sprintf("%s_dailyverse.log", time.Now().Format("2006-01-02"))
	file, err := os.OpenFile(filepath.Join(logsDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(file),
		parseLevel(opts.Level),
	)

	logger := zap.New(core)
	closeFn := func() {
		_ = logger.Sync()
		_ = file.Close()
	}
	return logger, closeFn, nil
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
