// Package log provides structured logging for plazactl built on zap.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format selects the log output encoding.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Logger wraps zap with the configuration plazactl uses.
type Logger struct {
	*zap.Logger
}

// New creates a Logger for the given level ("debug", "info", "warn",
// "error") and format. Unknown values fall back to info/console.
func New(level, format string) *Logger {
	lvl := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(level); err == nil {
		lvl = parsed
	}

	var encoder zapcore.Encoder
	switch format {
	case FormatJSON:
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "ts"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
	default:
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), lvl)
	return &Logger{Logger: zap.New(core)}
}

// Nop returns a logger that discards everything. Used in tests and as
// the default when no logger is injected.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// With returns a child logger with the given fields attached.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...)}
}

// Sync flushes buffered entries. Sync errors on stderr are ignored,
// zap returns ENOTTY when stderr is a terminal.
func (l *Logger) Sync() {
	_ = l.Logger.Sync()
}
