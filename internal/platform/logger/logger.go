package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.RWMutex
	sugar *zap.SugaredLogger
)

func init() {
	sugar = build("info", "console").Sugar()
}

// Init replaces the package logger. Level is one of debug/info/warn/error,
// encoding is "json" or "console".
func Init(level, encoding string) {
	l := build(level, encoding)
	mu.Lock()
	sugar = l.Sugar()
	mu.Unlock()
}

// Replace swaps in an arbitrary zap logger, mainly so tests can observe output.
func Replace(l *zap.Logger) {
	mu.Lock()
	sugar = l.Sugar()
	mu.Unlock()
}

func Sync() {
	_ = current().Sync()
}

func build(level, encoding string) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding != "json" {
		encoding = "console"
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(parseLevel(level)),
		Encoding:          encoding,
		EncoderConfig:     encCfg,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
	}
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func parseLevel(lvl string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
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

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// Info logs msg with optional key/value pairs.
func Info(msg string, kv ...interface{}) {
	current().Infow(msg, kv...)
}

func Debug(msg string, kv ...interface{}) {
	current().Debugw(msg, kv...)
}

func Warn(msg string, kv ...interface{}) {
	current().Warnw(msg, kv...)
}

// Error logs msg at error level; err is attached when non-nil.
func Error(msg string, err error, kv ...interface{}) {
	if err != nil {
		kv = append(kv, "error", err)
	}
	current().Errorw(msg, kv...)
}
