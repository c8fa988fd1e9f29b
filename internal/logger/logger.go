// Package logger holds the process-wide Zap logger.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.RWMutex
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the global logger. "production" logs JSON at info level,
// anything else logs console output at debug level. LOG_LEVEL overrides the
// level in both cases. Only the first call has an effect.
func Init(env string) {
	once.Do(func() {
		set(build(env, os.Getenv("LOG_LEVEL")))
	})
}

func build(env, level string) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	if env == "production" {
		cfg = zap.NewProductionConfig()
	}
	if level != "" {
		if lvl, err := zapcore.ParseLevel(level); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	base, err := cfg.Build()
	if err != nil {
		base = zap.NewNop()
	}
	return base.Sugar().Named("brokerfolio")
}

func set(l *zap.SugaredLogger) {
	mu.Lock()
	sugar = l
	mu.Unlock()
}

// Get returns the global sugared logger, initializing a development logger
// on first use.
func Get() *zap.SugaredLogger {
	mu.RLock()
	l := sugar
	mu.RUnlock()
	if l != nil {
		return l
	}
	Init("development")
	mu.Lock()
	defer mu.Unlock()
	if sugar == nil {
		sugar = build("development", "")
	}
	return sugar
}

// Replace swaps the global logger and returns a function restoring the previous one.
func Replace(l *zap.SugaredLogger) func() {
	mu.Lock()
	prev := sugar
	sugar = l
	mu.Unlock()
	return func() { set(prev) }
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if l := Get(); l != nil {
		_ = l.Sync()
	}
}
