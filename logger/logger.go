package logger

import (
	"fmt"
	"sync/atomic"

	"github.com/automoto/firstperson/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// New builds a zap logger from cfg. Development mode uses zap's development
// preset with coloured levels; otherwise the production preset is used.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.Sampling = nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	switch cfg.Format {
	case "console", "":
		zapConfig.Encoding = "console"
	case "json":
		zapConfig.Encoding = "json"
	default:
		return nil, fmt.Errorf("log format %q: want console or json", cfg.Format)
	}

	return zapConfig.Build(zap.AddStacktrace(zapcore.ErrorLevel))
}

// Init builds the global logger from cfg.
func Init(cfg config.LogConfig) (*zap.Logger, error) {
	l, err := New(cfg)
	if err != nil {
		return nil, err
	}
	Set(l)
	return l, nil
}

// Set replaces the global logger. A nil logger restores the no-op logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	global.Store(l)
}

// L returns the global logger. It discards everything until Init or Set.
func L() *zap.Logger {
	return global.Load()
}

// Named returns a child of the global logger for one subsystem.
func Named(name string) *zap.Logger {
	return L().Named(name)
}
