package logger

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/uniedit/reduxkit/internal/config"
)

// Options holds logger construction options.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output zapcore.WriteSyncer
}

// FromConfig converts the log section of the library config into Options.
func FromConfig(cfg config.LogConfig) *Options {
	return &Options{
		Level:  cfg.Level,
		Format: cfg.Format,
	}
}

// New creates a zap logger with the given options.
func New(opts *Options) *zap.Logger {
	if opts == nil {
		opts = &Options{Level: "warn", Format: "json"}
	}
	out := opts.Output
	if out == nil {
		out = zapcore.Lock(os.Stderr)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch strings.ToLower(opts.Format) {
	case "console", "text":
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	return zap.New(zapcore.NewCore(enc, out, ParseLevel(opts.Level)))
}

// ParseLevel parses a log level string. Unknown values fall back to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

var (
	defaultOnce   sync.Once
	defaultLogger *zap.Logger
)

// Default returns the process-wide logger built from config.Load.
func Default() *zap.Logger {
	defaultOnce.Do(func() {
		defaultLogger = build(nil)
	})
	return defaultLogger
}

// build creates a logger from the loaded config. When the config cannot be
// loaded it still writes to out at warn level and logs the load failure.
func build(out zapcore.WriteSyncer) *zap.Logger {
	cfg, err := config.Load()
	if err != nil {
		l := New(&Options{Level: "warn", Format: "json", Output: out})
		l.Warn("reduxkit config not loaded, using defaults", zap.Error(err))
		return l
	}

	opts := FromConfig(cfg.Log)
	opts.Output = out
	return New(opts)
}
