// Package xlog is the structured logger used across the service. It wraps a
// single zap logger and enriches every entry with the correlation id carried
// in the context.
package xlog

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog/ctxdata"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const DefaultLogger = "default"

type Field = zap.Field

// Loggers holds every initialized *zap.Logger by name; DefaultLogger is the
// one used by the package level helpers.
var Loggers sync.Map

type options struct {
	level      zapcore.Level
	env        string
	output     string
	caller     bool
	callerSkip int
}

type Option func(*options)

func DebugLogLevel() Option { return func(o *options) { o.level = zapcore.DebugLevel } }

func InfoLogLevel() Option { return func(o *options) { o.level = zapcore.InfoLevel } }

// WithLogLevel parses a textual level, falling back to info.
func WithLogLevel(level string) Option {
	return func(o *options) {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			lvl = zapcore.InfoLevel
		}
		o.level = lvl
	}
}

// WithLogToOption selects the sink: "stdout" (default) or "stderr".
func WithLogToOption(output string) Option { return func(o *options) { o.output = output } }

func WithLogEnvOption(env string) Option { return func(o *options) { o.env = env } }

func WithCaller(enabled bool) Option { return func(o *options) { o.caller = enabled } }

func AddCallerSkip(skip int) Option { return func(o *options) { o.callerSkip = skip } }

// Init builds the default logger for the named application.
func Init(appName string, opts ...Option) {
	o := &options{level: zapcore.InfoLevel, output: "stdout"}
	for _, opt := range opts {
		opt(o)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	var encoder zapcore.Encoder
	if o.env == "local" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	sink := zapcore.Lock(os.Stdout)
	if o.output == "stderr" {
		sink = zapcore.Lock(os.Stderr)
	}

	zapOpts := []zap.Option{zap.Fields(zap.String("app", appName))}
	if o.caller {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(o.callerSkip))
	}

	logger := zap.New(zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(o.level)), zapOpts...)
	Loggers.Store(DefaultLogger, logger)
}

// InitForTest installs a no-op logger so tests do not write to stdout.
func InitForTest() {
	Loggers.Store(DefaultLogger, zap.NewNop())
}

// InitObserver installs an in-memory logger and returns its recorded entries.
func InitObserver(level zapcore.Level) *observer.ObservedLogs {
	core, logs := observer.New(level)
	Loggers.Store(DefaultLogger, zap.New(core))
	return logs
}

// bootstrap writes to stderr until Init runs, so failures while loading the
// configuration are still reported.
var bootstrap = sync.OnceValue(func() *zap.Logger {
	return newBootstrapLogger(zapcore.Lock(os.Stderr))
})

func newBootstrapLogger(sink zapcore.WriteSyncer) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	return zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, zap.NewAtomicLevelAt(zapcore.InfoLevel)))
}

// Logger returns the default logger, or the stderr bootstrap logger when Init
// was never called.
func Logger() *zap.Logger {
	if l, ok := Loggers.Load(DefaultLogger); ok {
		return l.(*zap.Logger)
	}
	return bootstrap()
}

func Sync() {
	_ = Logger().Sync()
}

func withContext(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	if id := ctxdata.GetCorrelationId(ctx); id != "" {
		fields = append(fields, zap.String("correlation_id", id))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	Logger().Debug(msg, withContext(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	Logger().Info(msg, withContext(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	Logger().Warn(msg, withContext(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	Logger().Error(msg, withContext(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	Debug(ctx, fmt.Sprintf(format, args...))
}

func Infof(ctx context.Context, format string, args ...any) {
	Info(ctx, fmt.Sprintf(format, args...))
}

func Warnf(ctx context.Context, format string, args ...any) {
	Warn(ctx, fmt.Sprintf(format, args...))
}

func Errorf(ctx context.Context, format string, args ...any) {
	Error(ctx, fmt.Sprintf(format, args...))
}

func Fatalf(ctx context.Context, format string, args ...any) {
	Logger().Fatal(fmt.Sprintf(format, args...), withContext(ctx, nil)...)
}

func String(key, val string) Field { return zap.String(key, val) }

func Int(key string, val int) Field { return zap.Int(key, val) }

func Any(key string, val any) Field { return zap.Any(key, val) }

func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }

func Err(err error) Field { return zap.Error(err) }
