// Package logger provides structured, context-aware logging for the API.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the logging interface handed to every component. Fields are
// key/value pairs; context fields (request id, user id) are appended
// automatically.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	Fatal(ctx context.Context, msg string, fields ...interface{})

	// With returns a logger that always carries the given fields.
	With(fields ...interface{}) Logger
}

type zapLogger struct {
	z *zap.SugaredLogger
}

var _ Logger = (*zapLogger)(nil)

// New creates a Logger configured through functional options.
func New(opts ...Option) (Logger, error) {
	options := defaultOptions()
	for _, o := range opts {
		o(options)
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:   "msg",
		LevelKey:     "level",
		TimeKey:      "ts",
		CallerKey:    "caller",
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	if options.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	ws, err := buildWriteSyncer(options)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder, ws, levelFromString(options.Level))
	z := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return &zapLogger{z: z.Sugar()}, nil
}

// NewNop returns a Logger that discards everything. Intended for tests.
func NewNop() Logger {
	return &zapLogger{z: zap.NewNop().Sugar()}
}

func buildWriteSyncer(options *Options) (zapcore.WriteSyncer, error) {
	if options.File == "" {
		return zapcore.Lock(zapcore.AddSync(options.output())), nil
	}
	if !options.Rotation.Enabled {
		return zapcore.AddSync(&lumberjack.Logger{Filename: options.File}), nil
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   options.File,
		MaxSize:    options.Rotation.MaxSize,
		MaxBackups: options.Rotation.MaxBackups,
		MaxAge:     options.Rotation.MaxAge,
		Compress:   options.Rotation.Compress,
	}), nil
}

func levelFromString(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *zapLogger) log(ctx context.Context, fn func(msg string, kv ...interface{}), msg string, fields []interface{}) {
	kv := FromContext(ctx)
	kv = append(kv, fields...)
	fn(msg, kv...)
}

func (l *zapLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, l.z.Debugw, msg, fields)
}

func (l *zapLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, l.z.Infow, msg, fields)
}

func (l *zapLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, l.z.Warnw, msg, fields)
}

func (l *zapLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, l.z.Errorw, msg, fields)
}

func (l *zapLogger) Fatal(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, l.z.Fatalw, msg, fields)
}

func (l *zapLogger) With(fields ...interface{}) Logger {
	return &zapLogger{z: l.z.With(fields...)}
}
