package logging

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap.SugaredLogger to the Logger interface.
type ZapLogger struct {
	l *zap.SugaredLogger
}

// NewZapLogger wraps an existing sugared logger.
func NewZapLogger(l *zap.SugaredLogger) *ZapLogger {
	return &ZapLogger{l: l}
}

// NewProductionZapLogger builds a JSON logger writing to stdout with
// ISO-8601 timestamps, and returns it together with its flush function.
func NewProductionZapLogger(level zapcore.Level) (*ZapLogger, func()) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		level,
	)

	l := zap.New(core)
	return NewZapLogger(l.Sugar()), func() { _ = l.Sync() }
}

func (z *ZapLogger) Debug(ctx context.Context, msg string, args ...any) {
	z.l.Debugw(msg, args...)
}

func (z *ZapLogger) Info(ctx context.Context, msg string, args ...any) {
	z.l.Infow(msg, args...)
}

func (z *ZapLogger) Warn(ctx context.Context, msg string, args ...any) {
	z.l.Warnw(msg, args...)
}

func (z *ZapLogger) Error(ctx context.Context, msg string, args ...any) {
	z.l.Errorw(msg, args...)
}

func (z *ZapLogger) With(args ...any) Logger {
	return &ZapLogger{l: z.l.With(args...)}
}
