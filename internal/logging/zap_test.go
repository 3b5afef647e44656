package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(t *testing.T) (*ZapLogger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapLogger(zap.New(core).Sugar()), logs
}

func TestZapLogger_Levels(t *testing.T) {
	log, logs := newObservedLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "dbg", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)

	assert.Equal(t, int64(2), entries[1].ContextMap()["b"])
}

func TestZapLogger_With_AddsFields(t *testing.T) {
	log, logs := newObservedLogger(t)

	child := log.With("user_id", "u1")
	child.Info(context.Background(), "hello", "k", "v")

	entries := logs.All()
	require.Len(t, entries, 1)
	m := entries[0].ContextMap()
	assert.Equal(t, "u1", m["user_id"])
	assert.Equal(t, "v", m["k"])
}

func TestNewProductionZapLogger_DoesNotPanic(t *testing.T) {
	log, flush := NewProductionZapLogger(zapcore.InfoLevel)
	defer flush()
	log.Info(context.Background(), "ok")
}
