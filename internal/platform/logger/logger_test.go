package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestError_AttachesErrorField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Replace(zap.New(core))
	t.Cleanup(func() { Init("info", "console") })

	Error("API request failed", errors.New("boom"), "endpoint", "/api/sales")
	Info("Sale completed", "sale_id", "s-1")
	Error("no error value", nil)

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/api/sales", fields["endpoint"])
	assert.Equal(t, "boom", fields["error"])

	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "s-1", entries[1].ContextMap()["sale_id"])

	_, hasErr := entries[2].ContextMap()["error"]
	assert.False(t, hasErr)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("whatever"))
}
