package logger

import (
	"testing"

	"github.com/automoto/firstperson/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewParsesLevelAndFormat(t *testing.T) {
	l, err := New(config.LogConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = New(config.LogConfig{Level: "debug", Development: true})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud"})
	assert.Error(t, err)

	_, err = New(config.LogConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestGlobalDefaultsToNop(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	require.NotNil(t, L())
	assert.False(t, L().Core().Enabled(zapcore.ErrorLevel))

	core, recorded := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	Named("controller").Debug("jump started", zap.Float64("force", 1))

	entries := recorded.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "controller", entries[0].LoggerName)
	assert.Equal(t, 1.0, entries[0].ContextMap()["force"])

	Set(nil)
	assert.False(t, L().Core().Enabled(zapcore.ErrorLevel))
}
