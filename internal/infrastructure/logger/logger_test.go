package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"INFO", zapcore.InfoLevel},
		{"unknown", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("console format", func(t *testing.T) {
		logger, err := New(&Config{
			Level:      "debug",
			Format:     "console",
			Output:     "stdout",
			TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		})
		require.NoError(t, err)
		require.NotNil(t, logger)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("json format", func(t *testing.T) {
		logger, err := New(&Config{
			Level:      "warn",
			Format:     "json",
			Output:     "stderr",
			TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		})
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	})
}

func TestNewForEnvironment(t *testing.T) {
	dev, err := NewForEnvironment("development")
	require.NoError(t, err)
	require.NotNil(t, dev)

	prod, err := NewForEnvironment("production")
	require.NoError(t, err)
	require.NotNil(t, prod)
}

func TestContextPropagation(t *testing.T) {
	base := zap.NewNop()

	t.Run("FromContext returns nop when unset", func(t *testing.T) {
		logger := FromContext(context.Background())
		require.NotNil(t, logger)
	})

	t.Run("round trip through context", func(t *testing.T) {
		ctx := WithContext(context.Background(), base)
		assert.Same(t, base, FromContext(ctx))
	})

	t.Run("request ID is stored and retrievable", func(t *testing.T) {
		ctx, enriched := WithRequestID(context.Background(), base, "req-123")
		require.NotNil(t, enriched)
		assert.Equal(t, "req-123", GetRequestID(ctx))
	})

	t.Run("user ID is stored and retrievable", func(t *testing.T) {
		ctx, _ := WithUserID(context.Background(), base, "user-456")
		assert.Equal(t, "user-456", GetUserID(ctx))
	})
}
