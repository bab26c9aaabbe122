package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pepshop/pepshop-api/internal/config"
)

func TestSetupLevels(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error", "WARN", "bogus"} {
		log, err := Setup(config.ServerConfig{Port: 3000, LogLevel: lvl})
		require.NoError(t, err, "level %s", lvl)
		assert.NotNil(t, log)
	}
}

func TestContextCarrier(t *testing.T) {
	t.Parallel()

	tagged := slog.Default().With(slog.String("trace_id", "abc-123"))
	ctx := WithContext(context.Background(), tagged)

	assert.Same(t, tagged, FromContext(ctx))
	assert.Same(t, tagged, FromContextOrDefault(ctx, nil))
}

func TestFromContextFallsBack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.NotNil(t, FromContext(ctx))

	fallback := slog.Default().With(slog.String("component", "test"))
	assert.Same(t, fallback, FromContextOrDefault(ctx, fallback))
}
