package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/environment"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("debug suppressed at default level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf)).Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText)).Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test"))).Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("context extractors", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key struct{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextValue("tenant", key{}),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				env := environment.FromContext(ctx)
				return slog.String("env", env.String()), env != ""
			}),
		)

		ctx := context.WithValue(context.Background(), key{}, "acme")
		ctx = environment.WithContext(ctx, environment.Staging)
		log.InfoContext(ctx, "msg")

		entry := decode(t, buf)
		assert.Equal(t, "acme", entry["tenant"])
		assert.Equal(t, "staging", entry["env"])
	})

	t.Run("extractors survive With", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key struct{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("tenant", key{}))
		log = log.With(logger.Component("api")).WithGroup("g")

		log.InfoContext(context.WithValue(context.Background(), key{}, "acme"), "msg")
		entry := decode(t, buf)
		assert.Equal(t, "api", entry["component"])
		assert.Equal(t, map[string]any{"tenant": "acme"}, entry["g"])
	})
}

func TestWithLevelName(t *testing.T) {
	tests := []struct {
		name      string
		debugSeen bool
		warnSeen  bool
	}{
		{"debug", true, true},
		{"WARN", false, true},
		{"error", false, false},
		{"", false, true},
		{"loud", false, true},
	}

	for _, tt := range tests {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName(tt.name))
		assert.Equal(t, tt.debugSeen, log.Enabled(context.Background(), slog.LevelDebug), tt.name)
		assert.Equal(t, tt.warnSeen, log.Enabled(context.Background(), slog.LevelWarn), tt.name)
	}
}

func TestWithEnvironment(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment(environment.Development, "svc"), logger.WithOutput(buf))
		log.Debug("msg")
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "service=svc")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment(environment.Production, "svc"), logger.WithOutput(buf))
		log.Debug("hidden")
		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "svc", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("level override after environment", func(t *testing.T) {
		log := logger.New(
			logger.WithEnvironment(environment.Production, "svc"),
			logger.WithLevelName("debug"),
		)
		assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
	})
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")
	assert.Equal(t, "default", decode(t, buf)["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
