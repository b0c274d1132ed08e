package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"testing"

	"github.com/amp-labs/amp-guard/envutil"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLoggingWithOptions(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "guard-test",
		JSON:      true,
		MinLevel:  slog.LevelDebug,
		Output:    &buf,
	})

	Get().Debug("violation", "check", "NotNil")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "violation", line["msg"])
	assert.Equal(t, "guard-test", line["subsystem"])
	assert.Equal(t, "NotNil", line["check"])

	buf.Reset()

	// The legacy log package goes through the same handler.
	log.Println("legacy")
	assert.Contains(t, buf.String(), `"msg":"legacy"`)

	buf.Reset()

	ConfigureLoggingWithOptions(Options{Subsystem: "guard-test", Output: &buf})
	Get().Debug("hidden")
	Get().Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestConfigureLogging_FromEnvironment(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ctx := envutil.WithEnvOverride(t.Context(), "LOG_JSON", "true")
	ctx = envutil.WithEnvOverride(ctx, "LOG_LEVEL", "warn")

	_, err := ConfigureLogging(ctx, "env-test", WithOutput(&buf))
	require.NoError(t, err)

	Get().Info("quiet")
	Get().Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), `"subsystem":"env-test"`)

	_, err = ConfigureLogging(envutil.WithEnvOverride(t.Context(), "LOG_OUTPUT", "syslog"), "env-test")
	require.ErrorIs(t, err, ErrInvalidLogOutput)

	_, err = ConfigureLogging(envutil.WithEnvOverride(t.Context(), "LOG_LEVEL", "chatty"), "env-test")
	require.ErrorIs(t, err, envutil.ErrBadEnvVar)
}

func TestGet_ContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	ctx := WithLogger(t.Context(), slog.New(handler))
	ctx = WithSubsystem(ctx, "ranges")
	ctx = With(ctx, "request", "abc")

	Get(ctx).Debug("checked")

	out := buf.String()
	assert.Contains(t, out, "msg=checked")
	assert.Contains(t, out, "subsystem=ranges")
	assert.Contains(t, out, "request=abc")
}

func TestGet_SlogtCapture(t *testing.T) {
	t.Parallel()

	ctx := WithLogger(t.Context(), slogt.New(t))

	// slogt routes output to t.Log, so this only has to not panic.
	Get(ctx).Info("captured by the test log")
}

func TestWith_SiblingsDoNotShareValues(t *testing.T) {
	t.Parallel()

	parent := With(context.Background(), "a", 1)
	left := With(parent, "b", 2)
	right := With(parent, "c", 3)

	assert.Equal(t, []any{"a", 1, "b", 2}, getValues(left))
	assert.Equal(t, []any{"a", 1, "c", 3}, getValues(right))
	assert.Same(t, parent, With(parent))
}

func TestGetSubsystem(t *testing.T) {
	t.Parallel()

	ctx := WithSubsystem(t.Context(), "override")
	assert.Equal(t, "override", GetSubsystem(ctx))
	assert.Equal(t, "outer", GetSubsystem(WithSubsystem(WithSubsystem(ctx, "inner"), "outer")))
}
