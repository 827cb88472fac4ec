package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/oticaroyal/panel/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestHandler_RequestAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := slog.New(&logger.Handler{Handler: slog.NewJSONHandler(&buf, nil)})

	ctx := logger.SetRequestID(context.Background(), "req-1")
	ctx = logger.SetUserID(ctx, "7")
	ctx = logger.SetIP(ctx, "10.0.0.5:51324")

	l.InfoContext(ctx, "ping")

	var line map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "req-1", line["request_id"])
	require.Equal(t, "7", line["user_id"])
	require.Equal(t, "10.0.0.5:51324", line["ip"])
	require.Equal(t, "otica-royal-panel", line["service"])
}

func TestHandler_EmptyContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := slog.New(&logger.Handler{Handler: slog.NewJSONHandler(&buf, nil)})

	l.InfoContext(context.Background(), "ping")

	var line map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.NotContains(t, line, "request_id")
	require.NotContains(t, line, "user_id")
	require.NotContains(t, line, "ip")
	require.Equal(t, "otica-royal-panel", line["service"])
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	require.Equal(t, slog.LevelWarn, logger.ParseLevel("WARN"))
	require.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, logger.ParseLevel("info"))
	require.Equal(t, slog.LevelInfo, logger.ParseLevel(""))
	require.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}
