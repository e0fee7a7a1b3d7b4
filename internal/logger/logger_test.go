package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  slog.Level
	}{
		{"debug level", "debug", slog.LevelDebug},
		{"info level", "info", slog.LevelInfo},
		{"warn level", "WARN", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error level", "error", slog.LevelError},
		{"invalid level", "loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.level))
		})
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")
	ctx := context.Background()

	log.InfoContext(ctx, "dropped")
	log.WarnContext(ctx, "Relay is slow", "latencyMs", 1200)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Relay is slow", entry["msg"])
	assert.Equal(t, float64(1200), entry["latencyMs"])
}
