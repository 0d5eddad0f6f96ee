package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/airroute/internal/config"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.LoggingConfig{Level: "info", Format: "json"}, &buf)

	logger.Debug("hidden")
	logger.Info("route network built", "airports", 3)

	line := strings.TrimSpace(buf.String())
	assert.NotContains(t, line, "hidden")

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &record), "expected one json record, got %q", line)
	assert.Equal(t, "route network built", record["msg"])
	assert.Equal(t, "airroute", record["app"])
	assert.Equal(t, "INFO", record["level"])
}

func TestNewWithWriterText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.LoggingConfig{Level: "debug"}, &buf)
	logger.Debug("ID:3 -> ID:2")

	out := buf.String()
	assert.Contains(t, out, `msg="ID:3 -> ID:2"`)
	assert.Contains(t, out, "level=DEBUG")
}
