package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "datasets/airports.csv", cfg.Dataset.AirportsPath)
	assert.Equal(t, "datasets/routes.csv", cfg.Dataset.RoutesPath)
	assert.False(t, cfg.Routing.Directed)
	assert.Equal(t, 4, cfg.Routing.Workers)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.False(t, cfg.Graph.Enabled(), "graph export should be disabled without a URI")
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("AIRPORTS_PATH", "/data/a.csv")
	t.Setenv("ROUTING_DIRECTED", "true")
	t.Setenv("LOOKUP_WORKERS", "12")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("GRAPH_URI", "neo4j://localhost:7687")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/a.csv", cfg.Dataset.AirportsPath)
	assert.True(t, cfg.Routing.Directed)
	assert.Equal(t, 12, cfg.Routing.Workers)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
	assert.True(t, cfg.Graph.Enabled())
}

func TestLoadLoggingOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_INCLUDE_CALLER", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, LoggingConfig{Level: "debug", Format: "json", IncludeCaller: true}, cfg.Logging)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"SERVER_PORT":          "70000",
		"SERVER_WRITE_TIMEOUT": "soon",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("CONFIG_FILE", "")
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err, "%s=%s", key, value)
		})
	}
}

func TestLoadFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airroute.yaml")
	content := `
dataset:
  airports_path: fixtures/airports.csv
routing:
  directed: true
http:
  port: 7070
  write_timeout: 20s
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fixtures/airports.csv", cfg.Dataset.AirportsPath)
	assert.Equal(t, "datasets/routes.csv", cfg.Dataset.RoutesPath)
	assert.True(t, cfg.Routing.Directed)
	assert.Equal(t, 7070, cfg.HTTP.Port)
	assert.Equal(t, 20*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, "warn", cfg.Logging.Level, "environment overrides file")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
