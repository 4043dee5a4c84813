package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "config.yaml", `logging:
  level: "DEBUG"
  format: "console"
metrics:
  sinks:
    - type: "log"
      conf:
        component: "reports"
    - type: "prometheus"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"logging.level", cfg.Logging.Level, "debug"},
		{"logging.format", cfg.Logging.Format, "console"},
		{"metrics.sinks", len(cfg.Metrics.Sinks), 2},
		{"metrics.sinks[0].type", cfg.Metrics.Sinks[0].Type, "log"},
		{"metrics.sinks[0].conf", cfg.Metrics.Sinks[0].Conf["component"], "reports"},
		{"metrics.sinks[1].type", cfg.Metrics.Sinks[1].Type, "prometheus"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"logging":{"level":"info"}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Metrics.Sinks)
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "", cfg.Logging.Format)
	assert.Empty(t, cfg.Metrics.Sinks)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ECOGRID_LOGGING__LEVEL", "error")
	path := writeFile(t, "config.yml", "logging:\n  level: debug\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "config.toml", "x = 1"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "logging:\n  level: loud\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "badfmt.yaml", "logging:\n  format: xml\n"))
	assert.Error(t, err)
}
