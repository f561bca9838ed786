// internal/config/validate_test.go
package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		Catalog: CatalogConfig{Path: writeDataset(t, t.TempDir())},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestValidate_MinimalValid(t *testing.T) {
	errs := validConfig(t).Validate()
	assert.Empty(t, errs, "expected no errors for minimal valid config")
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"invalid port", func(c *Config) { c.Server.Port = 99999 }, "server.port"},
		{"negative port", func(c *Config) { c.Server.Port = -1 }, "server.port"},
		{"invalid log level", func(c *Config) { c.Server.LogLevel = "verbose" }, "log_level"},
		{"no dataset", func(c *Config) { c.Catalog.Path = "" }, "catalog.path: required"},
		{"missing dataset", func(c *Config) { c.Catalog.Path = "/nonexistent/films.json" }, "catalog.path"},
		{"dataset is dir", func(c *Config) { c.Catalog.Path = filepath.Dir(c.Catalog.Path) }, "is a directory"},
		{"bad sort", func(c *Config) { c.Catalog.SortOnLoad = "director" }, "catalog.sort_on_load"},
		{"relative metrics path", func(c *Config) { c.Metrics.Path = "metrics" }, "metrics.path"},
		{"metrics on root", func(c *Config) { c.Metrics.Path = "/" }, "collides"},
		{"metrics on health", func(c *Config) { c.Metrics.Path = "/health" }, "collides"},
		{"metrics under api", func(c *Config) { c.Metrics.Path = "/api/metrics" }, "collides"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)
			errs := cfg.Validate()
			assert.True(t, containsError(errs, tt.want), "expected %q error, got %v", tt.want, errs)
		})
	}
}

func TestValidate_MetricsPathIgnoredWhenDisabled(t *testing.T) {
	cfg := validConfig(t)
	cfg.Metrics = MetricsConfig{Enabled: false, Path: "/"}
	assert.Empty(t, cfg.Validate())
}

func TestValidate_SortOnLoad(t *testing.T) {
	for _, key := range []string{"", "year", "title"} {
		cfg := validConfig(t)
		cfg.Catalog.SortOnLoad = key
		assert.Empty(t, cfg.Validate(), "sort_on_load %q", key)
	}
}
