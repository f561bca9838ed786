// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Catalog CatalogConfig `toml:"catalog"`
	Metrics MetricsConfig `toml:"metrics"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

// CatalogConfig locates the film dataset and controls how it is first shown.
type CatalogConfig struct {
	Path  string `toml:"path"`
	Title string `toml:"title"`
	// SortOnLoad is applied when a request does not choose a sort.
	// Empty keeps the dataset's own order.
	SortOnLoad string `toml:"sort_on_load"`
}

type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

const (
	DefaultHost         = "0.0.0.0"
	DefaultPort         = 8585
	DefaultLogLevel     = "info"
	DefaultCatalogPath  = "./mcu.json"
	DefaultCatalogTitle = "Marvel Cinematic Universe"
	DefaultMetricsPath  = "/metrics"
)

// Load reads and parses the configuration file.
// Unresolved environment variables and validation failures are returned as *ConfigError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	cfg := Config{Metrics: MetricsConfig{Enabled: true}}
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}

	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{Metrics: MetricsConfig{Enabled: true}}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = DefaultLogLevel
	}
	if c.Catalog.Path == "" {
		c.Catalog.Path = DefaultCatalogPath
	}
	if c.Catalog.Title == "" {
		c.Catalog.Title = DefaultCatalogTitle
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([-?])([^}]*))?\}`)

// substituteEnvVars expands environment references in content.
// It returns the expanded content and the references that could not be resolved;
// unresolved references are left in place. Comment lines are not expanded.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines[i] = envVarPattern.ReplaceAllStringFunc(line, func(match string) string {
			parts := envVarPattern.FindStringSubmatch(match)
			name, op, arg := parts[1], parts[2], parts[3]
			value, ok := os.LookupEnv(name)

			switch op {
			case "-":
				if !ok || value == "" {
					return arg
				}
				return value
			case "?":
				if !ok || value == "" {
					missing = append(missing, name+": "+arg)
					return match
				}
				return value
			default:
				if !ok {
					missing = append(missing, name)
					return match
				}
				return value
			}
		})
	}
	return strings.Join(lines, "\n"), missing
}
