// internal/config/validate.go
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/vmunix/reelcat/internal/catalog"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// reservedPaths are served by the daemon itself and cannot host metrics.
var reservedPaths = []string{"/", "/health", "/api/"}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// Catalog validation
	if c.Catalog.Path == "" {
		errs = append(errs, "catalog.path: required")
	} else if info, err := os.Stat(c.Catalog.Path); err != nil {
		errs = append(errs, fmt.Sprintf("catalog.path: dataset %q not readable: %v", c.Catalog.Path, err))
	} else if info.IsDir() {
		errs = append(errs, fmt.Sprintf("catalog.path: %q is a directory", c.Catalog.Path))
	}
	if _, err := catalog.ParseSortKey(c.Catalog.SortOnLoad); err != nil {
		errs = append(errs, fmt.Sprintf("catalog.sort_on_load: must be empty, year or title; got %q", c.Catalog.SortOnLoad))
	}

	// Metrics validation
	if c.Metrics.Enabled {
		switch {
		case !strings.HasPrefix(c.Metrics.Path, "/"):
			errs = append(errs, fmt.Sprintf("metrics.path: must start with /, got %q", c.Metrics.Path))
		case isReserved(c.Metrics.Path):
			errs = append(errs, fmt.Sprintf("metrics.path: %q collides with a built-in route", c.Metrics.Path))
		}
	}

	return errs
}

func isReserved(path string) bool {
	for _, p := range reservedPaths {
		if path == p || (strings.HasSuffix(p, "/") && p != "/" && strings.HasPrefix(path, p)) {
			return true
		}
	}
	return false
}
