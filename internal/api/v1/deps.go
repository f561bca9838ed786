package v1

import (
	"errors"
	"log/slog"

	"github.com/vmunix/reelcat/internal/catalog"
)

//go:generate mockgen -source=deps.go -destination=mocks/mock_deps.go -package=mocks

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Catalog is the read-only film catalog served by the API.
type Catalog interface {
	Len() int
	Characters() []string
	Query(q catalog.Query) *catalog.View
	Suggest(query string, limit int) []string
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required dependencies
	Catalog Catalog

	// Optional dependencies
	Logger *slog.Logger
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Catalog == nil {
		return errors.New("catalog is required")
	}
	return nil
}
