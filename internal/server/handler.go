package server

import (
	"fmt"
	"log/slog"
	"net/http"

	v1 "github.com/vmunix/reelcat/internal/api/v1"
	"github.com/vmunix/reelcat/internal/catalog"
	"github.com/vmunix/reelcat/internal/config"
	"github.com/vmunix/reelcat/internal/web"
)

// Deps are the inputs needed to build the daemon's handler.
type Deps struct {
	Catalog *catalog.Catalog
	Config  *config.Config
	Version string
	Logger  *slog.Logger
}

// NewHandler wires the catalog page, the v1 API and, if enabled, the metrics
// endpoint onto one mux wrapped in request logging.
func NewHandler(d Deps) (http.Handler, error) {
	if d.Catalog == nil || d.Config == nil {
		return nil, fmt.Errorf("%w: catalog and config are required", v1.ErrMissingDependency)
	}
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// config has already validated this
	defaultSort, err := catalog.ParseSortKey(d.Config.Catalog.SortOnLoad)
	if err != nil {
		return nil, fmt.Errorf("catalog.sort_on_load: %w", err)
	}

	var metrics *web.Metrics
	if d.Config.Metrics.Enabled {
		metrics = web.NewMetrics()
		metrics.SetCatalog(d.Catalog.Len(), len(d.Catalog.Characters()))
	}

	mux := http.NewServeMux()

	page := web.NewServer(d.Catalog, web.Config{
		Title:       d.Config.Catalog.Title,
		DefaultSort: defaultSort,
	}, logger.With("component", "web"), metrics)
	page.RegisterRoutes(mux)

	api, err := v1.New(v1.ServerDeps{
		Catalog: d.Catalog,
		Logger:  logger.With("component", "api"),
	}, v1.Config{
		Version:     d.Version,
		DefaultSort: defaultSort,
	})
	if err != nil {
		return nil, err
	}
	api.RegisterRoutes(mux)

	if metrics != nil {
		mux.Handle("GET "+d.Config.Metrics.Path, metrics.Handler())
	}

	return web.LogRequests(metrics.Instrument(mux), logger.With("component", "http")), nil
}
