// Package v1 implements the native REST API.
package v1

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/vmunix/reelcat/internal/catalog"
)

// maxSuggestions caps the "did you mean" list for unmatched filters.
const maxSuggestions = 5

// Config holds API server configuration.
type Config struct {
	Version string
	// DefaultSort applies when a request does not choose a sort.
	DefaultSort catalog.SortKey
}

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
	cfg  Config
	log  *slog.Logger
}

// New creates a new v1 API server.
func New(deps ServerDeps, cfg Config) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingDependency, err)
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{deps: deps, cfg: cfg, log: log}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/films", s.listFilms)
	mux.HandleFunc("GET /api/v1/characters", s.listCharacters)
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// querySort resolves the sort query parameter, falling back to the configured default.
func (s *Server) querySort(r *http.Request) (catalog.SortKey, error) {
	raw := r.URL.Query().Get("sort")
	if raw == "" {
		return s.cfg.DefaultSort, nil
	}
	return catalog.ParseSortKey(raw)
}

func (s *Server) listFilms(w http.ResponseWriter, r *http.Request) {
	key, err := s.querySort(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_SORT", err.Error())
		return
	}

	character := r.URL.Query().Get("character")
	view := s.deps.Catalog.Query(catalog.Query{Character: character, Sort: key})

	entries := view.Entries()
	resp := listFilmsResponse{
		Items:     make([]filmResponse, 0, len(entries)),
		Total:     view.Len(),
		Visible:   view.Visible(),
		Character: view.Selected(),
		Sort:      string(view.SortKey()),
	}
	for _, e := range entries {
		resp.Items = append(resp.Items, filmToResponse(e))
	}

	if view.Filtered() && resp.Visible == 0 {
		resp.Suggestions = s.deps.Catalog.Suggest(view.Selected(), maxSuggestions)
		s.log.Debug("filter matched no films", "character", view.Selected(), "suggestions", len(resp.Suggestions))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) listCharacters(w http.ResponseWriter, r *http.Request) {
	chars := s.deps.Catalog.Characters()
	if chars == nil {
		chars = []string{}
	}
	writeJSON(w, http.StatusOK, charactersResponse{Characters: chars, Total: len(chars)})
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:     "ok",
		Version:    s.cfg.Version,
		Films:      s.deps.Catalog.Len(),
		Characters: len(s.deps.Catalog.Characters()),
	})
}

func filmToResponse(e catalog.Entry) filmResponse {
	return filmResponse{
		Index:      e.Index,
		Title:      e.Film.Title,
		Year:       e.Film.Year,
		Directors:  nonNil(e.Film.Directors),
		Characters: nonNil(e.Film.Characters),
		Image:      e.Film.Image,
		Visible:    e.Visible,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
