// Package web renders the HTML catalog page.
package web

import (
	"bytes"
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/vmunix/reelcat/internal/catalog"
)

//go:embed templates/page.html.tmpl
var pageTpl string

// maxSuggestions caps the "did you mean" list shown for unmatched filters.
const maxSuggestions = 3

// Catalog is the film catalog the page renders.
type Catalog interface {
	Characters() []string
	Query(q catalog.Query) *catalog.View
	Suggest(query string, limit int) []string
}

// Config controls page rendering.
type Config struct {
	Title       string
	DefaultSort catalog.SortKey
}

type sortOption struct {
	Value string
	Label string
}

var sortOptions = []sortOption{
	{Value: string(catalog.SortYear), Label: "Year"},
	{Value: string(catalog.SortTitle), Label: "Title"},
}

type pageData struct {
	Title       string
	ShowAll     string
	Characters  []string
	Selected    string
	Sort        string
	SourceOrder bool // offer dataset order; false when a default sort is configured
	SortOptions []sortOption
	Cards       []catalog.Entry
	Visible     int
	Total       int
	Suggestions []string
}

// Server serves the catalog page.
type Server struct {
	catalog Catalog
	cfg     Config
	tpl     *template.Template
	log     *slog.Logger
	metrics *Metrics
}

// NewServer creates the page server. metrics may be nil.
func NewServer(cat Catalog, cfg Config, log *slog.Logger, metrics *Metrics) *Server {
	if log == nil {
		log = slog.Default()
	}
	tpl := template.Must(template.New("page").Funcs(template.FuncMap{
		"join":      strings.Join,
		"filterURL": filterURL,
	}).Parse(pageTpl))
	return &Server{catalog: cat, cfg: cfg, tpl: tpl, log: log, metrics: metrics}
}

// RegisterRoutes registers the page and health routes on mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.Handle("GET /health", HealthHandler())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	key := s.cfg.DefaultSort
	if raw := q.Get("sort"); raw != "" {
		k, err := catalog.ParseSortKey(raw)
		if err != nil {
			httpError(w, http.StatusBadRequest, "unknown sort key")
			return
		}
		key = k
	}

	view := s.catalog.Query(catalog.Query{Character: q.Get("character"), Sort: key})
	s.metrics.ObserveView(view)

	data := pageData{
		Title:       s.cfg.Title,
		ShowAll:     catalog.ShowAll,
		Characters:  s.catalog.Characters(),
		Selected:    view.Selected(),
		Sort:        string(view.SortKey()),
		SourceOrder: s.cfg.DefaultSort == catalog.SortNone,
		SortOptions: sortOptions,
		Cards:       view.Entries(),
		Visible:     view.Visible(),
		Total:       view.Len(),
	}
	if view.Filtered() && data.Visible == 0 {
		data.Suggestions = s.catalog.Suggest(view.Selected(), maxSuggestions)
	}

	var buf bytes.Buffer
	if err := s.tpl.Execute(&buf, data); err != nil {
		s.log.Error("render page", "error", err)
		httpError(w, http.StatusInternalServerError, "unable to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// filterURL links to the page filtered by character, keeping the sort.
func filterURL(character, sort string) string {
	v := url.Values{}
	v.Set("character", character)
	if sort != "" {
		v.Set("sort", sort)
	}
	return "/?" + v.Encode()
}

func httpError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}
