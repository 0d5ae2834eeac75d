// Package server serves pages wrapped in the site shell over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/dtnitsch/skillshell/models"
	"github.com/dtnitsch/skillshell/pkg/assets"
	"github.com/dtnitsch/skillshell/pkg/pages"
	"github.com/dtnitsch/skillshell/pkg/shell"
)

// Server holds the immutable inputs shared by every request.
type Server struct {
	meta   models.PageMetadata
	pages  map[string]pages.Page
	logger *slog.Logger
}

// New returns the HTTP handler for the site.
//
// Routes:
//   - GET /healthz - liveness probe
//   - GET /favicon.ico, GET /globals.css - embedded assets
//   - GET /* - page fragment wrapped in the shell, 404 for unknown routes
func New(meta models.PageMetadata, list []pages.Page, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		meta:   meta.Clone(),
		pages:  pages.Index(list),
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	for _, name := range assets.Names() {
		r.Get("/"+name, s.assetHandler(name))
	}
	r.Get("/*", s.pageHandler)

	return r
}

func (s *Server) assetHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := assets.Read(name)
		if err != nil {
			s.logger.Error("asset unavailable", "asset", name, "error", err)
			http.Error(w, "asset unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", assets.ContentType(name))
		w.Header().Set("Cache-Control", "public, max-age=86400")
		_, _ = w.Write(data)
	}
}

func (s *Server) pageHandler(w http.ResponseWriter, r *http.Request) {
	route := routeOf(r.URL.Path)

	status := http.StatusOK
	var body g.Node
	if page, ok := s.pages[route]; ok {
		body = page.Body()
	} else {
		status = http.StatusNotFound
		body = notFound(route)
	}

	// Render before writing the header so a failure can still become a 500.
	doc, err := shell.Bytes(s.meta, body)
	if err != nil {
		s.logger.Error("failed to render page", "route", route, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(doc)
}

func notFound(route string) g.Node {
	return h.Main(
		h.H1(g.Text("Page not found")),
		h.P(g.Textf("No page exists at %s.", route)),
	)
}

// routeOf maps a request path to a page route: "/about/" -> "/about".
func routeOf(p string) string {
	p = path.Clean("/" + p)
	if p != "/" {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logArgs := []any{
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String(),
		}
		if r.URL.Path == "/healthz" {
			s.logger.Debug("request completed", logArgs...)
		} else {
			s.logger.Info("request completed", logArgs...)
		}
	})
}
