package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"listcal/internal/domain"
	"listcal/internal/list"
	"listcal/internal/suggest"
)

type Server struct {
	repo      *list.Repository
	suggester suggest.Suggester
	templates embed.FS
	mux       *http.ServeMux
	tmplFuncs template.FuncMap
	logger    *slog.Logger
}

// NewServer wires the HTTP surface. suggester may be nil, in which case the
// suggestion route is disabled.
func NewServer(repo *list.Repository, tmpl embed.FS, suggester suggest.Suggester, logger *slog.Logger) *Server {
	s := &Server{
		repo:      repo,
		suggester: suggester,
		templates: tmpl,
		mux:       http.NewServeMux(),
		logger:    logger,
		tmplFuncs: template.FuncMap{
			"amount": domain.FormatAmount,
		},
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /", s.handleIndex)
	s.mux.HandleFunc("POST /lists", s.handleCreateList)
	s.mux.HandleFunc("POST /lists/{id}/select", s.handleSelectList)
	s.mux.HandleFunc("DELETE /lists/{id}", s.handleDeleteList)
	s.mux.HandleFunc("POST /lists/{id}/rename", s.handleRenameList)
	s.mux.HandleFunc("POST /lists/{id}/reset", s.handleResetQuantities)
	s.mux.HandleFunc("POST /lists/{id}/items", s.handleAddItem)
	s.mux.HandleFunc("POST /lists/{id}/items/{itemID}", s.handleUpdateItem)
	s.mux.HandleFunc("POST /lists/{id}/items/{itemID}/increment", s.handleIncrementItem)
	s.mux.HandleFunc("POST /lists/{id}/items/{itemID}/decrement", s.handleDecrementItem)
	s.mux.HandleFunc("DELETE /lists/{id}/items/{itemID}", s.handleDeleteItem)
	s.mux.HandleFunc("POST /lists/{id}/suggest", s.handleSuggest)
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self' https://unpkg.com; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data:; "+
				"connect-src 'self'")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

// renderPage parses and executes the full page template set.
func (s *Server) renderPage(w http.ResponseWriter, status int, data any) {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates,
		"base.html", "pages/index.html", "partials/*.html")
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		s.logger.Error("template parse error", "error", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		s.logger.Error("template execute error", "error", err)
	}
}

// redirect finishes a mutation. Ordinary form posts get a 303 back to the
// page; htmx requests get an HX-Redirect so the browser swaps the whole
// document. Either way the next render derives everything from repository
// state.
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
