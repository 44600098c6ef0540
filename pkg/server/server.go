package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/matte/pkg/convert"
	"github.com/matzehuels/matte/pkg/errors"
	"github.com/matzehuels/matte/pkg/layout"
	"github.com/matzehuels/matte/pkg/observability"
	"github.com/matzehuels/matte/pkg/preview"
	"github.com/matzehuels/matte/pkg/session"
	"github.com/matzehuels/matte/pkg/settings"
)

// DefaultAddr is the listen address used when none is given.
const DefaultAddr = "127.0.0.1:7420"

// Options configures a Server. Zero values get working defaults.
type Options struct {
	Catalog  layout.Catalog    // defaults to layout.Builtin()
	Store    session.Store     // source of the working document
	Diagrams *preview.Diagrams // defaults to an uncached renderer
	Binary   string            // convert binary shown in /api/document/command
	Logger   *log.Logger
}

// Server serves the read-only API.
type Server struct {
	catalog  layout.Catalog
	store    session.Store
	diagrams *preview.Diagrams
	binary   string
	logger   *log.Logger
	router   chi.Router
}

// New builds a server and its routes.
func New(opts Options) *Server {
	if opts.Catalog == nil {
		opts.Catalog = layout.Builtin()
	}
	if opts.Store == nil {
		opts.Store = session.NewMemoryStore()
	}
	if opts.Diagrams == nil {
		opts.Diagrams = preview.NewDiagrams(nil)
	}
	if opts.Binary == "" {
		opts.Binary = convert.DefaultBinary
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	s := &Server{
		catalog:  opts.Catalog,
		store:    opts.Store,
		diagrams: opts.Diagrams,
		binary:   opts.Binary,
		logger:   opts.Logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", s.handleTemplates)
			r.Get("/{index}", s.handleTemplate)
			r.Get("/{index}/preview.{format}", s.handleTemplatePreview)
		})

		r.Route("/document", func(r chi.Router) {
			r.Get("/", s.handleDocument)
			r.Get("/command", s.handleCommand)
			r.Get("/diagram.{format}", s.handleDocumentDiagram)
			r.Get("/preview.png", s.handleComposite)
		})
	})
	s.router = r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving", "addr", "http://"+addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return errors.Wrap(errors.ErrCodeIO, err, "listen on %s", addr)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// observe logs every request and reports it to the HTTP hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		dur := time.Since(start)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", status,
			"bytes", ww.BytesWritten(), "duration", dur.Round(time.Microsecond), "id", middleware.GetReqID(r.Context()))
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, status, dur)
	})
}

// document returns the latest auto-save, or an empty document on template 0.
func (s *Server) document(ctx context.Context) (*settings.Document, error) {
	doc, err := s.store.Get(ctx, session.DefaultName)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = settings.New(0)
	}
	if doc.Template < 0 || doc.Template >= len(s.catalog) {
		return nil, errors.New(errors.ErrCodeInvalidTemplate, "auto-save uses unknown template %d", doc.Template)
	}
	return doc, nil
}

func (s *Server) template(r *http.Request) (int, layout.Template, error) {
	raw := chi.URLParam(r, "index")
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, layout.Template{}, errors.New(errors.ErrCodeInvalidTemplate, "template index %q is not a number", raw)
	}
	t, err := s.catalog.Get(i)
	return i, t, err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidBox, errors.ErrCodeInvalidCrop,
		errors.ErrCodeInvalidFont, errors.ErrCodeInvalidPath, errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case errors.ErrCodeInvalidTemplate, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeBytes(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}
