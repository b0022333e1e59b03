package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/trialworks/protodraft/pkg/usecase"
	"github.com/trialworks/protodraft/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

type Options func(*Server)

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
		r.Post("/validate", s.handleValidate)
		r.Post("/export", s.handleExport)

		r.Route("/protocols", func(r chi.Router) {
			r.Get("/", s.handleListProtocols)
			r.Get("/{protocolID}", s.handleGetProtocol)
			r.Delete("/{protocolID}", s.handleDeleteProtocol)
		})

		r.Route("/examples", func(r chi.Router) {
			r.Get("/", s.handleListExamples)
			r.Post("/", s.handleAddExample)
			r.Post("/search", s.handleSearchExamples)
			r.Post("/seed", s.handleSeedExamples)
			r.Get("/stats", s.handleExampleStats)
			r.Get("/{exampleID}", s.handleGetExample)
			r.Delete("/{exampleID}", s.handleDeleteExample)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
