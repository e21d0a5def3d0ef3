package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/itsmostafa/cornerstones/internal/docs"
	"github.com/itsmostafa/cornerstones/internal/progress"
	"github.com/itsmostafa/cornerstones/internal/render"
)

// Server serves one page per section plus a small JSON API.
type Server struct {
	source *docs.Source
	store  progress.Store
	pages  *render.HTML
	logger zerolog.Logger
	router *mux.Router
}

// New wires the routes. The store is owned by the caller.
func New(source *docs.Source, store progress.Store, logger zerolog.Logger) (*Server, error) {
	pages, err := render.NewHTML(render.ModeServer)
	if err != nil {
		return nil, err
	}

	s := &Server{
		source: source,
		store:  store,
		pages:  pages,
		logger: logger,
		router: mux.NewRouter(),
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.router
	r.Use(s.logRequests, s.identifyVisitor)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/sections", s.handleListSections).Methods(http.MethodGet)
	api.HandleFunc("/sections/{slug}", s.handleGetSection).Methods(http.MethodGet)
	api.HandleFunc("/progress", s.handleGetProgress).Methods(http.MethodGet)
	api.HandleFunc("/progress", s.handleResetProgress).Methods(http.MethodDelete)
	api.HandleFunc("/progress/{key}/toggle", s.handleToggle).Methods(http.MethodPost)

	r.HandleFunc("/", s.handleHome).Methods(http.MethodGet)
	r.HandleFunc("/{slug}", s.handlePage).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Str("source", s.source.Path()).Msg("serving")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
