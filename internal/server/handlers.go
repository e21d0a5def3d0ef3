package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/itsmostafa/cornerstones/internal/docs"
	"github.com/itsmostafa/cornerstones/internal/progress"
)

type sectionSummary struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Done  int    `json:"done"`
	Total int    `json:"total"`
}

type toggleResponse struct {
	Key       string `json:"key"`
	Completed bool   `json:"completed"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) sections(w http.ResponseWriter) ([]docs.Section, bool) {
	sections, err := s.source.Sections()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load document")
		http.Error(w, "Failed to load document", http.StatusInternalServerError)
		return nil, false
	}
	return sections, true
}

func (s *Server) completed(w http.ResponseWriter, r *http.Request) (map[string]bool, bool) {
	done, err := s.store.All(visitorFrom(r))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load progress")
		http.Error(w, "Failed to load progress", http.StatusInternalServerError)
		return nil, false
	}
	return done, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	sections, ok := s.sections(w)
	if !ok {
		return
	}

	if len(sections) > 0 {
		http.Redirect(w, r, "/"+sections[0].Slug, http.StatusFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pages.NoContent(w); err != nil {
		s.logger.Error().Err(err).Msg("failed to render page")
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sections, ok := s.sections(w)
	if !ok {
		return
	}

	slug := mux.Vars(r)["slug"]
	section, found := docs.FindSection(sections, slug)
	if !found {
		s.renderNotFound(w, sections)
		return
	}

	done, ok := s.completed(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pages.Section(w, sections, section, done); err != nil {
		s.logger.Error().Err(err).Str("slug", slug).Msg("failed to render page")
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	sections, ok := s.sections(w)
	if !ok {
		return
	}
	s.renderNotFound(w, sections)
}

func (s *Server) renderNotFound(w http.ResponseWriter, sections []docs.Section) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := s.pages.NotFound(w, sections); err != nil {
		s.logger.Error().Err(err).Msg("failed to render page")
	}
}

func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	sections, ok := s.sections(w)
	if !ok {
		return
	}
	done, ok := s.completed(w, r)
	if !ok {
		return
	}

	out := make([]sectionSummary, 0, len(sections))
	for i := range sections {
		summary := progress.Summarize(&sections[i], done)
		out = append(out, sectionSummary{
			Title: sections[i].Title,
			Slug:  sections[i].Slug,
			Done:  summary.Done,
			Total: summary.Total,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetSection(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	section, err := s.source.Section(slug)
	if err != nil {
		if errors.Is(err, docs.ErrSectionNotFound) {
			s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		s.logger.Error().Err(err).Msg("failed to load document")
		http.Error(w, "Failed to load document", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, section)
}

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	done, ok := s.completed(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, done)
}

func (s *Server) handleResetProgress(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Reset(visitorFrom(r)); err != nil {
		s.logger.Error().Err(err).Msg("failed to reset progress")
		http.Error(w, "Failed to reset progress", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	sections, ok := s.sections(w)
	if !ok {
		return
	}

	key := mux.Vars(r)["key"]
	if !progress.KnownKeys(sections)[key] {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown checklist item: " + key})
		return
	}

	done, err := s.store.Toggle(visitorFrom(r), key)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to toggle item")
		http.Error(w, "Failed to save progress", http.StatusInternalServerError)
		return
	}

	s.logger.Debug().Str("key", key).Bool("completed", done).Msg("toggled item")
	s.writeJSON(w, http.StatusOK, toggleResponse{Key: key, Completed: done})
}
