package docs

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ErrSectionNotFound is returned when no section has the requested slug.
var ErrSectionNotFound = errors.New("section not found")

// Source reads the document from disk and parses it. With caching enabled the
// parsed tree is reused until the file's modification time changes.
type Source struct {
	path   string
	cache  bool
	logger zerolog.Logger

	mu       sync.RWMutex
	modTime  time.Time
	sections []Section
}

// NewSource creates a Source for the document at path.
func NewSource(path string, cache bool, logger zerolog.Logger) *Source {
	return &Source{path: path, cache: cache, logger: logger}
}

// Path returns the document path.
func (s *Source) Path() string {
	return s.path
}

// Sections returns the parsed sections. A missing document yields no
// sections and no error.
func (s *Source) Sections() ([]Section, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn().Str("path", s.path).Msg("document not found")
			return []Section{}, nil
		}
		return nil, fmt.Errorf("failed to stat document: %w", err)
	}

	if s.cache {
		s.mu.RLock()
		if s.sections != nil && info.ModTime().Equal(s.modTime) {
			sections := s.sections
			s.mu.RUnlock()
			return sections, nil
		}
		s.mu.RUnlock()
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	start := time.Now()
	sections := Parse(string(data))
	s.logger.Debug().
		Str("path", s.path).
		Int("sections", len(sections)).
		Dur("took", time.Since(start)).
		Msg("parsed document")

	if s.cache {
		s.mu.Lock()
		s.sections = sections
		s.modTime = info.ModTime()
		s.mu.Unlock()
	}

	return sections, nil
}

// Section returns the section with the given slug, or ErrSectionNotFound.
func (s *Source) Section(slug string) (*Section, error) {
	sections, err := s.Sections()
	if err != nil {
		return nil, err
	}
	section, ok := FindSection(sections, slug)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, slug)
	}
	return section, nil
}
