// Package progress tracks which checklist items a visitor has completed.
//
// Stores load their state when opened and persist every mutation before
// returning. Keys are opaque; see ItemKey for how the rest of the program
// builds them from the parsed document.
package progress

import (
	"errors"
	"fmt"
	"strings"
)

// Backend names accepted by Open.
const (
	BackendJSON = "json"
	BackendBolt = "bolt"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown progress backend")

// Store maps item keys to completion flags, scoped per visitor.
type Store interface {
	// Completed reports whether key is marked done for visitor.
	Completed(visitor, key string) (bool, error)

	// Toggle flips the flag for key and returns the new value.
	Toggle(visitor, key string) (bool, error)

	// Set marks key as done or not done.
	Set(visitor, key string, done bool) error

	// All returns every completed key for visitor.
	All(visitor string) (map[string]bool, error)

	// Reset forgets all progress for visitor.
	Reset(visitor string) error

	Close() error
}

// Open creates a Store for the given backend, loading any existing state
// from path.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(backend) {
	case "", BackendJSON:
		return OpenFileStore(path)
	case BackendBolt:
		return OpenBoltStore(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
