package recording

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ListingBackend is the name the Recorder is registered under.
const ListingBackend = "listing"

// ErrUnknownBackend is returned by NewBackend for an unregistered name.
var ErrUnknownBackend = errors.New("recording: unknown backend")

// BackendFactory creates a backend for a width x height canvas.
// Factories are registered via Register() and called by NewBackend().
type BackendFactory func(width, height int) Backend

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

func init() {
	Register(ListingBackend, func(int, int) Backend {
		return NewRecorder()
	})
}

// Register registers a backend factory with the given name.
// This function is typically called from init() in backend packages.
//
// Register panics if:
//   - factory is nil
//   - a backend with the same name is already registered
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// If the backend is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a width x height backend by name.
//
//	import _ "github.com/antixdev/diagram/raster" // registers "png"
//
//	b, err := recording.NewBackend("png", 320, 200)
//
// The error wraps ErrUnknownBackend and hints at a forgotten import.
func NewBackend(name string, width, height int) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	return factory(width, height), nil
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
