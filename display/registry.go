// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"cmp"
	"errors"
	"slices"
	"sync"
)

// Factory creates a surface for the given options.
type Factory func(opts Options) (Surface, error)

// Backend describes a registered display backend.
type Backend struct {
	// Name is the unique backend identifier.
	Name string

	// Priority orders automatic selection, higher first.
	Priority int

	Factory Factory

	// Available reports whether the backend can be used on this system.
	Available func() bool
}

// Registry maps backend names to factories. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

var defaultRegistry = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

// DefaultRegistry returns the process-wide registry that built-in backends
// register into.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register adds a backend to the default registry.
func Register(name string, priority int, f Factory, available func() bool) {
	defaultRegistry.Register(name, priority, f, available)
}

// NewSurface creates a surface with the best available backend of the
// default registry.
func NewSurface(opts Options) (Surface, error) {
	return defaultRegistry.NewSurface(opts)
}

// NewSurfaceByName creates a surface with a named backend of the default
// registry.
func NewSurfaceByName(name string, opts Options) (Surface, error) {
	return defaultRegistry.NewSurfaceByName(name, opts)
}

// Register adds or replaces a backend. A nil available means always
// available.
func (r *Registry) Register(name string, priority int, f Factory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[name] = Backend{Name: name, Priority: priority, Factory: f, Available: available}
}

// Unregister removes a backend.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.backends, name)
}

// Get returns the backend registered under name.
func (r *Registry) Get(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.backends[name]
	return b, ok
}

// List returns every backend name, highest priority first.
func (r *Registry) List() []string {
	return r.names(false)
}

// Available returns the names of available backends, highest priority first.
func (r *Registry) Available() []string {
	return r.names(true)
}

func (r *Registry) names(onlyAvailable bool) []string {
	r.mu.RLock()
	bs := make([]Backend, 0, len(r.backends))
	for _, b := range r.backends {
		bs = append(bs, b)
	}
	r.mu.RUnlock()

	slices.SortFunc(bs, func(a, b Backend) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	var out []string
	for _, b := range bs {
		if onlyAvailable && !b.Available() {
			continue
		}
		out = append(out, b.Name)
	}
	return out
}

// NewSurface tries every available backend in priority order and returns
// the first surface created.
func (r *Registry) NewSurface(opts Options) (Surface, error) {
	names := r.Available()
	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}
	var errs []error
	for _, name := range names {
		s, err := r.NewSurfaceByName(name, opts)
		if err == nil {
			return s, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// NewSurfaceByName creates a surface with the named backend.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Surface, error) {
	b, ok := r.Get(name)
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !b.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrInvalidSize
	}
	return b.Factory(opts)
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no backend can be used.
	ErrNoBackendAvailable = errors.New("display: no backend available")

	// ErrInvalidSize is returned for non-positive surface dimensions.
	ErrInvalidSize = errors.New("display: invalid surface size")

	// ErrClosed is returned when drawing to a closed surface.
	ErrClosed = errors.New("display: surface closed")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "display: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but cannot be used.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "display: backend unavailable: " + e.Name
}

func init() {
	Register("software", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts), nil
	}, nil)
}
