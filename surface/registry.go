// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"slices"
	"sync"
)

// Options describes the surface a Factory should create.
type Options struct {
	// Width and Height are the display size in pixels.
	Width, Height int

	// ClipX, ClipY, ClipWidth and ClipHeight restrict the addressable clip
	// area reported by Geometry. A zero ClipWidth or ClipHeight means the
	// whole display.
	ClipX, ClipY          int
	ClipWidth, ClipHeight int
}

func (o Options) imageOptions() []ImageSurfaceOption {
	if o.ClipWidth <= 0 || o.ClipHeight <= 0 {
		return nil
	}
	return []ImageSurfaceOption{WithClipArea(o.ClipX, o.ClipY, o.ClipWidth, o.ClipHeight)}
}

// Factory creates a new Surface with the given options.
type Factory func(opts Options) (Surface, error)

// RegistryEntry represents a registered surface kind.
type RegistryEntry struct {
	// Name is the unique identifier for this surface kind.
	Name string

	// Priority determines selection order (higher = preferred).
	Priority int

	// Factory creates surface instances.
	Factory Factory

	// Available reports if the surface kind can be created on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// Registry maps names to surface factories so that drivers for real
// displays can plug in next to the built-in image surfaces.
//
// Example registration:
//
//	func init() {
//	    surface.Register("ssd2119", 100, newPanel, panelPresent)
//	}
//
// Example usage:
//
//	s, err := surface.NewByName("image", surface.Options{Width: 320, Height: 240})
//	// or pick the preferred available kind:
//	s, err := surface.New(surface.Options{Width: 320, Height: 240})
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and New.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a surface kind to the global registry. If available is
// nil, the kind is assumed always available. Registering an existing name
// replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a surface kind from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered names, highest priority first.
func List() []string {
	return globalRegistry.List()
}

// Available returns the names of all available kinds, highest priority first.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific surface kind.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// New creates a surface with the preferred available kind.
func New(opts Options) (Surface, error) {
	return globalRegistry.New(opts)
}

// NewByName creates a surface of a specific registered kind.
func NewByName(name string, opts Options) (Surface, error) {
	return globalRegistry.NewByName(name, opts)
}

// Register adds a surface kind to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if available == nil {
		available = func() bool { return true }
	}
	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a surface kind from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered names, highest priority first.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns the names of all available kinds, highest priority first.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns a copy of the entry registered under name.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	entryCopy := *entry
	return &entryCopy, true
}

// New tries each available kind in priority order and returns the first
// surface that could be created.
func (r *Registry) New(opts Options) (Surface, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoSurfaceAvailable
	}

	var errs []error
	for _, name := range available {
		s, err := r.NewByName(name, opts)
		if err == nil {
			return s, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// NewByName creates a surface of a specific kind.
func (r *Registry) NewByName(name string, opts Options) (Surface, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &UnavailableError{Name: name}
	}
	return entry.Factory(opts)
}

// sortedNames returns names sorted by priority (highest first), ties by
// name. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	entries := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b *RegistryEntry) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// ErrNoSurfaceAvailable is returned when no surface kinds are registered or
// available on the current system.
var ErrNoSurfaceAvailable = errors.New("surface: no surface available")

// NotFoundError indicates a name that is not registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "surface: not registered: " + e.Name
}

// UnavailableError indicates a registered kind that cannot be created here.
type UnavailableError struct {
	Name string
}

func (e *UnavailableError) Error() string {
	return "surface: unavailable: " + e.Name
}

// Unwrap returns the innermost ImageSurface behind s, following
// Recorder-style wrappers that expose a Target method. It returns nil when
// s is not backed by an ImageSurface.
func Unwrap(s Surface) *ImageSurface {
	for s != nil {
		switch v := s.(type) {
		case *ImageSurface:
			return v
		case interface{ Target() Surface }:
			s = v.Target()
		default:
			return nil
		}
	}
	return nil
}

// init registers the built-in surfaces.
func init() {
	Register("image", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height, opts.imageOptions()...), nil
	}, nil)
	Register("recorder", 0, func(opts Options) (Surface, error) {
		return NewRecorder(NewImageSurface(opts.Width, opts.Height, opts.imageOptions()...)), nil
	}, nil)
}
