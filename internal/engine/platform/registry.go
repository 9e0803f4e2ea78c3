package platform

import (
	"slices"
	"sync"

	"go.trai.ch/plat/internal/core/domain"
	"go.trai.ch/plat/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry holds platforms keyed by name.
type Registry struct {
	mu        sync.RWMutex
	platforms map[string]ports.Platform
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{platforms: make(map[string]ports.Platform)}
}

// Register adds p. A second platform with the same name is rejected.
func (r *Registry) Register(p ports.Platform) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := p.Name()
	if _, ok := r.platforms[name]; ok {
		return zerr.With(domain.ErrDuplicatePlatform, "platform", name)
	}
	r.platforms[name] = p
	return nil
}

// Get returns the platform registered under name.
func (r *Registry) Get(name string) (ports.Platform, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.platforms[name]
	if !ok {
		return nil, zerr.With(domain.ErrPlatformNotFound, "platform", name)
	}
	return p, nil
}

// Names returns the registered platform names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.platforms))
	for name := range r.platforms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Platforms returns every registered platform ordered by name.
func (r *Registry) Platforms() []ports.Platform {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ports.Platform, 0, len(names))
	for _, name := range names {
		out = append(out, r.platforms[name])
	}
	return out
}
