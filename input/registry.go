package input

import (
	"sync"

	"github.com/lixenwraith/diegetic/core"
)

// Registry is the explicit table of virtual pointer devices. One
// pointer is registered per UI surface at creation time; pointers are
// never destroyed.
type Registry struct {
	mu       sync.RWMutex
	pointers map[core.PointerID]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		pointers: make(map[core.PointerID]struct{}),
	}
}

// Register adds a virtual pointer device. Registering an existing ID
// is a no-op; surfaces sharing a pointer share its identity.
func (r *Registry) Register(id core.PointerID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pointers[id] = struct{}{}
}

// Has reports whether a pointer ID is registered
func (r *Registry) Has(id core.PointerID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.pointers[id]
	return ok
}

// Count returns the number of registered pointers
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pointers)
}
