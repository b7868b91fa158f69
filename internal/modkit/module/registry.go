package module

import (
	"sort"
	"sync"
)

// Registry holds module port sets by name for cross wiring during bootstrap.
// One registry is created per composition root and owned by it
type Registry struct {
	mu  sync.RWMutex
	reg map[string]any
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry { return &Registry{reg: map[string]any{}} }

// Add registers every module's ports under its name. Modules without ports are skipped
func (r *Registry) Add(mods ...Module) {
	for _, m := range mods {
		if m == nil || m.Ports() == nil {
			continue
		}
		r.Register(m.Name(), m.Ports())
	}
}

// Register stores a port set for a module name, replacing any previous one
func (r *Registry) Register(name string, ports any) {
	r.mu.Lock()
	r.reg[name] = ports
	r.mu.Unlock()
}

// Names lists the registered module names in order
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.reg))
	for name := range r.reg {
		out = append(out, name)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

// PortsAs fetches T from the port set registered for name. Struct bundles
// are searched field by field like PortsOf
func PortsAs[T any](r *Registry, name string) (T, bool) {
	r.mu.RLock()
	v, ok := r.reg[name]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	return portFrom[T](v)
}
