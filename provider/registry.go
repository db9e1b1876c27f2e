package provider

import (
	"fmt"
	"sort"
)

// Registry maps lower-case source identifiers (e.g. "youtube") to provider
// implementations. It is populated once at initialization and read-only
// afterwards; a lookup miss is not an error anywhere in the pipeline, it
// means "no provider handles this block".
type Registry struct {
	providers map[string]Provider
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a provider under the given source identifier.
func (r *Registry) Register(name string, p Provider) {
	if _, exists := r.providers[name]; exists {
		panic(fmt.Sprintf("provider with name '%s' already registered", name))
	}
	r.providers[name] = p
}

// Lookup returns the provider registered under name, if any.
func (r *Registry) Lookup(name string) (Provider, bool) {
	p, ok := r.providers[name]
	return p, ok
}

// Names returns all registered source identifiers in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
