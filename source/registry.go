// SPDX-License-Identifier: EPL-2.0

package source

import (
	"fmt"
	"slices"
	"sync"
)

// Factory builds a new SampleSource running at sampleRate Hz.
type Factory func(sampleRate float64) SampleSource

// Registry for source factories by name (e.g., "sine", "fm").
type Registry struct {
	factories map[string]Factory

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		mtx:       &sync.Mutex{},
	}
}

// Register adds or replaces the factory stored under name.
func (r *Registry) Register(name string, f Factory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.factories[name] = f
}

func (r *Registry) Get(name string) (Factory, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.factories[name]
	return f, ok
}

// New builds the source registered under name.
func (r *Registry) New(name string, sampleRate float64) (SampleSource, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}

	return f(sampleRate), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
