package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/davidbz/chefgenius/internal/domain"
)

// Registry implements the GeneratorRegistry interface.
type Registry struct {
	mu         sync.RWMutex
	generators map[string]domain.Generator
}

var _ domain.GeneratorRegistry = (*Registry)(nil)

// NewRegistry creates a new generator registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:         sync.RWMutex{},
		generators: make(map[string]domain.Generator),
	}
}

// Register adds a generator to the registry.
func (r *Registry) Register(_ context.Context, generator domain.Generator) error {
	if generator == nil {
		return errors.New("generator cannot be nil")
	}

	name := generator.Name()
	if name == "" {
		return errors.New("generator name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.generators[name]; exists {
		return fmt.Errorf("generator %s already registered", name)
	}

	r.generators[name] = generator

	return nil
}

// Get retrieves a generator by name.
func (r *Registry) Get(_ context.Context, name string) (domain.Generator, error) {
	if name == "" {
		return nil, errors.New("generator name cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	generator, exists := r.generators[name]
	if !exists {
		return nil, fmt.Errorf("generator %s not found", name)
	}

	return generator, nil
}

// List returns the names of all registered generators, sorted.
func (r *Registry) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// Select returns the first registered generator among preferred and fallbacks.
func (r *Registry) Select(_ context.Context, preferred string, fallbacks ...string) (domain.Generator, error) {
	candidates := append([]string{preferred}, fallbacks...)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range candidates {
		if generator, exists := r.generators[name]; exists {
			return generator, nil
		}
	}

	return nil, fmt.Errorf("no generator registered among %v", candidates)
}
