// Package registry provides a global registry of runnable programs.
// Programs register themselves in init() functions, allowing the CLI and
// the SSH server to discover and build them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/consolekit/internal/layout"
	"github.com/vovakirdan/consolekit/internal/ui"
)

// Factory builds a fresh, made parent window for one run of a program.
type Factory func(env layout.Env) (*ui.ParentWindow, error)

// Program contains metadata about a registered program.
type Program struct {
	ID    string
	Title string
	// Info reports whether the program is a picker whose info slots are
	// worth printing after it closes.
	Info bool
}

type entry struct {
	Program
	build Factory
}

var (
	programs = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a program to the registry.
// Panics if a program with the same ID is already registered.
func Register(p Program, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := programs[p.ID]; exists {
		panic(fmt.Sprintf("registry: program %q already registered", p.ID))
	}
	if f == nil {
		panic(fmt.Sprintf("registry: program %q has no factory", p.ID))
	}
	programs[p.ID] = entry{Program: p, build: f}
}

// List returns all registered programs, sorted by ID.
func List() []Program {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Program, 0, len(programs))
	for _, e := range programs {
		result = append(result, e.Program)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the metadata of a registered program.
func Lookup(id string) (Program, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := programs[id]
	if !ok {
		return Program{}, fmt.Errorf("registry: unknown program %q", id)
	}
	return e.Program, nil
}

// Create builds a new parent window for the program with the given ID.
func Create(id string, env layout.Env) (*ui.ParentWindow, error) {
	mu.RLock()
	e, ok := programs[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown program %q", id)
	}
	pw, err := e.build(env)
	if err != nil {
		return nil, fmt.Errorf("registry: build %q: %w", id, err)
	}
	return pw, nil
}

// Exists checks if a program with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := programs[id]
	return ok
}
