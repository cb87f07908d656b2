// Package registry provides a global registry for game definition
// factories. Built-in templates register themselves in init()
// functions, allowing the studio and catalog to instantiate
// definitions by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/playform/playform/internal/runtime"
)

// Info contains metadata about a registered definition.
type Info struct {
	Name  string
	Title string
}

// Factory is a function that creates a fresh definition instance.
type Factory func() runtime.Definition

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a definition factory to the registry.
// Typically called from a template's init() function.
// Panics if a definition with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: definition %q already registered", name))
	}

	factories[name] = f

	// Get the title from a temporary instance.
	d := f()
	titles[name] = d.Title()
}

// List returns information about all registered definitions, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:  name,
			Title: titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a fresh definition by name.
// Returns an error if the name is not registered.
func Create(name string) (runtime.Definition, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown definition %q", name)
	}

	return f(), nil
}

// Exists checks if a definition with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
