// Package registry provides a global registry for output format factories.
// Formats register themselves in init() functions, allowing the CLI to
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Format renders a generation run. It doubles as the obstacle container for
// that run, so formats that list placements see every obstacle the
// generator hands out.
type Format interface {
	maze.Container

	// ID returns a unique identifier for this format (e.g., "ascii", "yaml").
	// Used for the --format flag.
	ID() string

	// Title returns a human-readable description for listings.
	Title() string

	// Write renders the finished run.
	Write(w io.Writer, res maze.Result) error
}

// FormatInfo contains metadata about a registered format.
type FormatInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a format.
type Factory func() Format

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a format factory to the registry.
// Panics if a format with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: format %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered formats, sorted by ID.
func List() []FormatInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FormatInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FormatInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new format by its ID.
// Returns an error if the format ID is not registered.
func Create(id string) (Format, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown format %q", id)
	}

	return f(), nil
}

// Exists checks if a format with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
