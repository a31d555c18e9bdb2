package source

import (
	"errors"
	"fmt"
	"sort"
)

// Errors returned by Registry operations.
var (
	ErrNotRegistered     = errors.New("source: not registered")
	ErrAlreadyRegistered = errors.New("source: already registered")
)

// Loader constructs a Source, typically fetching its template grid from a
// TemplateProvider captured at registration time.
type Loader func() (Source, error)

type registryEntry struct {
	version string
	load    Loader
}

// Registry maps model names to versioned loader functions. It is an explicit
// object owned by the caller; there is no process-wide instance. Register is
// not safe for concurrent use; finish registration before loading from
// multiple goroutines.
type Registry struct {
	entries map[string][]registryEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string][]registryEntry)}
}

// Register adds a loader under name and version. Registering the same
// name/version pair twice returns ErrAlreadyRegistered.
func (r *Registry) Register(name, version string, load Loader) error {
	for _, e := range r.entries[name] {
		if e.version == version {
			return fmt.Errorf("%w: %s version %s", ErrAlreadyRegistered, name, version)
		}
	}

	r.entries[name] = append(r.entries[name], registryEntry{version: version, load: load})

	return nil
}

// Load constructs the most recently registered version of name.
func (r *Registry) Load(name string) (Source, error) {
	versions := r.entries[name]
	if len(versions) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}

	return versions[len(versions)-1].load()
}

// LoadVersion constructs a specific registered version of name.
func (r *Registry) LoadVersion(name, version string) (Source, error) {
	for _, e := range r.entries[name] {
		if e.version == version {
			return e.load()
		}
	}

	return nil, fmt.Errorf("%w: %s version %s", ErrNotRegistered, name, version)
}

// Names lists the registered model names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
