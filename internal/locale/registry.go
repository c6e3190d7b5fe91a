package locale

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/klog/v2"
)

//go:embed data/*.yaml
var builtinFS embed.FS

// DefaultID is the locale used when callers do not pick one.
const DefaultID = "en-US"

// ErrNotFound is returned when a locale id has no registered loader.
var ErrNotFound = errors.New("locale not found")

// Loader produces a locale on first use.
type Loader func() (*Config, error)

// Registry maps locale ids to loaders and caches loaded locales. It is safe
// for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]Loader
	cache   map[string]*Config
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		loaders: make(map[string]Loader),
		cache:   make(map[string]*Config),
	}
}

// NewBuiltinRegistry returns a registry pre-populated with the locales that
// ship with the module.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	entries, err := builtinFS.ReadDir("data")
	if err != nil {
		// embedded at build time, cannot fail
		panic(err)
	}
	for _, e := range entries {
		id := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		r.Register(id, builtinLoader(id))
	}
	return r
}

func builtinLoader(id string) Loader {
	return func() (*Config, error) {
		b, err := builtinFS.ReadFile("data/" + id + ".yaml")
		if err != nil {
			return nil, err
		}
		return Parse(b)
	}
}

// Register associates id with a loader, replacing any previous loader. A
// previously cached value for id is dropped.
func (r *Registry) Register(id string, l Loader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders[id] = l
	delete(r.cache, id)
}

// Load returns the locale for id, invoking its loader at most once until the
// cache is cleared.
func (r *Registry) Load(id string) (*Config, error) {
	r.mu.RLock()
	cfg, ok := r.cache[id]
	l, registered := r.loaders[id]
	r.mu.RUnlock()
	if ok {
		return cfg, nil
	}
	if !registered {
		return nil, fmt.Errorf("%w: %q (available locales: %s)", ErrNotFound, id, strings.Join(r.Available(), ", "))
	}

	cfg, err := l()
	if err != nil {
		return nil, fmt.Errorf("failed to load locale %q: %w", id, err)
	}
	klog.V(3).InfoS("loaded locale", "id", id)

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.cache[id]; ok {
		// lost a race with another loader, keep the first value
		return cached, nil
	}
	r.cache[id] = cfg
	return cfg, nil
}

// Available returns the registered locale ids in sorted order.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sets.List(sets.KeySet(r.loaders))
}

// IsAvailable reports whether a loader is registered for id.
func (r *Registry) IsAvailable(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.loaders[id]
	return ok
}

// ClearCache drops every loaded locale. Registered loaders are kept.
func (r *Registry) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.cache)
}

var defaultRegistry = NewBuiltinRegistry()

// Register adds a loader to the process-wide registry.
func Register(id string, l Loader) { defaultRegistry.Register(id, l) }

// Load returns a locale from the process-wide registry.
func Load(id string) (*Config, error) { return defaultRegistry.Load(id) }

// Available lists the ids known to the process-wide registry.
func Available() []string { return defaultRegistry.Available() }

// IsAvailable reports whether id is known to the process-wide registry.
func IsAvailable(id string) bool { return defaultRegistry.IsAvailable(id) }

// ClearCache empties the process-wide locale cache.
func ClearCache() { defaultRegistry.ClearCache() }

var defaultLocale = sync.OnceValue(func() *Config {
	cfg, err := builtinLoader(DefaultID)()
	if err != nil {
		panic(fmt.Sprintf("built-in locale %s is broken: %v", DefaultID, err))
	}
	return cfg
})

// Default returns the built-in en-US locale. It is independent of the
// registry cache.
func Default() *Config {
	return defaultLocale()
}
