package transport

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mwittig/logger-winston/config"
)

// Factory constructs a transport from its resolved options.
type Factory func(cfg config.TransportConfig) (Transport, error)

// UnknownKindError is returned when a configured transport kind has no
// registered factory.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown transport kind %q", e.Kind)
}

// registry is the global kind-to-factory table.
var registry = &factoryRegistry{
	factories: map[string]Factory{
		"Console": NewConsole,
		"File":    NewFile,
		"Http":    NewHTTP,
	},
}

type factoryRegistry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// Register installs a factory for the given capitalized kind name,
// replacing any existing one. The lookup is case-sensitive.
func Register(kind string, f Factory) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.factories[kind] = f
}

// New constructs a transport of the given kind. Unknown kinds fail with
// an UnknownKindError.
func New(kind string, cfg config.TransportConfig) (Transport, error) {
	registry.mu.RLock()
	f, ok := registry.factories[kind]
	registry.mu.RUnlock()
	if !ok {
		return nil, &UnknownKindError{Kind: kind}
	}
	return f(cfg)
}

// KindFromKey derives the capitalized transport kind from a configured
// transport key: the portion before any "#" discriminator with its first
// character upper-cased, so "file#debug" yields "File".
func KindFromKey(key string) string {
	base, _, _ := strings.Cut(key, "#")
	if base == "" {
		return ""
	}
	return strings.ToUpper(base[:1]) + base[1:]
}
