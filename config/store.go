package config

import "sync"

// Store holds the process-wide logging configuration tree. The first
// successful Init wins; later calls are silent no-ops. Reads always
// return deep copies, so resolution never mutates the stored tree.
type Store struct {
	mu   sync.RWMutex
	tree LoggingConfig
}

// NewStore creates an empty configuration store.
func NewStore() *Store {
	return &Store{}
}

// Init captures the logging section of a raw, JSON-shaped configuration
// object. If the store already holds a non-empty tree the call is a
// no-op. A raw object without a "logging" mapping installs the built-in
// default instead; malformed input is never an error.
func (s *Store) Init(raw map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tree) > 0 {
		return
	}

	logging, ok := raw["logging"].(map[string]any)
	if !ok {
		s.tree = DefaultConfig()
		return
	}

	tree := make(LoggingConfig, len(logging))
	for topic, v := range logging {
		container, ok := v.(map[string]any)
		if !ok {
			// Tolerate junk entries rather than failing the whole tree.
			continue
		}
		tree[topic] = ContainerConfig(copyMap(container))
	}
	s.tree = tree
}

// Initialized reports whether a configuration tree has been captured.
func (s *Store) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tree) > 0
}

// Container returns a deep copy of the container configured for the
// given topic, and whether one exists.
func (s *Store) Container(topic string) (ContainerConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.tree[topic]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

// DefaultContainer returns a deep copy of the default container, or the
// built-in fallback when no default entry exists.
func (s *Store) DefaultContainer() ContainerConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.tree[DefaultTopic]; ok {
		return c.Clone()
	}
	return FallbackContainer()
}

// Snapshot returns a deep copy of the whole tree.
func (s *Store) Snapshot() LoggingConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Clone()
}
