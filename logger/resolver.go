package logger

import (
	"fmt"
	"sync"

	"github.com/mwittig/logger-winston/config"
	"github.com/mwittig/logger-winston/transport"
)

// Resolver resolves per-topic loggers from a configuration store. The
// store is threaded in at construction time; the resolver never mutates
// it. Resolved loggers are cached per topic, so repeated Resolve calls
// return the same logger and transports are constructed once.
type Resolver struct {
	store *config.Store

	mu    sync.Mutex
	cache map[string]*Logger
}

// NewResolver creates a resolver reading from the given store.
func NewResolver(store *config.Store) *Resolver {
	return &Resolver{
		store: store,
		cache: make(map[string]*Logger),
	}
}

// Resolve returns the logger for a topic, building it on first use.
//
// The topic's container is looked up in the store, falling back to the
// default container when the topic has no entry. An inheritDefault flag
// merges the default container underneath the topic's own entries before
// transports are built; the flag itself never reaches a transport. Every
// transport receives the original key as its name and the topic as its
// label unless one was configured. Transport keys are processed in
// sorted order.
//
// An unknown transport kind fails the whole resolution.
func (r *Resolver) Resolve(topic string) (*Logger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.cache[topic]; ok {
		return l, nil
	}

	l, err := r.build(topic)
	if err != nil {
		return nil, err
	}
	r.cache[topic] = l
	Register(topic, l)
	return l, nil
}

func (r *Resolver) build(topic string) (*Logger, error) {
	defaultContainer := r.store.DefaultContainer()

	container, ok := r.store.Container(topic)
	if !ok {
		container = defaultContainer
	}
	if container.InheritDefault() {
		container = config.MergeContainers(defaultContainer, container)
	}
	delete(container, config.InheritDefaultKey)

	var transports []transport.Transport
	for _, key := range container.TransportKeys() {
		opts := container.Transport(key)
		if _, ok := opts["label"]; !ok {
			opts["label"] = topic
		}
		// Keep the discriminator in the name for diagnostics.
		opts["name"] = key

		t, err := transport.New(transport.KindFromKey(key), opts)
		if err != nil {
			return nil, fmt.Errorf("resolve topic %q: transport %q: %w", topic, key, err)
		}
		transports = append(transports, transport.Observe(t, topic))
	}

	return newLogger(topic, transports), nil
}

// --- Package-level state ---

var (
	defaultStore    = config.NewStore()
	defaultResolver = NewResolver(defaultStore)
)

// Init captures the process-wide logging configuration. The first call
// with a usable configuration wins; later calls are no-ops.
func Init(raw map[string]any) {
	defaultStore.Init(raw)
}

// Resolve resolves a topic against the process-wide configuration.
// Without a prior Init call every topic gets the built-in console
// transport.
func Resolve(topic string) (*Logger, error) {
	return defaultResolver.Resolve(topic)
}
