package config

import "sort"

// Reserved keys in the configuration tree.
const (
	// DefaultTopic is the topic whose container applies to topics
	// without an entry of their own.
	DefaultTopic = "default"
	// InheritDefaultKey marks a container that wants the default
	// container merged underneath its own entries.
	InheritDefaultKey = "inheritDefault"
)

// TransportConfig holds the free-form options of a single transport
// instance. Options are passed through to the transport constructor;
// "level", "label" and "name" are recognized cross-cutting keys.
type TransportConfig map[string]any

// Clone returns a deep copy of the transport options.
func (t TransportConfig) Clone() TransportConfig {
	if t == nil {
		return nil
	}
	return TransportConfig(copyMap(t))
}

// ContainerConfig maps transport keys to their options for one topic.
// A transport key is a kind name, optionally suffixed with "#<discriminator>"
// to allow several instances of the same kind. It may also carry the
// InheritDefaultKey flag.
type ContainerConfig map[string]any

// InheritDefault reports whether the container requests a merge with the
// default container.
func (c ContainerConfig) InheritDefault() bool {
	v, ok := c[InheritDefaultKey].(bool)
	return ok && v
}

// TransportKeys returns the container's transport keys in sorted order,
// with the inherit flag excluded.
func (c ContainerConfig) TransportKeys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		if k == InheritDefaultKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Transport returns the options for the given transport key. A key whose
// value is not a mapping yields empty options.
func (c ContainerConfig) Transport(key string) TransportConfig {
	if m, ok := c[key].(map[string]any); ok {
		return TransportConfig(m)
	}
	return TransportConfig{}
}

// Clone returns a deep copy of the container.
func (c ContainerConfig) Clone() ContainerConfig {
	if c == nil {
		return nil
	}
	return ContainerConfig(copyMap(c))
}

// MergeContainers deep-merges src over base and returns the result.
// Values from src win on key collision; neither input is modified.
func MergeContainers(base, src ContainerConfig) ContainerConfig {
	out := copyMap(base)
	mergeMap(out, src)
	return ContainerConfig(out)
}

// LoggingConfig is the full configuration tree: topic name to container.
type LoggingConfig map[string]ContainerConfig

// Clone returns a deep copy of the tree.
func (lc LoggingConfig) Clone() LoggingConfig {
	out := make(LoggingConfig, len(lc))
	for topic, c := range lc {
		out[topic] = c.Clone()
	}
	return out
}

// DefaultConfig returns the built-in fallback tree: a single default
// container with one console transport and no options.
func DefaultConfig() LoggingConfig {
	return LoggingConfig{
		DefaultTopic: ContainerConfig{
			"console": map[string]any{},
		},
	}
}

// FallbackContainer returns the built-in container used when no default
// entry exists: a single console transport with no options.
func FallbackContainer() ContainerConfig {
	return ContainerConfig{"console": map[string]any{}}
}

// --- deep copy / merge over nested maps ---

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}

// mergeMap merges src into dst in place. Nested maps merge recursively,
// any other collision is won by src.
func mergeMap(dst, src map[string]any) {
	for k, sv := range src {
		if sm, ok := sv.(map[string]any); ok {
			if dm, ok := dst[k].(map[string]any); ok {
				mergeMap(dm, sm)
				continue
			}
		}
		dst[k] = copyValue(sv)
	}
}
