package logger

import (
	"sync"

	"github.com/mwittig/logger-winston/config"
	"github.com/mwittig/logger-winston/transport"
)

// registry is the global named-logger registry.
var registry = &loggerRegistry{
	loggers: make(map[string]*Logger),
}

type loggerRegistry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}

// Register stores a resolved logger under its topic, replacing any
// previous registration.
func Register(topic string, l *Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.loggers[topic] = l
}

// Get retrieves the logger registered for a topic. Unregistered topics
// are resolved against the process-wide configuration; if that fails
// (for example on an unknown transport kind) a bare console logger for
// the topic is returned so callers always get a usable logger.
func Get(topic string) *Logger {
	registry.mu.RLock()
	l, ok := registry.loggers[topic]
	registry.mu.RUnlock()
	if ok {
		return l
	}

	l, err := Resolve(topic)
	if err == nil {
		return l
	}
	return fallbackLogger(topic)
}

func fallbackLogger(topic string) *Logger {
	t, err := transport.NewConsole(config.TransportConfig{
		"label": topic,
		"name":  "console",
	})
	if err != nil {
		return newLogger(topic, nil)
	}
	return newLogger(topic, []transport.Transport{transport.Observe(t, topic)})
}
