// Package logger resolves named, per-topic loggers from the logging
// configuration tree, on top of zerolog.
//
// A topic is resolved against its configured container, falling back to
// the "default" container (or a built-in console transport) when it has
// no entry of its own. Each configured transport key yields one owned
// transport instance; the resolved logger fans events out to all of them
// and tags every event with its topic.
//
// # Usage
//
//	logger.Init(raw)
//	log, err := logger.Resolve("Server")
//	if err != nil { ... }
//	log.Info("listening", logger.Fields("port", 8080))
//
// Hosts that want the configuration threaded explicitly construct their
// own store and resolver instead of using the package-level state:
//
//	store := config.NewStore()
//	store.Init(raw)
//	r := logger.NewResolver(store)
//	log, err := r.Resolve("Server")
package logger
