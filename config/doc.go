// Package config holds the logging configuration tree consumed by the
// logger resolver.
//
// The tree maps topic names to containers, and containers map transport
// keys to free-form transport options. The reserved topic "default"
// supplies the configuration used for topics that have no entry of their
// own, and the reserved container key "inheritDefault" requests a merge
// of the default container underneath a topic's overrides.
//
// # Configuration
//
//	logging:
//	  default:
//	    console:
//	      level: "info"
//	  Server:
//	    inheritDefault: true
//	    console:
//	      level: "debug"
//	    file#audit:
//	      filename: "/var/log/server-audit.log"
//
// # Usage
//
//	raw, err := config.Load("config.yml")
//	if err != nil { ... }
//	store := config.NewStore()
//	store.Init(raw)
package config
