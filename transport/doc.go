// Package transport provides the log sinks a resolved logger writes to,
// and the constructor registry that maps configured transport kinds to
// their implementations.
//
// Built-in kinds are Console, File and Http. A transport key in the
// configuration names a kind, optionally with a "#<discriminator>" suffix
// so one container can hold several instances of the same kind:
//
//	console:
//	  level: "info"
//	file#audit:
//	  filename: "/var/log/audit.log"
//
// Additional kinds can be installed with Register. Runtime write errors
// never reach the logging call site; they are reported to the package's
// diagnostic sink instead (see Observe).
package transport
