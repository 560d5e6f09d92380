// Package logging provides structured logging for tvremote.
//
// This package wraps a zap logger. Logging is silent by default so it never
// interferes with the interactive remote, which owns the terminal. It is
// enabled by a level from the command line, the config file, or the
// TVREMOTE_LOG_LEVEL environment variable.
//
// # Log Levels
//
//   - Debug: per-device detail (dropped lookups, command results, key events)
//   - Info: session milestones (discovery started, device found, quit)
//   - Warn: recoverable local problems (metrics listener failed)
//   - Error: fatal problems (multicast search failure)
//
// # Component Loggers
//
// Long-lived components take a *zap.Logger, normally obtained with Named:
//
//	engine := discovery.NewEngine(searcher, family,
//	    discovery.WithLogger(logging.Named("discovery")))
//
// # Configuration
//
//	if err := logging.Initialize(logging.Options{Level: "debug", File: path}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
package logging
