// Package main provides the entry point for lockmap-server.
//
// The server hosts a fixed-capacity concurrent integer map behind two
// surfaces:
//
//   - HTTP API for key/value access, counters, and diagnostics
//   - optional Redis-compatible protocol listener for high-rate access
//
// Usage:
//
//	lockmap-server [flags]
//	lockmap-server --config /path/to/config.yaml
//
// The server loads configuration from the file and LOCKMAP_* environment
// variables, starts the configured listeners, and re-applies the log
// level live when the config file changes.
package main
