// Package shutdown provides graceful shutdown for lockmap-server.
//
// This package handles process termination signals:
//
//   - Signal handling (SIGINT, SIGTERM)
//   - Timeout-based forced shutdown
//   - Cleanup hook registration, run in reverse order
//
// @design DS-0501
package shutdown
