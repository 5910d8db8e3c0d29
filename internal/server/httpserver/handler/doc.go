// Package handler provides HTTP request handlers for LockMap.
//
// This package implements the /v1 API endpoints for key/value access,
// counters, diagnostics, and the health probe. All JSON responses use
// the standard envelope format (except /metrics, which uses the
// Prometheus text format).
package handler
