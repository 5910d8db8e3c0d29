// Package httpserver provides the HTTP API server for LockMap.
//
// It uses the Go standard library net/http for routing and serving,
// exposing the key/value operations under /v1 plus health and metrics
// endpoints. Cross-cutting concerns (request IDs, panic recovery,
// per-IP rate limiting, request logging) are implemented as composable
// middleware.
package httpserver
