// Package service implements the business logic layer for LockMap.
//
// MapService is the single seam between the serving surfaces (HTTP,
// RESP, CLI) and the map core: it owns the tsmap instance, translates
// misses into domain errors where the transport wants an error, and
// records metrics for every operation.
package service
