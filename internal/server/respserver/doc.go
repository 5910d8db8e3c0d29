// Package respserver provides a Redis protocol compatible server for LockMap.
//
// This package implements a subset of the RESP protocol using only the
// Go standard library for the wire format. Keys and values are signed
// 64-bit integers; GET, SET and DEL answer with the map's
// previous-value semantics rather than vanilla Redis replies (SET
// returns the overwritten value or a nil bulk for a new key, DEL
// returns the removed value or a nil bulk for a miss).
//
// Supported commands: PING, ECHO, GET, SET, DEL, EXISTS, DBSIZE, KEYS,
// FLUSHDB, INFO, QUIT.
//
// @design DS-0301
package respserver
