// Package domain defines the core domain model for LockMap.
//
// LockMap's value domain is deliberately tiny: 64-bit integer keys and
// values. What this package owns is the error taxonomy shared by every
// serving surface, so that HTTP, RESP and CLI all report the same
// structured codes.
package domain
