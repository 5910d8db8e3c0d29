// Package config defines the lockmap-server configuration structure,
// its defaults and validation.
//
// Configuration is loaded by internal/infra/confloader with the
// precedence Env > File > Default; this package only describes the
// shape and the rules.
package config
