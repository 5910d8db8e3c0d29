// Package main provides the entry point for lockmap-cli.
//
// The CLI tool provides command-line access to lockmap-server:
//
//   - key operations (get, set, del)
//   - counters and diagnostics (stats, dump)
//   - administration (flush, ping)
//
// Usage:
//
//	lockmap-cli [command] [flags]
//	lockmap-cli set 42 100
//	lockmap-cli stats --format json
package main

import (
	"fmt"
	"os"

	"github.com/yndnr/lockmap-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
