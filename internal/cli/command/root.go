// Package command provides CLI command definitions for lockmap-cli.
package command

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/lockmap-go/internal/cli/client"
	"github.com/yndnr/lockmap-go/internal/cli/output"
	"github.com/yndnr/lockmap-go/internal/infra/buildinfo"
)

// App creates the lockmap-cli application.
func App() *cli.App {
	return &cli.App{
		Name:    "lockmap-cli",
		Usage:   "command-line client for lockmap-server",
		Version: buildinfo.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Usage:   "server address",
				Value:   "127.0.0.1:5080",
				EnvVars: []string{"LOCKMAP_CLI_ADDR"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format (table, json)",
				Value:   "table",
				EnvVars: []string{"LOCKMAP_CLI_FORMAT"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "request timeout",
				Value: 10 * time.Second,
			},
		},
		Commands: []*cli.Command{
			getCommand(),
			setCommand(),
			delCommand(),
			statsCommand(),
			dumpCommand(),
			flushCommand(),
			pingCommand(),
		},
	}
}

// apiClient builds the API client from the global flags.
func apiClient(c *cli.Context) *client.Client {
	return client.New(c.String("addr"), c.Duration("timeout"))
}

// formatter builds the output formatter from the global flags.
func formatter(c *cli.Context) output.Formatter {
	return output.New(c.String("format"))
}

// printResult renders data with the selected formatter.
func printResult(c *cli.Context, data any) error {
	return formatter(c).Format(os.Stdout, data)
}

// parseInt64Arg parses the positional argument at index as an int64.
func parseInt64Arg(c *cli.Context, index int, name string) (int64, error) {
	raw := c.Args().Get(index)
	if raw == "" {
		return 0, fmt.Errorf("missing %s argument", name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %q", name, raw)
	}
	return v, nil
}
