package command

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/lockmap-go/internal/cli/output"
)

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "show the server's counter snapshot",
		Action: func(c *cli.Context) error {
			st, err := apiClient(c).Stats(c.Context)
			if err != nil {
				return err
			}

			if c.String("format") == "json" {
				return printResult(c, st)
			}

			tbl := &output.Table{Headers: []string{"FIELD", "VALUE"}}
			tbl.AddRow("capacity", strconv.Itoa(st.Capacity))
			tbl.AddRow("size", strconv.Itoa(st.Size))
			tbl.AddRow("ops", strconv.FormatUint(st.Ops, 10))
			return printResult(c, tbl)
		},
	}
}

func flushCommand() *cli.Command {
	return &cli.Command{
		Name:  "flush",
		Usage: "remove every entry from the map",
		Action: func(c *cli.Context) error {
			st, err := apiClient(c).Flush(c.Context)
			if err != nil {
				return err
			}

			if c.String("format") == "json" {
				return printResult(c, st)
			}
			fmt.Printf("OK (size: %d, lifetime ops: %d)\n", st.Size, st.Ops)
			return nil
		},
	}
}

func pingCommand() *cli.Command {
	return &cli.Command{
		Name:  "ping",
		Usage: "check server liveness",
		Action: func(c *cli.Context) error {
			if err := apiClient(c).Ping(c.Context); err != nil {
				return err
			}
			fmt.Println("PONG")
			return nil
		},
	}
}
