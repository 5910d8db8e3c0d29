package command

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/lockmap-go/internal/cli/output"
)

func getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "fetch the value stored under a key",
		ArgsUsage: "<key>",
		Action: func(c *cli.Context) error {
			key, err := parseInt64Arg(c, 0, "key")
			if err != nil {
				return err
			}

			res, err := apiClient(c).Get(c.Context, key)
			if err != nil {
				return err
			}

			if c.String("format") == "json" {
				return printResult(c, res)
			}
			fmt.Println(*res.Value)
			return nil
		},
	}
}

func setCommand() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "store a value under a key",
		ArgsUsage: "<key> <value>",
		Action: func(c *cli.Context) error {
			key, err := parseInt64Arg(c, 0, "key")
			if err != nil {
				return err
			}
			value, err := parseInt64Arg(c, 1, "value")
			if err != nil {
				return err
			}

			res, err := apiClient(c).Put(c.Context, key, value)
			if err != nil {
				return err
			}

			if c.String("format") == "json" {
				return printResult(c, res)
			}
			if res.Existed {
				fmt.Printf("OK (previous: %d)\n", *res.Previous)
			} else {
				fmt.Println("OK")
			}
			return nil
		},
	}
}

func delCommand() *cli.Command {
	return &cli.Command{
		Name:      "del",
		Usage:     "remove a key",
		ArgsUsage: "<key>",
		Action: func(c *cli.Context) error {
			key, err := parseInt64Arg(c, 0, "key")
			if err != nil {
				return err
			}

			res, err := apiClient(c).Delete(c.Context, key)
			if err != nil {
				return err
			}

			if c.String("format") == "json" {
				return printResult(c, res)
			}
			fmt.Printf("OK (removed: %d)\n", *res.Removed)
			return nil
		},
	}
}

func dumpCommand() *cli.Command {
	return &cli.Command{
		Name:  "dump",
		Usage: "list every bucket's chain contents",
		Action: func(c *cli.Context) error {
			buckets, err := apiClient(c).Dump(c.Context)
			if err != nil {
				return err
			}

			if c.String("format") == "json" {
				return printResult(c, buckets)
			}

			tbl := &output.Table{Headers: []string{"BUCKET", "KEY", "VALUE"}}
			for _, b := range buckets {
				for _, e := range b.Entries {
					tbl.AddRow(
						strconv.Itoa(b.Bucket),
						strconv.FormatInt(e.Key, 10),
						strconv.FormatInt(e.Value, 10),
					)
				}
			}
			return printResult(c, tbl)
		},
	}
}
