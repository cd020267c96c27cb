package command

import (
	"fmt"
	"net/url"

	"github.com/urfave/cli/v2"
)

// LoggingCommand returns the logging subcommand group.
func LoggingCommand() *cli.Command {
	return &cli.Command{
		Name:  "logging",
		Usage: "Query and change log levels",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print the active loggers and their levels",
				Action: func(c *cli.Context) error {
					return runAdmin(c, "/logging")
				},
			},
			{
				Name:      "set",
				Usage:     "Change the log level",
				ArgsUsage: "<level>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "component",
						Usage: "Change only this component's logger",
					},
				},
				Action: func(c *cli.Context) error {
					level := c.Args().First()
					if level == "" {
						return fmt.Errorf("usage: logging set <level>")
					}

					key := "level"
					if component := c.String("component"); component != "" {
						key = component
					}
					return runAdmin(c, "/logging?"+url.QueryEscape(key)+"="+url.QueryEscape(level))
				},
			},
		},
	}
}
