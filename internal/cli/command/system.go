package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// SystemCommand returns the system subcommand group.
func SystemCommand() *cli.Command {
	return &cli.Command{
		Name:    "system",
		Aliases: []string{"sys"},
		Usage:   "Server lifecycle and diagnostics",
		Subcommands: []*cli.Command{
			{
				Name:  "info",
				Usage: "Print server version and status",
				Action: func(c *cli.Context) error {
					return runAdmin(c, "/server_info")
				},
			},
			{
				Name:      "health",
				Usage:     "Force the health-check outcome",
				ArgsUsage: "<fail|ok>",
				Action: func(c *cli.Context) error {
					switch c.Args().First() {
					case "fail":
						return runAdmin(c, "/healthcheck/fail")
					case "ok":
						return runAdmin(c, "/healthcheck/ok")
					default:
						return fmt.Errorf("usage: system health <fail|ok>")
					}
				},
			},
			{
				Name:      "profiler",
				Usage:     "Toggle the CPU profiler",
				ArgsUsage: "<on|off>",
				Action: func(c *cli.Context) error {
					switch c.Args().First() {
					case "on":
						return runAdmin(c, "/cpuprofiler?enable=y")
					case "off":
						return runAdmin(c, "/cpuprofiler?enable=n")
					default:
						return fmt.Errorf("usage: system profiler <on|off>")
					}
				},
			},
			{
				Name:  "quit",
				Usage: "Begin graceful server shutdown",
				Action: func(c *cli.Context) error {
					return runAdmin(c, "/quitquitquit")
				},
			},
			{
				Name:  "hot-restart-version",
				Usage: "Print the hot restart compatibility version",
				Action: func(c *cli.Context) error {
					return runAdmin(c, "/hot_restart_version")
				},
			},
		},
	}
}
