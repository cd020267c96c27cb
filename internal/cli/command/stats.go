package command

import (
	"github.com/urfave/cli/v2"
)

// StatsCommand returns the stats subcommand group.
func StatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Read and reset server stats",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print all counters and gauges",
				Action: func(c *cli.Context) error {
					return runAdmin(c, jsonCapable(c, "/stats", "/stats?format=json"))
				},
			},
			{
				Name:  "prometheus",
				Usage: "Print stats in Prometheus exposition format",
				Action: func(c *cli.Context) error {
					return runAdmin(c, "/stats/prometheus")
				},
			},
			{
				Name:  "reset",
				Usage: "Zero all counters (gauges are unaffected)",
				Action: func(c *cli.Context) error {
					return runAdmin(c, "/reset_counters")
				},
			},
		},
	}
}
