package command

import (
	"github.com/urfave/cli/v2"
)

// ClusterCommand returns the state-inspection subcommand group.
func ClusterCommand() *cli.Command {
	return &cli.Command{
		Name:  "state",
		Usage: "Inspect proxy state",
		Subcommands: []*cli.Command{
			{
				Name:  "clusters",
				Usage: "Print upstream cluster status",
				Action: func(c *cli.Context) error {
					return runAdmin(c, "/clusters")
				},
			},
			{
				Name:  "listeners",
				Usage: "Print the data-path listeners",
				Action: func(c *cli.Context) error {
					return runAdmin(c, jsonCapable(c, "/listeners", "/listeners?format=json"))
				},
			},
			{
				Name:  "runtime",
				Usage: "Print runtime key/value overrides",
				Action: func(c *cli.Context) error {
					return runAdmin(c, jsonCapable(c, "/runtime", "/runtime?format=json"))
				},
			},
			{
				Name:  "config-dump",
				Usage: "Dump the effective configuration",
				Action: func(c *cli.Context) error {
					return runAdmin(c, "/config_dump")
				},
			},
			{
				Name:  "certs",
				Usage: "Print loaded certificate details",
				Action: func(c *cli.Context) error {
					return runAdmin(c, "/certs")
				},
			},
		},
	}
}
