package command

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/edgerelay/edgerelay-go/internal/cli/connection"
	"github.com/edgerelay/edgerelay-go/internal/cli/output"
	"github.com/edgerelay/edgerelay-go/internal/infra/buildinfo"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "edgerelay-cli",
		Usage:   "EdgeRelay admin endpoint client",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			StatsCommand(),
			LoggingCommand(),
			SystemCommand(),
			ClusterCommand(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "Admin endpoint address (e.g., 127.0.0.1:9901)",
			EnvVars: []string{"EDGERELAY_ADMIN"},
			Value:   "127.0.0.1:9901",
		},
		&cli.StringFlag{
			Name:    "socket",
			Usage:   "Local admin socket path; takes precedence over --server",
			EnvVars: []string{"EDGERELAY_ADMIN_SOCKET"},
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Request timeout",
			Value: 30 * time.Second,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: text, json, yaml",
			Value:   "text",
		},
	}
}

func newClient(c *cli.Context) *connection.Client {
	timeout := c.Duration("timeout")
	if socket := c.String("socket"); socket != "" {
		return connection.NewSocket(socket, timeout)
	}
	return connection.NewTCP(c.String("server"), timeout)
}

func outputFormat(c *cli.Context) (output.Format, error) {
	return output.ParseFormat(c.String("output"))
}

// runAdmin issues one admin request and renders the response in the
// selected output format.
func runAdmin(c *cli.Context, pathAndQuery string) error {
	format, err := outputFormat(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.Duration("timeout"))
	defer cancel()

	body, err := newClient(c).Command(ctx, pathAndQuery)
	if err != nil {
		return err
	}
	return output.Render(c.App.Writer, format, body)
}

// jsonCapable picks the server-side format matching the requested
// output: structured output formats ask the server for JSON.
func jsonCapable(c *cli.Context, textPath, jsonPath string) string {
	switch output.Format(c.String("output")) {
	case output.FormatJSON, output.FormatYAML:
		return jsonPath
	default:
		return textPath
	}
}
