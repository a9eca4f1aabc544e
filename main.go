package main

import (
	"context"
	stdlog "log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/orgdocs/orgdocs/cmd"
	"github.com/orgdocs/orgdocs/pkg/config"
	"github.com/orgdocs/orgdocs/pkg/log"
)

func main() {
	app := &cli.Command{
		Name:  "orgdocs",
		Usage: "Federated search over IT documentation data",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
				Value: false,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path",
				Value: getDefaultConfigPathOrExit(),
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if c.Bool("debug") {
				log.SetGlobalDebug(true)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmd.InitCommand(),
			cmd.ServeCommand(),
			cmd.SearchCommand(),
			cmd.ImportCommand(),
			cmd.ExportCommand(),
			cmd.StatsCommand(),
			cmd.VersionCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		stdlog.Fatal(err)
	}
}

func getDefaultConfigPathOrExit() string {
	path, err := config.GetDefaultConfigPath()
	if err != nil {
		stdlog.Fatalf("Failed to get default config path: %v", err)
	}
	return path
}
