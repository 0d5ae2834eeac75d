package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/skillshell/internal/build"
	"github.com/dtnitsch/skillshell/internal/db"
	"github.com/dtnitsch/skillshell/internal/inspect"
	"github.com/dtnitsch/skillshell/internal/render"
	"github.com/dtnitsch/skillshell/internal/serve"
	"github.com/dtnitsch/skillshell/models"
	"github.com/dtnitsch/skillshell/pkg/help"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "skillshell",
		Usage: "Render, build and serve Anoma Skills pages inside the site shell",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file (metadata overrides and paths)",
				Value:   models.DefaultConfigFile,
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "render",
				Usage:  "Write one document to stdout",
				Action: render.RenderAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "page", Usage: "HTML fragment to place in the body"},
				},
			},
			{
				Name:   "build",
				Usage:  "Render every page fragment into a static site",
				Action: build.BuildAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "pages", Usage: "directory of page fragments"},
					&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Usage: "directory for rendered documents"},
					&cli.StringFlag{Name: "db", Usage: "build history database"},
					&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "concurrent render workers", Value: 4},
					&cli.BoolFlag{Name: "skip-language-check", Usage: "do not detect the language of page content"},
				},
			},
			{
				Name:   "serve",
				Usage:  "Serve page fragments wrapped in the shell",
				Action: serve.ServeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "pages", Usage: "directory of page fragments"},
					&cli.StringFlag{Name: "listen", Aliases: []string{"l"}, Usage: "listen address"},
				},
			},
			{
				Name:      "inspect",
				Usage:     "Check a rendered document against the shell",
				ArgsUsage: "<file-or-url>",
				Action:    inspect.InspectAction,
			},
			{
				Name:  "quickstart",
				Usage: "Print a short YAML usage guide",
				Action: func(c *cli.Context) error {
					fmt.Print(help.QuickstartYAML)
					return nil
				},
			},
			{
				Name:   "metadata",
				Usage:  "Print the effective page metadata as YAML",
				Action: render.MetadataAction,
			},
			{
				Name:   "history",
				Usage:  "List recorded builds",
				Action: db.HistoryAction,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Usage: "maximum builds to list", Value: 20},
					&cli.StringFlag{Name: "db", Usage: "build history database"},
				},
				Subcommands: []*cli.Command{
					{
						Name:      "show",
						Usage:     "Show the pages of a build (latest when no ID is given)",
						ArgsUsage: "[build-id]",
						Action:    db.ShowAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db", Usage: "build history database"},
						},
					},
				},
			},
		},
	}
}
