package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/doclang/internal/audit"
	"github.com/dtnitsch/doclang/models"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "doclang",
		Usage:     "find documentation pages whose language does not match their locale folder",
		ArgsUsage: "CONTENTDIR DESTINATIONDIR [LOCALE...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML file with audit settings (flags take precedence)",
				EnvVars: []string{"DOCLANG_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "include-archive",
				Usage: "do not exclude archived folders",
			},
			&cli.StringFlag{
				Name:    "exclude-mode",
				Usage:   fmt.Sprintf("folder exclusion rule: %s, %s or %s", models.ExcludeModeSegment, models.ExcludeModePrefix, models.ExcludeModeNone),
				EnvVars: []string{"DOCLANG_EXCLUDE_MODE"},
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "first path segments to exclude in segment mode",
			},
			&cli.StringSliceFlag{
				Name:  "extra-noise",
				Usage: "additional CSS selectors to strip before detection",
			},
			&cli.StringSliceFlag{
				Name:  "skip-locale",
				Usage: "locale folders to leave out",
			},
			&cli.IntFlag{
				Name:  "min-length",
				Usage: "minimum plain text length (characters) for a document to be classified",
			},
			&cli.IntFlag{
				Name:    "workers",
				Usage:   "number of documents classified concurrently",
				EnvVars: []string{"DOCLANG_WORKERS"},
			},
			&cli.BoolFlag{
				Name:  "low-accuracy",
				Usage: "use the faster, less accurate detection mode",
			},
			&cli.BoolFlag{
				Name:  "table",
				Usage: "render the ordered summary as a table",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log skipped documents and low confidence suspects",
			},
		},
		Action: audit.AuditAction,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
