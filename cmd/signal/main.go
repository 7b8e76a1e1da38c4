package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/internal/version"
	"github.com/urfave/cli/v3"
)

func dataFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "data",
			Aliases:  []string{"d"},
			Usage:    "Path to a `FILE` of OHLCV bars (.parquet or .csv)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "symbol",
			Aliases:  []string{"s"},
			Usage:    "Symbol to evaluate",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Strategy config `FILE` (YAML). Defaults are used when omitted",
		},
		&cli.StringSliceFlag{
			Name:  "strategy",
			Usage: fmt.Sprintf("Only run these strategies (%v)", types.AllStrategyTypes()),
		},
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "signal",
		Usage:   "Classify OHLCV bars into BUY, SELL or HOLD signals",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
				Value: "warn",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "evaluate",
				Usage: "Evaluate the latest bar (or the bar at --at) with every enabled strategy",
				Flags: append(dataFlags(),
					&cli.TimestampFlag{
						Name:  "at",
						Usage: "Evaluate the bar at this time instead of the latest one",
						Config: cli.TimestampConfig{
							Layouts: []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"},
						},
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the evaluation as JSON",
					},
				),
				Action: evaluateAction,
			},
			{
				Name:  "scan",
				Usage: "Walk forward through every bar and print the signal of each strategy",
				Flags: append(dataFlags(),
					&cli.BoolFlag{
						Name:  "only-actions",
						Usage: "Print only BUY and SELL signals",
					},
					&cli.BoolFlag{
						Name:  "no-progress",
						Usage: "Disable the progress bar",
					},
				),
				Action: scanAction,
			},
			{
				Name:  "schema",
				Usage: "Print the strategy config JSON schema, or write it with a sample config to --output",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output `DIR` for the schema and sample config",
					},
				},
				Action: schemaAction,
			},
			{
				Name:   "version",
				Usage:  "Print the version",
				Action: versionAction,
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(err.Error()))
		stop()
		os.Exit(1)
	}
}
