package main

import (
	"context"

	"github.com/bryanchance/framekit/pkg/ops"
	cli "github.com/urfave/cli/v2"
)

var interpolateCommand = &cli.Command{
	Name:      "interpolate",
	Usage:     "insert interpolated frames between existing frames",
	ArgsUsage: "[IMAGE...]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "mode",
			Aliases: []string{"m"},
			Usage:   "interpolation mode (flow, blend)",
			Value:   ops.InterpolateFlow,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output directory",
			Value:   "interp_frames",
		},
	},
	Action: func(clix *cli.Context) error {
		cfg, err := getConfig(clix)
		if err != nil {
			return err
		}
		frames, err := loadFrames(clix.Args().Slice())
		if err != nil {
			return err
		}

		out, err := ops.Interpolate(context.Background(), cfg.Workers, frames, clix.String("mode"))
		if err != nil {
			return err
		}

		return saveFrames(clix.String("output"), out)
	},
}
