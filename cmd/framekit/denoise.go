package main

import (
	"context"
	"image"

	"github.com/bryanchance/framekit/pkg/ops"
	cli "github.com/urfave/cli/v2"
)

var denoiseCommand = &cli.Command{
	Name:      "denoise",
	Usage:     "denoise frames",
	ArgsUsage: "[IMAGE...]",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "strength",
			Aliases: []string{"s"},
			Usage:   "the strength of the filter",
			Value:   5,
		},
		&cli.StringFlag{
			Name:    "mode",
			Aliases: []string{"m"},
			Usage:   "denoise filter (gaussian, box, median)",
			Value:   "gaussian",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output directory",
			Value:   "denoised_frames",
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

		strength := clix.Int("strength")
		mode := clix.String("mode")
		out, err := ops.Parallel(context.Background(), cfg.Workers, frames, func(img image.Image) (image.Image, error) {
			return ops.Denoise(img, strength, mode)
		})
		if err != nil {
			return err
		}

		return saveFrames(clix.String("output"), out)
	},
}
