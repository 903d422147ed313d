package main

import (
	"context"
	"image"

	"github.com/bryanchance/framekit/pkg/ops"
	cli "github.com/urfave/cli/v2"
)

var scaleCommand = &cli.Command{
	Name:      "scale",
	Usage:     "resize frames",
	ArgsUsage: "[IMAGE...]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "mode",
			Aliases: []string{"m"},
			Usage:   "interpolation mode to use when resizing",
			Value:   "lanczos",
		},
		&cli.Float64Flag{
			Name:    "percent",
			Aliases: []string{"p"},
			Usage:   "percentage change as a float (overrides width/height)",
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "target width in pixels",
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "target height in pixels",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output directory",
			Value:   "scaled_frames",
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

		// target size from the first frame when scaling by percent
		width, height := clix.Int("width"), clix.Int("height")
		if p := clix.Float64("percent"); p > 0 {
			bounds := frames[0].Bounds()
			width = int(float64(bounds.Dx()) * p)
			height = int(float64(bounds.Dy()) * p)
		}

		mode := clix.String("mode")
		out, err := ops.Parallel(context.Background(), cfg.Workers, frames, func(img image.Image) (image.Image, error) {
			scaled, err := ops.Scale(img, width, height, mode)
			if err != nil {
				return nil, err
			}
			return scaled, nil
		})
		if err != nil {
			return err
		}

		return saveFrames(clix.String("output"), out)
	},
}
