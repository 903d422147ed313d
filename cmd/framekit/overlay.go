package main

import (
	"context"
	"image"

	"github.com/bryanchance/framekit/pkg/ops"
	cli "github.com/urfave/cli/v2"
)

var overlayCommand = &cli.Command{
	Name:      "add-overlay",
	Usage:     "add transparent overlay frames to a static background",
	ArgsUsage: "[BACKGROUND] [IMAGE...]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output directory",
			Value:   "overlay_frames",
		},
	},
	Action: func(clix *cli.Context) error {
		cfg, err := getConfig(clix)
		if err != nil {
			return err
		}

		bg, err := ops.LoadImage(clix.Args().Get(0))
		if err != nil {
			return err
		}
		frames, err := loadFrames(clix.Args().Slice()[1:])
		if err != nil {
			return err
		}

		out, err := ops.Parallel(context.Background(), cfg.Workers, frames, func(fg image.Image) (image.Image, error) {
			return ops.Overlay(bg, fg), nil
		})
		if err != nil {
			return err
		}

		return saveFrames(clix.String("output"), out)
	},
}
