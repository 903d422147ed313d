package main

import (
	"github.com/bryanchance/framekit/pkg/ops"
	cli "github.com/urfave/cli/v2"
)

var blendCommand = &cli.Command{
	Name:      "blend",
	Usage:     "blend frames together into a single image",
	ArgsUsage: "[IMAGE...]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output file",
			Value:   "blended.png",
		},
	},
	Action: func(clix *cli.Context) error {
		frames, err := loadFrames(clix.Args().Slice())
		if err != nil {
			return err
		}

		out, err := ops.BlendAll(frames)
		if err != nil {
			return err
		}

		return ops.SaveImage(out, clix.String("output"))
	},
}
