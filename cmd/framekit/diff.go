package main

import (
	"fmt"

	"github.com/bryanchance/framekit/pkg/ops"
	cli "github.com/urfave/cli/v2"
)

var diffCommand = &cli.Command{
	Name:      "diff",
	Usage:     "calculate the difference between two images",
	ArgsUsage: "[IMAGE1] [IMAGE2]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output file",
			Value:   "diff.png",
		},
	},
	Action: func(clix *cli.Context) error {
		if clix.Args().Len() != 2 {
			return fmt.Errorf("two images must be specified")
		}
		frames, err := loadFrames(clix.Args().Slice())
		if err != nil {
			return err
		}

		return ops.SaveImage(ops.Diff(frames[0], frames[1]), clix.String("output"))
	},
}
