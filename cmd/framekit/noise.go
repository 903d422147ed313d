package main

import (
	"fmt"

	"github.com/bryanchance/framekit/pkg/ops"
	cli "github.com/urfave/cli/v2"
)

var addNoiseCommand = &cli.Command{
	Name:      "add-noise",
	Usage:     "add noise to an image",
	ArgsUsage: "[IMAGE]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output file",
			Value:   "noisy.png",
		},
	},
	Action: func(clix *cli.Context) error {
		path := clix.Args().Get(0)
		if path == "" {
			return fmt.Errorf("an image must be specified")
		}
		img, err := ops.LoadImage(path)
		if err != nil {
			return err
		}

		return ops.SaveImage(ops.AddNoise(img), clix.String("output"))
	},
}
