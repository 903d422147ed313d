package main

import (
	"fmt"

	"github.com/bryanchance/framekit/pkg/ops"
	cli "github.com/urfave/cli/v2"
)

var extractForegroundCommand = &cli.Command{
	Name:      "extract-foreground",
	Usage:     "extract the foreground items from a background",
	ArgsUsage: "[FULL_IMAGE] [BACKGROUND]",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "threshold",
			Aliases: []string{"t"},
			Usage:   "threshold value to use during foreground extraction",
			Value:   1,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output file",
			Value:   "foreground.png",
		},
	},
	Action: func(clix *cli.Context) error {
		if clix.Args().Len() != 2 {
			return fmt.Errorf("a full image and a background image must be specified")
		}
		full, err := ops.LoadImage(clix.Args().Get(0))
		if err != nil {
			return err
		}
		bg, err := ops.LoadImage(clix.Args().Get(1))
		if err != nil {
			return err
		}

		out := ops.ExtractForeground(full, bg, clix.Int("threshold"))
		return ops.SaveImage(out, clix.String("output"))
	},
}
