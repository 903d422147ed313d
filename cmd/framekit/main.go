package main

import (
	"log"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/bryanchance/framekit"
	"github.com/bryanchance/framekit/version"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = version.Name
	app.Version = version.FullVersion()
	app.Authors = []*cli.Author{
		{
			Name: "@bryanchance",
		},
	}
	app.Usage = "animation frame toolkit and distributed render wrapper"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"D"},
			Usage:   "enable debug logging",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to framekit config",
			Value:   "",
		},
	}
	app.Before = func(clix *cli.Context) error {
		if clix.Bool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}
	app.Commands = []*cli.Command{
		configCommand,
		renderCommand,
		interpolateCommand,
		scaleCommand,
		denoiseCommand,
		overlayCommand,
		blendCommand,
		diffCommand,
		addNoiseCommand,
		extractForegroundCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var configCommand = &cli.Command{
	Name:  "config",
	Usage: "generate framekit configuration",
	Action: func(clix *cli.Context) error {
		if err := toml.NewEncoder(os.Stdout).Encode(framekit.DefaultConfig()); err != nil {
			return err
		}
		return nil
	},
}
