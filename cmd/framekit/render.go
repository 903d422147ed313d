package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bryanchance/framekit/pkg/render"
	humanize "github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
)

var renderCommand = &cli.Command{
	Name:      "render",
	Usage:     "render a blender project, optionally distributed across hosts",
	ArgsUsage: "[BLEND_FILE]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output directory to save render results to",
			Value:   "",
		},
		&cli.IntFlag{
			Name:    "num-frames",
			Aliases: []string{"n"},
			Usage:   "number of frames in the animation",
			Value:   1,
		},
		&cli.IntFlag{
			Name:    "start-frame",
			Aliases: []string{"s"},
			Usage:   "frame to start rendering from",
			Value:   1,
		},
		&cli.IntFlag{
			Name:    "end-frame",
			Aliases: []string{"e"},
			Usage:   "frame to end rendering at",
		},
		&cli.StringSliceFlag{
			Name:    "distribute",
			Aliases: []string{"d"},
			Usage:   "host to distribute rendering to (can be specified multiple times)",
		},
		&cli.IntFlag{
			Name:    "jump",
			Aliases: []string{"j"},
			Usage:   "number of frames to skip",
			Value:   1,
		},
	},
	Action: renderAction,
}

func renderAction(clix *cli.Context) error {
	projectFile := clix.Args().Get(0)
	if projectFile == "" {
		return fmt.Errorf("a blend file must be specified")
	}

	cfg, err := getConfig(clix)
	if err != nil {
		return err
	}

	outputDir := clix.String("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	hosts := clix.StringSlice("distribute")
	if len(hosts) == 0 {
		hosts = cfg.DistributeHosts
	}

	endFrame := clix.Int("num-frames")
	if v := clix.Int("end-frame"); v != 0 && v < endFrame {
		endFrame = v
	}
	frames, err := render.NewFrameRange(clix.Int("start-frame"), endFrame, clix.Int("jump"))
	if err != nil {
		return err
	}

	transport := render.NewSSHTransport(cfg.SSHBinary, cfg.SCPBinary)
	dispatcher := render.NewDispatcher(cfg.BlenderBinary, transport)

	started := time.Now()
	report, err := dispatcher.Dispatch(context.Background(), &render.JobSpec{
		ProjectFile: projectFile,
		OutputDir:   outputDir,
		Frames:      frames,
		Hosts:       hosts,
	})
	if err != nil {
		return err
	}

	printReport(report, outputDir, time.Since(started))
	if report.Failed() {
		return cli.Exit("one or more hosts failed", 1)
	}

	return nil
}

func printReport(report *render.Report, outputDir string, elapsed time.Duration) {
	ok := color.New(color.FgGreen).SprintFunc()
	failed := color.New(color.FgRed).SprintFunc()

	for _, r := range report.Results {
		status := ok("ok")
		if err := r.Err(); err != nil {
			status = failed("failed")
			logrus.WithError(err).Errorf("host %s", r.Host)
		}
		fmt.Printf("%-20s %d frame(s)  %s\n", r.Host, len(r.Frames), status)
	}

	fmt.Printf("rendered %s to %s in %s\n",
		humanize.Bytes(dirSize(outputDir)),
		outputDir,
		elapsed.Round(time.Second),
	)
}

func dirSize(dir string) uint64 {
	var total uint64
	filepath.Walk(dir, func(_ string, fi os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !fi.IsDir() {
			total += uint64(fi.Size())
		}
		return nil
	})
	return total
}
