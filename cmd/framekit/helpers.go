package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/bryanchance/framekit"
	"github.com/bryanchance/framekit/pkg/ops"
	progressbar "github.com/schollz/progressbar/v3"
	cli "github.com/urfave/cli/v2"
)

func getConfig(clix *cli.Context) (*framekit.Config, error) {
	path := clix.String("config")
	if path == "" {
		var err error
		if path, err = framekit.DefaultConfigPath(); err != nil {
			return nil, err
		}
	}
	return framekit.LoadConfig(path)
}

func newProgressBar(n int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetDescription(description),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionShowCount(),
	)
}

// loadFrames loads every path given on the command line, in order
func loadFrames(paths []string) ([]image.Image, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("at least one image must be specified")
	}
	bar := newProgressBar(len(paths), "loading frames")
	frames := make([]image.Image, 0, len(paths))
	for _, p := range paths {
		img, err := ops.LoadImage(p)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
		bar.Add(1)
	}
	bar.Finish()
	return frames, nil
}

// saveFrames writes frames to the output directory using the sequential
// naming convention
func saveFrames(dir string, frames []image.Image) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	bar := newProgressBar(len(frames), "saving frames")
	for i, f := range frames {
		if err := ops.SaveImage(f, filepath.Join(dir, ops.FrameFilename(i+1))); err != nil {
			return err
		}
		bar.Add(1)
	}
	bar.Finish()
	return nil
}
