package ops

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// FrameFilename returns the filename for frame n using the 4-digit
// zero-padded PNG naming convention shared with the renderer output
func FrameFilename(n int) string {
	return fmt.Sprintf("%04d.png", n)
}

// LoadImage loads a single frame from disk
func LoadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error loading image %s", path)
	}
	return img, nil
}

// LoadImages loads the frames at the given paths, in order
func LoadImages(paths []string) ([]image.Image, error) {
	frames := make([]image.Image, 0, len(paths))
	for _, p := range paths {
		img, err := LoadImage(p)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return frames, nil
}

// SaveImage writes a single frame to disk; the format follows the extension
func SaveImage(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrapf(err, "error saving image %s", path)
	}
	return nil
}

// SaveSequence writes frames into dir as sequentially numbered PNGs,
// starting at 0001.png, and returns the written paths
func SaveSequence(dir string, frames []image.Image) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(frames))
	for i, f := range frames {
		p := filepath.Join(dir, FrameFilename(i+1))
		if err := SaveImage(f, p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
