package render

import (
	"path/filepath"
	"strconv"
	"strings"
)

// outputFilePattern is the renderer's output filename template: 4-digit
// zero-padded frame number, PNG. This is fixed, not configurable.
const outputFilePattern = "####.png"

// RenderCommand builds the argument list for a background render of the
// project file. A nil frame sequence omits the frame-selection flag so the
// renderer uses its own default range; a non-nil sequence is passed as a
// comma-separated frame list even when it is empty. No path validation is
// done here; bad paths surface through the renderer's own error output.
func RenderCommand(binary, projectFile, outputDir string, frames FrameRange) []string {
	args := []string{
		binary,
		"-b",
		projectFile,
		"-o",
		filepath.Join(outputDir, outputFilePattern),
	}
	if frames != nil {
		fs := make([]string, len(frames))
		for i, f := range frames {
			fs[i] = strconv.Itoa(f)
		}
		args = append(args, "-f", strings.Join(fs, ","))
	}
	return args
}
