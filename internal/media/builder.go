package media

import (
	"fmt"
	"strconv"
)

// FilterGraph returns the -vf expression: drop to fps frames per second, scale
// to width keeping the aspect ratio, then build and apply a per-clip palette.
func FilterGraph(fps, width int) string {
	return fmt.Sprintf(
		"fps=%d,scale=%d:-1:flags=lanczos,split[s0][s1];[s0]palettegen[p];[s1][p]paletteuse",
		fps, width,
	)
}

// Build constructs the complete ffmpeg argument slice for one recording. The
// first element is the binary.
func Build(opts Options, input, output string) []string {
	return []string{
		opts.binary(),
		"-y",
		"-i", input,
		"-vf", FilterGraph(opts.frameRate(), opts.width()),
		"-loop", strconv.Itoa(0),
		output,
	}
}
