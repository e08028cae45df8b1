package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwiater/lwbench/internal/logging"
	"github.com/mwiater/lwbench/internal/util"
)

const (
	defaultBinary     = "ffmpeg"
	defaultFrameRate  = 10
	defaultWidth      = 480
	defaultExt        = ".mp4"
	errorSnippetRunes = 100
)

// Options configures a conversion batch.
type Options struct {
	InputDir  string
	OutputDir string
	VideoExt  string
	FFmpeg    string
	FrameRate int
	Width     int
}

func (o Options) binary() string {
	if strings.TrimSpace(o.FFmpeg) == "" {
		return defaultBinary
	}
	return o.FFmpeg
}

func (o Options) frameRate() int {
	if o.FrameRate <= 0 {
		return defaultFrameRate
	}
	return o.FrameRate
}

func (o Options) width() int {
	if o.Width <= 0 {
		return defaultWidth
	}
	return o.Width
}

func (o Options) ext() string {
	if o.VideoExt == "" {
		return defaultExt
	}
	return o.VideoExt
}

// Convert transcodes every recording found in opts.InputDir into a GIF under
// opts.OutputDir. Per-file failures are reported and counted, never returned;
// the error result is reserved for an output directory that cannot be created.
func Convert(ctx context.Context, opts Options, runner Runner, console *logging.Console) (ConvertStats, error) {
	var stats ConvertStats
	if runner == nil {
		runner = ExecRunner{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	files, err := Discover(opts.InputDir, opts.ext())
	switch {
	case errors.Is(err, ErrNoInputDir):
		console.Warn("Recordings directory not found: %s", opts.InputDir)
		return stats, nil
	case errors.Is(err, ErrNoVideos):
		console.Printf("No %s files found in %s", strings.ToUpper(strings.TrimPrefix(opts.ext(), ".")), opts.InputDir)
		return stats, nil
	case err != nil:
		console.Error("Cannot read recordings directory %s: %v", opts.InputDir, err)
		return stats, nil
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return stats, fmt.Errorf("create gif directory %s: %w", opts.OutputDir, err)
	}

	stats.Total = len(files)
	console.Printf("Converting %d videos to GIFs...", len(files))

	for _, input := range files {
		if ctx.Err() != nil {
			console.Warn("Interrupted")
			break
		}
		convertOne(ctx, opts, runner, console, input, &stats)
	}

	console.Println()
	console.Printf("GIFs saved to: %s", opts.OutputDir)
	logging.LogEvent("[MEDIA] converted=%d failed=%d total=%d bytes=%d", stats.Converted, stats.Failed, stats.Total, stats.OutputBytes)
	return stats, nil
}

// convertOne runs a single transcode and records the outcome in stats.
func convertOne(ctx context.Context, opts Options, runner Runner, console *logging.Console, input string, stats *ConvertStats) {
	output := OutputPath(input, opts.OutputDir)
	console.Printf("  %s -> %s", filepath.Base(input), filepath.Base(output))

	argv := Build(opts, input, output)
	console.Debug("    %s", strings.Join(argv, " "))

	stderr, err := runner.Run(ctx, argv)
	if err != nil {
		stats.Failed++
		console.Error("    ERROR: %s", errorSnippet(stderr, err))
		return
	}

	info, err := os.Stat(output)
	if err != nil {
		stats.Failed++
		console.Error("    ERROR: output missing after transcode: %v", err)
		return
	}
	stats.Converted++
	stats.OutputBytes += info.Size()
	console.Success("    Created: %.1f MB", util.Megabytes(info.Size()))
}

// errorSnippet returns the head of the tool's diagnostics, falling back to the
// process error when ffmpeg produced none (for example when it failed to start).
func errorSnippet(stderr string, err error) string {
	if strings.TrimSpace(stderr) == "" {
		return util.FirstRunes(err.Error(), errorSnippetRunes)
	}
	return util.FirstRunes(stderr, errorSnippetRunes)
}
