// internal/commands/convert.go
package lwbench

import (
	"github.com/mwiater/lwbench/internal/logging"
	"github.com/mwiater/lwbench/internal/media"
	"github.com/spf13/cobra"
)

// converterRunner is swapped out in tests so no ffmpeg binary is needed.
var converterRunner media.Runner = media.ExecRunner{}

// convertCmd implements 'convert', which turns benchmark recordings into GIFs.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert benchmark recordings into animated GIFs",
	Long: `Convert every recording in the recordings directory into a palette-optimized
GIF using ffmpeg. A failed conversion is reported and the batch continues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runConvert(cmd, newConsole(cmd))
		return err
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, console *logging.Console) (media.ConvertStats, error) {
	cfg := GetConfig()
	opts := media.Options{
		InputDir:  cfg.RecordingsPath(),
		OutputDir: cfg.GIFsPath(),
		VideoExt:  cfg.VideoExtension(),
		FFmpeg:    cfg.FFmpegPath(),
		FrameRate: cfg.FrameRate(),
		Width:     cfg.Width(),
	}
	console.Debug("convert options: %+v", opts)
	return media.Convert(cmd.Context(), opts, converterRunner, console)
}
