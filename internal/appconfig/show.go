package appconfig

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/k0kubun/pp"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

// ShowConfig prints the current configuration summary. With debug set the raw
// struct is dumped as well.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		cfg = &Config{}
	}

	fmt.Fprintln(out, headingStyle.Render("Current configuration:"))
	fmt.Fprintf(out, "  Project Root:    %s\n", cfg.Root())
	fmt.Fprintf(out, "  Recordings:      %s\n", cfg.RecordingsPath())
	fmt.Fprintf(out, "  GIFs:            %s\n", cfg.GIFsPath())
	fmt.Fprintf(out, "  Results:         %s (%s)\n", cfg.ResultsPath(), cfg.ResultsGlob())
	fmt.Fprintf(out, "  Plots:           %s\n", cfg.PlotsPath())
	fmt.Fprintf(out, "  FFmpeg:          %s (%d fps, %dpx wide)\n", cfg.FFmpegPath(), cfg.FrameRate(), cfg.Width())
	fmt.Fprintf(out, "  Input HTML:      %s\n", cfg.InputHTMLPath())
	fmt.Fprintf(out, "  Output HTML:     %s\n", cfg.OutputHTMLPath())
	fmt.Fprintf(out, "  Log File:        %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)

	if cfg.Debug {
		fmt.Fprintln(out)
		pp.Fprintln(out, *cfg)
	}
}
