// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"path/filepath"
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultLogFile is written next to the working directory when no log file is configured.
	defaultLogFile = "lwbench.log"

	defaultRecordingsDir  = "benchmark_recordings"
	defaultGIFsDir        = "benchmark_gifs"
	defaultResultsDir     = "benchmark_results"
	defaultPlotsDir       = "benchmark_plots"
	defaultResultsPattern = "grid*.csv"
	defaultVideoExt       = ".mp4"
	defaultFFmpegBinary   = "ffmpeg"
	// defaultGIFFrameRate and defaultGIFWidth keep previews small enough to share.
	defaultGIFFrameRate = 10
	defaultGIFWidth     = 480

	defaultInputHTML = "docs/Living_Worlds_Presentation.html"
	portableSuffix   = "_Portable"
)

// Config represents the top-level application configuration.
type Config struct {
	ProjectRoot    string `json:"projectRoot,omitempty"`
	RecordingsDir  string `json:"recordingsDir,omitempty"`
	GIFsDir        string `json:"gifsDir,omitempty"`
	ResultsDir     string `json:"resultsDir,omitempty"`
	PlotsDir       string `json:"plotsDir,omitempty"`
	ResultsPattern string `json:"resultsPattern,omitempty"`
	VideoExt       string `json:"videoExt,omitempty"`
	FFmpegBinary   string `json:"ffmpegBinary,omitempty"`
	GIFFrameRate   int    `json:"gifFrameRate,omitempty"`
	GIFWidth       int    `json:"gifWidth,omitempty"`
	InputHTML      string `json:"inputHtml,omitempty"`
	OutputHTML     string `json:"outputHtml,omitempty"`
	AnalysisOutput string `json:"analysisOutput,omitempty"`
	LogFile        string `json:"logFile,omitempty"`
	Debug          bool   `json:"debug"`
	ConfigPath     string `json:"-"`
}

// Root returns the directory every relative path is resolved against.
func (c Config) Root() string {
	if root := strings.TrimSpace(c.ProjectRoot); root != "" {
		return root
	}
	return "."
}

// Resolve joins a relative path onto the project root. Absolute paths are returned unchanged.
func (c Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Root(), path)
}

// RecordingsPath returns the directory scanned for video recordings.
func (c Config) RecordingsPath() string {
	return c.Resolve(orDefault(c.RecordingsDir, defaultRecordingsDir))
}

// GIFsPath returns the directory that receives converted GIFs.
func (c Config) GIFsPath() string {
	return c.Resolve(orDefault(c.GIFsDir, defaultGIFsDir))
}

// ResultsPath returns the directory scanned for benchmark result tables.
func (c Config) ResultsPath() string {
	return c.Resolve(orDefault(c.ResultsDir, defaultResultsDir))
}

// PlotsPath returns the directory that receives charts and the summary table.
func (c Config) PlotsPath() string {
	return c.Resolve(orDefault(c.PlotsDir, defaultPlotsDir))
}

// ResultsGlob returns the filename glob used to discover result tables.
func (c Config) ResultsGlob() string {
	return orDefault(c.ResultsPattern, defaultResultsPattern)
}

// VideoExtension returns the lower-cased video extension, always with a leading dot.
func (c Config) VideoExtension() string {
	ext := strings.ToLower(orDefault(c.VideoExt, defaultVideoExt))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// FFmpegPath returns the transcoder binary, falling back to ffmpeg on PATH.
func (c Config) FFmpegPath() string {
	return orDefault(c.FFmpegBinary, defaultFFmpegBinary)
}

// FrameRate returns the GIF frame rate in frames per second.
func (c Config) FrameRate() int {
	if c.GIFFrameRate <= 0 {
		return defaultGIFFrameRate
	}
	return c.GIFFrameRate
}

// Width returns the GIF width in pixels. Height follows the source aspect ratio.
func (c Config) Width() int {
	if c.GIFWidth <= 0 {
		return defaultGIFWidth
	}
	return c.GIFWidth
}

// InputHTMLPath returns the document read by the embedder.
func (c Config) InputHTMLPath() string {
	return c.Resolve(orDefault(c.InputHTML, defaultInputHTML))
}

// OutputHTMLPath returns the document written by the embedder. When unset it is
// derived from the input name, e.g. deck.html -> deck_Portable.html.
func (c Config) OutputHTMLPath() string {
	if out := strings.TrimSpace(c.OutputHTML); out != "" {
		return c.Resolve(out)
	}
	return PortableName(c.InputHTMLPath())
}

// AnalysisPath returns the optional aggregate JSON destination, or "" when disabled.
func (c Config) AnalysisPath() string {
	return c.Resolve(strings.TrimSpace(c.AnalysisOutput))
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// PortableName inserts the portable suffix before the extension of path.
func PortableName(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + portableSuffix + ext
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
