// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestDefaults verifies the zero Config resolves every path under the
// current directory with the stock directory names and encoder settings.
func TestDefaults(t *testing.T) {
	var cfg Config

	if got := cfg.RecordingsPath(); got != "benchmark_recordings" {
		t.Fatalf("recordings path: %q", got)
	}
	if got := cfg.GIFsPath(); got != "benchmark_gifs" {
		t.Fatalf("gifs path: %q", got)
	}
	if got := cfg.ResultsPath(); got != "benchmark_results" {
		t.Fatalf("results path: %q", got)
	}
	if got := cfg.PlotsPath(); got != "benchmark_plots" {
		t.Fatalf("plots path: %q", got)
	}
	if got := cfg.ResultsGlob(); got != "grid*.csv" {
		t.Fatalf("results glob: %q", got)
	}
	if cfg.FrameRate() != 10 || cfg.Width() != 480 {
		t.Fatalf("expected 10fps/480px, got %d/%d", cfg.FrameRate(), cfg.Width())
	}
	if cfg.FFmpegPath() != "ffmpeg" {
		t.Fatalf("ffmpeg path: %q", cfg.FFmpegPath())
	}
	if cfg.VideoExtension() != ".mp4" {
		t.Fatalf("video ext: %q", cfg.VideoExtension())
	}
	if cfg.LogFilePath() != "lwbench.log" {
		t.Fatalf("log file: %q", cfg.LogFilePath())
	}
	if cfg.AnalysisPath() != "" {
		t.Fatalf("analysis output should be disabled by default, got %q", cfg.AnalysisPath())
	}
	wantOut := filepath.Join("docs", "Living_Worlds_Presentation_Portable.html")
	if got := cfg.OutputHTMLPath(); got != wantOut {
		t.Fatalf("output html: got %q want %q", got, wantOut)
	}
}

func TestResolveAgainstRoot(t *testing.T) {
	cfg := Config{ProjectRoot: "/srv/lw", PlotsDir: "out/plots", GIFsDir: "/abs/gifs", VideoExt: "MOV"}

	if got := cfg.PlotsPath(); got != filepath.Join("/srv/lw", "out/plots") {
		t.Fatalf("plots path: %q", got)
	}
	if got := cfg.GIFsPath(); got != "/abs/gifs" {
		t.Fatalf("absolute path should be kept, got %q", got)
	}
	if got := cfg.VideoExtension(); got != ".mov" {
		t.Fatalf("video ext: %q", got)
	}
}

func TestPortableName(t *testing.T) {
	cases := map[string]string{
		"docs/deck.html": "docs/deck_Portable.html",
		"deck":           "deck_Portable",
		"a.b/deck.htm":   "a.b/deck_Portable.htm",
	}
	for in, want := range cases {
		if got := PortableName(in); got != want {
			t.Errorf("PortableName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate([]byte(`{"resultsDir":"r","gifFrameRate":12,"debug":true}`)); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	if err := Validate([]byte(`{"gifFrameRate":0}`)); err == nil {
		t.Fatal("expected frame rate below minimum to fail")
	}
	if err := Validate([]byte(`{"hosts":[]}`)); err == nil {
		t.Fatal("expected unknown key to fail")
	}
	if err := Validate([]byte(`{"gifWidth":"wide"}`)); err == nil {
		t.Fatal("expected wrong type to fail")
	}
}

func TestValidateFileMissing(t *testing.T) {
	err := ValidateFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestValidateFileNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"gifWidth":2}`), 0o644); err != nil {
		t.Fatal(err)
	}
	err := ValidateFile(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error naming %s, got %v", path, err)
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	ShowConfig(&buf, "", nil)
	out := buf.String()
	if !strings.Contains(out, "No config file loaded") {
		t.Fatalf("missing default banner: %s", out)
	}
	if !strings.Contains(out, "benchmark_results (grid*.csv)") {
		t.Fatalf("missing results line: %s", out)
	}

	buf.Reset()
	ShowConfig(&buf, "config/config.json", &Config{Debug: true, ResultsDir: "res"})
	out = buf.String()
	if !strings.Contains(out, "Config file: config/config.json") {
		t.Fatalf("missing config path: %s", out)
	}
	if !strings.Contains(out, "ResultsDir") {
		t.Fatalf("expected debug dump of struct fields: %s", out)
	}
}
