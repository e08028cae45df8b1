package lwbench

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/lwbench/internal/logging"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type gifRunner struct{ calls int }

func (r *gifRunner) Run(_ context.Context, argv []string) (string, error) {
	r.calls++
	return "", os.WriteFile(argv[len(argv)-1], []byte("GIF89a"), 0o644)
}

func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// execute runs the CLI with args against a fresh flag state and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prevCfgFile := cfgFile
	t.Cleanup(func() {
		resetFlags(rootCmd.PersistentFlags())
		resetFlags(embedCmd.Flags())
		cfgFile = prevCfgFile
		viper.SetConfigFile(prevCfgFile)
		currentConfig = nil
		rootCmd.SetArgs([]string{})
		_ = logging.Close()
	})

	logPath := filepath.Join(t.TempDir(), "lwbench.log")
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--logFile", logPath}, args...))
	_, err := rootCmd.ExecuteC()
	return buf.String(), err
}

func TestPersistentPreRunEMergesFileAndFlags(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	writeFile(t, configPath, `{"gifWidth": 320, "plotsDir": "charts", "videoExt": "MOV"}`)

	out, err := execute(t, "--config", configPath, "--root", "/data/run1", "--gifFrameRate", "15", "show", "config")
	if err != nil {
		t.Fatalf("ExecuteC error: %v (%s)", err, out)
	}

	cfg := GetConfig()
	if cfg.ConfigPath != configPath {
		t.Fatalf("expected config path %s, got %s", configPath, cfg.ConfigPath)
	}
	if cfg.Width() != 320 || cfg.FrameRate() != 15 {
		t.Fatalf("expected file and flag values to merge: %+v", cfg)
	}
	if cfg.PlotsPath() != filepath.Join("/data/run1", "charts") {
		t.Fatalf("expected plots under root, got %s", cfg.PlotsPath())
	}
	if cfg.VideoExtension() != ".mov" {
		t.Fatalf("expected normalized extension, got %s", cfg.VideoExtension())
	}
	if !strings.Contains(out, "Config file: "+configPath) {
		t.Fatalf("expected config file path in output, got %s", out)
	}
}

func TestPersistentPreRunERejectsInvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	writeFile(t, configPath, `{"gifFrameRate": "fast", "hosts": []}`)

	_, err := execute(t, "--config", configPath, "show", "config")
	if err == nil {
		t.Fatalf("expected schema violation to fail the command")
	}
	if !strings.Contains(err.Error(), "invalid config") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestShowConfigWithoutFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.json")
	out, err := execute(t, "--config", missing, "--debug", "show", "config")
	if err != nil {
		t.Fatalf("ExecuteC error: %v", err)
	}
	if !strings.Contains(out, "No config file loaded (using defaults).") {
		t.Fatalf("expected defaults notice, got %s", out)
	}
	if !strings.Contains(out, "Debug:           true") {
		t.Fatalf("expected debug in output, got %s", out)
	}
}

func TestAnalyzeRunsPipeline(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "benchmark_recordings", "grid64_speed10.mp4"), "video")
	writeFile(t, filepath.Join(root, "benchmark_results", "grid64_speed10.csv"), "fps\n58\n62\n")

	runner := &gifRunner{}
	prev := converterRunner
	converterRunner = runner
	t.Cleanup(func() { converterRunner = prev })

	out, err := execute(t, "--config", filepath.Join(root, "none.json"), "--root", root, "analyze")
	if err != nil {
		t.Fatalf("ExecuteC error: %v (%s)", err, out)
	}
	if runner.calls != 1 {
		t.Fatalf("expected one transcode, got %d", runner.calls)
	}

	for _, want := range []string{
		"Living Worlds Benchmark Analysis",
		"Converting 1 videos to GIFs...",
		"Loaded 2 data points from benchmark results",
		"=== Performance Summary ===",
		"Done!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	for _, name := range []string{"fps_by_grid_size.png", "fps_by_speed.png", "summary_table.csv"} {
		if _, err := os.Stat(filepath.Join(root, "benchmark_plots", name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(root, "benchmark_gifs", "grid64_speed10.gif")); err != nil {
		t.Errorf("expected gif: %v", err)
	}
}

func TestEmbedCommand(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "docs", "deck.html"), `<img src="img/a.png">`)
	writeFile(t, filepath.Join(root, "img", "a.png"), "png")

	out, err := execute(t, "--config", filepath.Join(root, "none.json"), "--root", root, "embed", "--input", "docs/deck.html")
	if err != nil {
		t.Fatalf("ExecuteC error: %v (%s)", err, out)
	}
	data, err := os.ReadFile(filepath.Join(root, "docs", "deck_Portable.html"))
	if err != nil {
		t.Fatalf("read portable html: %v", err)
	}
	if string(data) != `<img src="data:image/png;base64,cG5n">` {
		t.Fatalf("unexpected portable html: %s", data)
	}
	if !strings.Contains(out, "Done! Portable HTML created.") {
		t.Fatalf("expected completion message, got %s", out)
	}
}

func TestListCommands(t *testing.T) {
	out, err := execute(t, "--config", filepath.Join(t.TempDir(), "none.json"), "list", "commands")
	if err != nil {
		t.Fatalf("ExecuteC error: %v", err)
	}
	for _, want := range []string{"Commands and Subcommands:", "lwbench analyze", "lwbench show config", "Inline local images"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "completion") {
		t.Errorf("completion command should be hidden:\n%s", out)
	}
}
