package media

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/lwbench/internal/logging"
)

// fakeRunner records every argv and either writes the output GIF or fails.
type fakeRunner struct {
	calls  [][]string
	fail   map[string]string
	output int
}

func (f *fakeRunner) Run(_ context.Context, argv []string) (string, error) {
	f.calls = append(f.calls, argv)
	input := argv[3]
	if stderr, ok := f.fail[filepath.Base(input)]; ok {
		return stderr, errors.New("exit status 1")
	}
	out := argv[len(argv)-1]
	return "", os.WriteFile(out, bytes.Repeat([]byte{'G'}, f.output), 0o644)
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func TestDiscover_FiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "grid512_speed10.mp4")
	touch(t, dir, "grid128_speed10.MP4")
	touch(t, dir, "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.mp4"), 0o755))

	files, err := Discover(dir, ".mp4")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "grid128_speed10.MP4"),
		filepath.Join(dir, "grid512_speed10.mp4"),
	}, files)
}

func TestDiscover_Errors(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"), ".mp4")
	assert.ErrorIs(t, err, ErrNoInputDir)

	dir := t.TempDir()
	touch(t, dir, "clip.mov")
	_, err = Discover(dir, ".mp4")
	assert.ErrorIs(t, err, ErrNoVideos)
}

func TestBuild_ArgumentTemplate(t *testing.T) {
	argv := Build(Options{}, "in/a.mp4", "out/a.gif")
	assert.Equal(t, []string{
		"ffmpeg", "-y", "-i", "in/a.mp4",
		"-vf", "fps=10,scale=480:-1:flags=lanczos,split[s0][s1];[s0]palettegen[p];[s1][p]paletteuse",
		"-loop", "0",
		"out/a.gif",
	}, argv)

	custom := Build(Options{FFmpeg: "/opt/ffmpeg", FrameRate: 15, Width: 320}, "a.mp4", "a.gif")
	assert.Equal(t, "/opt/ffmpeg", custom[0])
	assert.Contains(t, custom[5], "fps=15,scale=320:-1")
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("gifs", "grid256_speed5.gif"), OutputPath(filepath.Join("rec", "grid256_speed5.mp4"), "gifs"))
}

func TestConvert_ContinuesAfterFailure(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "gifs")
	touch(t, in, "a.mp4")
	touch(t, in, "b.mp4")
	touch(t, in, "c.mp4")

	longErr := strings.Repeat("E", 150)
	runner := &fakeRunner{fail: map[string]string{"b.mp4": longErr}, output: 3 * 1024 * 1024 / 2}
	var buf bytes.Buffer

	stats, err := Convert(context.Background(), Options{InputDir: in, OutputDir: out}, runner, logging.NewConsole(&buf, false))
	require.NoError(t, err)

	assert.Len(t, runner.calls, 3, "every file is attempted exactly once")
	assert.Equal(t, ConvertStats{Total: 3, Converted: 2, Failed: 1, OutputBytes: 2 * int64(runner.output)}, stats)

	console := buf.String()
	assert.Contains(t, console, "Converting 3 videos to GIFs...")
	assert.Contains(t, console, "a.mp4 -> a.gif")
	assert.Contains(t, console, "Created: 1.5 MB")
	assert.Contains(t, console, "ERROR: "+strings.Repeat("E", 100))
	assert.NotContains(t, console, strings.Repeat("E", 101))
	assert.Contains(t, console, "GIFs saved to: "+out)

	assert.FileExists(t, filepath.Join(out, "a.gif"))
	assert.FileExists(t, filepath.Join(out, "c.gif"))
	assert.NoFileExists(t, filepath.Join(out, "b.gif"))
}

func TestConvert_NoVideosCreatesNothing(t *testing.T) {
	in := t.TempDir()
	touch(t, in, "readme.txt")
	out := filepath.Join(t.TempDir(), "gifs")
	runner := &fakeRunner{}
	var buf bytes.Buffer

	stats, err := Convert(context.Background(), Options{InputDir: in, OutputDir: out}, runner, logging.NewConsole(&buf, false))
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Empty(t, runner.calls)
	assert.NoDirExists(t, out)
	assert.Contains(t, buf.String(), "No MP4 files found in "+in)
}

func TestConvert_MissingInputDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gifs")
	var buf bytes.Buffer

	stats, err := Convert(context.Background(), Options{InputDir: filepath.Join(out, "missing"), OutputDir: out}, &fakeRunner{}, logging.NewConsole(&buf, false))
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.NoDirExists(t, out)
	assert.Contains(t, buf.String(), "Recordings directory not found")
}

func TestErrorSnippetFallsBackToProcessError(t *testing.T) {
	assert.Equal(t, "exec: \"ffmpeg\": executable file not found in $PATH",
		errorSnippet("", errors.New("exec: \"ffmpeg\": executable file not found in $PATH")))
	assert.Equal(t, "boom", errorSnippet("boom", errors.New("exit status 1")))
}

func TestExecRunnerEmptyCommand(t *testing.T) {
	_, err := ExecRunner{}.Run(context.Background(), nil)
	assert.Error(t, err)
}
