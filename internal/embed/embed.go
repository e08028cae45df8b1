package embed

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"syscall"

	"github.com/spf13/afero"

	"github.com/mwiater/lwbench/internal/logging"
)

// ErrInPlace is returned when the output path resolves to the input path.
var ErrInPlace = errors.New("output must differ from input")

// srcPattern is purely lexical; it also matches data-src attributes and text
// inside scripts or comments.
var srcPattern = regexp.MustCompile(`src="([^"]+)"`)

// Options configures one embedding pass.
type Options struct {
	// Fs defaults to the OS filesystem.
	Fs         afero.Fs
	InputPath  string
	OutputPath string
	// BaseDir anchors relative image paths.
	BaseDir string
}

func (o Options) fs() afero.Fs {
	if o.Fs == nil {
		return afero.NewOsFs()
	}
	return o.Fs
}

// EmbedStats tallies the references seen by a pass.
type EmbedStats struct {
	References int `json:"references"`
	Embedded   int `json:"embedded"`
	Skipped    int `json:"skipped"`
	Missing    int `json:"missing"`
	Failed     int `json:"failed"`
}

// Run reads opts.InputPath, inlines every local image it references and
// writes the result to opts.OutputPath. A missing input is reported, not
// returned.
func Run(opts Options, console *logging.Console) (EmbedStats, error) {
	var stats EmbedStats
	fs := opts.fs()

	if samePath(opts.InputPath, opts.OutputPath) {
		return stats, fmt.Errorf("%w: %s", ErrInPlace, opts.InputPath)
	}

	exists, err := afero.Exists(fs, opts.InputPath)
	if err != nil {
		return stats, fmt.Errorf("unable to stat %s: %w", opts.InputPath, err)
	}
	if !exists {
		console.Error("Error: %s not found", opts.InputPath)
		return stats, nil
	}

	console.Printf("Reading %s...", opts.InputPath)
	content, err := afero.ReadFile(fs, opts.InputPath)
	if err != nil {
		return stats, fmt.Errorf("unable to read %s: %w", opts.InputPath, err)
	}

	out, stats := Transform(fs, content, opts.BaseDir, console)

	console.Printf("Writing %s...", opts.OutputPath)
	if dir := filepath.Dir(opts.OutputPath); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return stats, fmt.Errorf("unable to create directory for %s: %w", opts.OutputPath, err)
		}
	}
	if err := afero.WriteFile(fs, opts.OutputPath, out, 0o644); err != nil {
		return stats, fmt.Errorf("unable to write %s: %w", opts.OutputPath, err)
	}

	logging.LogEvent("embed references=%d embedded=%d skipped=%d missing=%d failed=%d",
		stats.References, stats.Embedded, stats.Skipped, stats.Missing, stats.Failed)
	console.Success("Done! Portable HTML created.")
	return stats, nil
}

// Transform replaces each local src="..." reference in content with a data
// URI. Bytes outside replaced spans are returned unchanged.
func Transform(fs afero.Fs, content []byte, baseDir string, console *logging.Console) ([]byte, EmbedStats) {
	var stats EmbedStats
	out := srcPattern.ReplaceAllFunc(content, func(match []byte) []byte {
		stats.References++
		src := string(srcPattern.FindSubmatch(match)[1])
		if strings.HasPrefix(src, "http") || strings.HasPrefix(src, "data:") {
			stats.Skipped++
			return match
		}

		path := resolve(baseDir, src)
		info, err := fs.Stat(path)
		if err != nil {
			if !isNotFound(err) {
				console.Error("Failed to read %s: %v", path, err)
				stats.Failed++
				return match
			}
			console.Warn("Warning: Image file not found: %s", src)
			stats.Missing++
			return match
		}
		if info.IsDir() {
			console.Error("Failed to read %s: is a directory", path)
			stats.Failed++
			return match
		}

		console.Printf("Embedding %s...", filepath.Base(path))
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			console.Error("Failed to read %s: %v", path, err)
			stats.Failed++
			return match
		}
		stats.Embedded++
		return []byte(dataURI(MimeType(path), data))
	})
	return out, stats
}

// isNotFound reports stat failures that mean no file lives at the path.
func isNotFound(err error) bool {
	return errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ENAMETOOLONG) ||
		errors.Is(err, syscall.ELOOP)
}

func dataURI(mime string, data []byte) string {
	return `src="data:` + mime + ";base64," + base64.StdEncoding.EncodeToString(data) + `"`
}

func resolve(baseDir, src string) string {
	if filepath.IsAbs(src) || baseDir == "" {
		return filepath.Clean(src)
	}
	return filepath.Join(baseDir, src)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
