package media

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrNoInputDir is returned when the recordings directory does not exist.
	ErrNoInputDir = errors.New("recordings directory not found")
	// ErrNoVideos is returned when the recordings directory holds no matching files.
	ErrNoVideos = errors.New("no video files found")
)

// Discover lists the regular files directly inside dir whose extension matches
// ext (case-insensitive) and returns them sorted for a deterministic order.
func Discover(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoInputDir, dir)
		}
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoVideos, dir)
	}
	sort.Strings(files)
	return files, nil
}

// OutputPath maps a recording onto its GIF inside outDir, keeping the base name.
func OutputPath(input, outDir string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, stem+".gif")
}
