package benchmark

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/mwiater/lwbench/internal/logging"
)

var (
	// ErrNoResults is returned when no file matches the results glob.
	ErrNoResults = errors.New("no benchmark result files found")
	// ErrNoData is returned when result files exist but none could be loaded.
	ErrNoData = errors.New("no benchmark data loaded")
)

// Dataset is the concatenation of every successfully loaded result table.
type Dataset struct {
	Columns []string
	Rows    []Row
	Files   []string
	Skipped []string
}

// Discover globs dir for result tables and returns them sorted.
func Discover(dir, pattern string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("results pattern %q: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoResults, dir)
	}
	sort.Strings(files)
	return files, nil
}

// Load reads every result table in dir matching pattern. A file whose name or
// content cannot be parsed is reported on console and skipped.
func Load(dir, pattern string, console *logging.Console) (*Dataset, error) {
	files, err := Discover(dir, pattern)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{}
	seen := make(map[string]bool)
	for _, path := range files {
		table, err := loadFile(path)
		if err != nil {
			console.Error("Error loading %s: %v", path, err)
			ds.Skipped = append(ds.Skipped, path)
			continue
		}
		for _, col := range table.Columns {
			if !seen[col] {
				seen[col] = true
				ds.Columns = append(ds.Columns, col)
			}
		}
		ds.Rows = append(ds.Rows, table.Rows...)
		ds.Files = append(ds.Files, path)
	}

	if len(ds.Files) == 0 {
		return ds, fmt.Errorf("%w from %d files", ErrNoData, len(files))
	}
	return ds, nil
}

// loadFile parses the filename parameters first so a misnamed file is
// rejected without reading it, then annotates each row with them.
func loadFile(path string) (*Table, error) {
	params, err := ParseResultName(path)
	if err != nil {
		return nil, err
	}
	table, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	for i := range table.Rows {
		table.Rows[i].GridSize = params.GridSize
		table.Rows[i].SimSpeed = params.SimSpeed
	}
	return table, nil
}
