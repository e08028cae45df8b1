package benchmark

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// FPSColumn is the required frame-rate column of every result table.
const FPSColumn = "fps"

const utf8BOM = "\ufeff"

// Row is one performance sample. Fields holds every source column verbatim.
type Row struct {
	FPS      float64
	GridSize int
	SimSpeed float64
	Source   string
	Fields   map[string]string
}

// Table is the parsed content of one result file.
type Table struct {
	Path    string
	Columns []string
	Rows    []Row
}

// ReadTable parses a CSV result table with a header row. Empty fps cells load
// as NaN and are excluded from aggregates.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseTable(path, f)
}

func parseTable(path string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// A run interrupted mid-write leaves a short last record.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no columns to parse from file")
		}
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	fpsIdx := -1
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
		if header[i] == FPSColumn {
			fpsIdx = i
		}
	}
	if fpsIdx < 0 {
		return nil, fmt.Errorf("missing %q column (have %s)", FPSColumn, strings.Join(header, ", "))
	}

	table := &Table{Path: path, Columns: header}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		fps := math.NaN()
		if fpsIdx < len(record) {
			if fps, err = parseFPS(record[fpsIdx]); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i >= len(record) {
				break
			}
			fields[name] = record[i]
		}
		table.Rows = append(table.Rows, Row{FPS: fps, Source: path, Fields: fields})
	}
	return table, nil
}

func parseFPS(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", FPSColumn, cell)
	}
	return v, nil
}
