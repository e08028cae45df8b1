package benchmark

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwiater/lwbench/internal/logging"
	"github.com/mwiater/lwbench/internal/util"
)

const defaultPattern = "grid*.csv"

// Options configures a report run.
type Options struct {
	ResultsDir string
	Pattern    string
	PlotsDir   string
	// AnalysisPath, when set, receives the grouped aggregates as JSON.
	AnalysisPath string
}

func (o Options) pattern() string {
	if strings.TrimSpace(o.Pattern) == "" {
		return defaultPattern
	}
	return o.Pattern
}

// Report is the outcome of a run. It is also the shape of the analysis file.
type Report struct {
	Rows      int          `json:"rows"`
	Files     []string     `json:"files"`
	Skipped   []string     `json:"skipped,omitempty"`
	ByGrid    []GridGroup  `json:"by_grid"`
	BySpeed   []SpeedGroup `json:"by_grid_speed"`
	Artifacts []string     `json:"-"`
}

// Run loads every result table, renders both charts and writes the summary
// table. Missing or unusable inputs are reported and yield a nil Report with a
// nil error; only artifact write failures are returned.
func Run(opts Options, console *logging.Console) (*Report, error) {
	ds, err := Load(opts.ResultsDir, opts.pattern(), console)
	switch {
	case errors.Is(err, ErrNoResults):
		console.Warn("No benchmark CSV files found in %s", opts.ResultsDir)
		console.Warn("No benchmark data to plot")
		return nil, nil
	case errors.Is(err, ErrNoData):
		console.Warn("No benchmark data to plot")
		return nil, nil
	case err != nil:
		console.Error("Error loading benchmark results: %v", err)
		return nil, nil
	}

	console.Printf("Loaded %d data points from benchmark results", len(ds.Rows))
	console.Println()

	if err := os.MkdirAll(opts.PlotsDir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create plots directory %s: %w", opts.PlotsDir, err)
	}

	report := &Report{
		Rows:    len(ds.Rows),
		Files:   ds.Files,
		Skipped: ds.Skipped,
		ByGrid:  GroupByGrid(ds.Rows),
		BySpeed: GroupByGridSpeed(ds.Rows),
	}

	gridChart := filepath.Join(opts.PlotsDir, GridChartFile)
	if err := RenderGridChart(report.ByGrid, gridChart); err != nil {
		if !errors.Is(err, ErrNothingToPlot) {
			return nil, err
		}
		console.Warn("Skipping %s: %v", GridChartFile, err)
	} else {
		report.saved(console, gridChart)
	}

	speedChart := filepath.Join(opts.PlotsDir, SpeedChartFile)
	_, _, dropped := SpeedChartPoints(report.BySpeed)
	if dropped > 0 {
		console.Warn("Skipping %d speed groups that cannot be placed on a log axis", dropped)
	}
	if err := RenderSpeedChart(report.BySpeed, gridSizes(report.ByGrid), speedChart); err != nil {
		if !errors.Is(err, ErrNothingToPlot) {
			return nil, err
		}
		console.Warn("Skipping %s: %v", SpeedChartFile, err)
	} else {
		report.saved(console, speedChart)
	}

	summary := BuildSummary(report.BySpeed)
	summaryPath := filepath.Join(opts.PlotsDir, SummaryFile)
	if err := WriteSummaryCSV(summaryPath, summary); err != nil {
		return nil, err
	}
	report.saved(console, summaryPath)

	if opts.AnalysisPath != "" {
		if err := writeAnalysis(opts.AnalysisPath, report); err != nil {
			return nil, err
		}
		report.saved(console, opts.AnalysisPath)
	}

	PrintSummary(console.Writer(), summary)
	logging.LogEvent("summary rows=%d grids=%d skipped=%d", len(summary), len(report.ByGrid), len(report.Skipped))

	console.Println()
	console.Success("All plots saved to: %s", opts.PlotsDir)
	return report, nil
}

func (r *Report) saved(console *logging.Console, path string) {
	r.Artifacts = append(r.Artifacts, path)
	console.Printf("Saved: %s", path)
}

func writeAnalysis(path string, report *Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode analysis: %w", err)
	}
	if err := util.WriteFile(path, append(data, '\n')); err != nil {
		return fmt.Errorf("unable to write analysis %s: %w", path, err)
	}
	return nil
}

func gridSizes(groups []GridGroup) []int {
	out := make([]int, len(groups))
	for i, g := range groups {
		out[i] = g.GridSize
	}
	return out
}
