package benchmark

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mwiater/lwbench/internal/util"
)

// SummaryHeader is the header row of the summary table, in column order.
var SummaryHeader = []string{"grid_size", "sim_speed", "Avg FPS", "Min FPS", "Max FPS", "Std Dev"}

// SummaryRow is one (grid size, speed) line of the summary table. Statistics
// are rounded to one decimal place.
type SummaryRow struct {
	GridSize int
	SimSpeed float64
	AvgFPS   float64
	MinFPS   float64
	MaxFPS   float64
	StdDev   float64
}

// BuildSummary converts speed groups into rounded summary rows.
func BuildSummary(groups []SpeedGroup) []SummaryRow {
	rows := make([]SummaryRow, 0, len(groups))
	for _, g := range groups {
		s := g.Stats.Rounded()
		rows = append(rows, SummaryRow{
			GridSize: g.GridSize,
			SimSpeed: g.SimSpeed,
			AvgFPS:   s.Mean,
			MinFPS:   s.Min,
			MaxFPS:   s.Max,
			StdDev:   s.StdDev,
		})
	}
	return rows
}

// Cells renders the row the way it is written to the table file. Undefined
// statistics become empty cells.
func (r SummaryRow) Cells() []string {
	return []string{
		strconv.Itoa(r.GridSize),
		util.FormatDecimal(r.SimSpeed),
		statCell(r.AvgFPS),
		statCell(r.MinFPS),
		statCell(r.MaxFPS),
		statCell(r.StdDev),
	}
}

func statCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return util.FormatDecimal(v)
}

// WriteSummaryCSV overwrites path with the summary table.
func WriteSummaryCSV(path string, rows []SummaryRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to write summary table %s: %w", path, err)
	}
	if err := writeSummary(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("unable to write summary table %s: %w", path, err)
	}
	return f.Close()
}

func writeSummary(w io.Writer, rows []SummaryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SummaryHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Cells()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var (
	summaryHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
	summaryCellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// RenderSummary draws the summary table for the console. NaN statistics are
// shown as NaN rather than blank so the gap is visible.
func RenderSummary(rows []SummaryRow) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(SummaryHeader...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return summaryHeaderStyle
			}
			return summaryCellStyle
		})
	for _, r := range rows {
		cells := r.Cells()
		for i, c := range cells {
			if c == "" {
				cells[i] = "NaN"
			}
		}
		t.Row(cells...)
	}
	return t.Render()
}

// PrintSummary writes the console heading and table.
func PrintSummary(w io.Writer, rows []SummaryRow) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Performance Summary ===")
	fmt.Fprintln(w, RenderSummary(rows))
}
