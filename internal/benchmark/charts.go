package benchmark

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNothingToPlot is returned by the renderers when no group has a plottable value.
var ErrNothingToPlot = errors.New("nothing to plot")

const (
	// GridChartFile and SpeedChartFile are written inside the plots directory.
	GridChartFile  = "fps_by_grid_size.png"
	SpeedChartFile = "fps_by_speed.png"
	// SummaryFile holds the rounded summary table.
	SummaryFile = "summary_table.csv"

	speedLegendTitle = "Grid Size"

	chartDPI = 150
	// barHeadroom leaves room above the tallest bar for its value label.
	barHeadroom = 1.15
)

// chartPalette is cycled across grid sizes so a grid keeps its color in both charts.
var chartPalette = []color.RGBA{
	{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff},
	{R: 0x34, G: 0x98, B: 0xdb, A: 0xff},
	{R: 0x9b, G: 0x59, B: 0xb6, A: 0xff},
	{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff},
}

var gridLineColor = color.Gray{Y: 210}

func paletteColor(i int) color.Color {
	return chartPalette[i%len(chartPalette)]
}

// BarYMax returns the y axis limit for a bar chart whose tallest bar is maxMean.
func BarYMax(maxMean float64) float64 {
	return maxMean * barHeadroom
}

// RenderGridChart draws one bar per grid size with the mean fps printed above it.
// Groups without a defined mean are left out.
func RenderGridChart(groups []GridGroup, path string) error {
	groups = definedGridGroups(groups)
	if len(groups) == 0 {
		return fmt.Errorf("%w: no grid size has fps samples", ErrNothingToPlot)
	}

	p := plot.New()
	p.Title.Text = "Performance vs Grid Size"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Grid Size"
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.Text = "Average FPS"
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = gridLineColor
	p.Add(grid)

	names := make([]string, len(groups))
	labelXYs := make(plotter.XYs, len(groups))
	labelText := make([]string, len(groups))
	maxMean := 0.0
	for i, g := range groups {
		bar, err := plotter.NewBarChart(plotter.Values{g.Stats.Mean}, vg.Points(60))
		if err != nil {
			return fmt.Errorf("bar for grid %d: %w", g.GridSize, err)
		}
		bar.XMin = float64(i)
		bar.Color = paletteColor(i)
		bar.LineStyle.Width = 0
		p.Add(bar)

		names[i] = strconv.Itoa(g.GridSize)
		labelXYs[i] = plotter.XY{X: float64(i), Y: g.Stats.Mean}
		labelText[i] = fmt.Sprintf("%.0f", g.Stats.Mean)
		maxMean = math.Max(maxMean, g.Stats.Mean)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labelText})
	if err != nil {
		return fmt.Errorf("bar labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
		labels.TextStyle[i].Font.Size = vg.Points(10)
	}
	labels.Offset = vg.Point{Y: vg.Points(3)}
	p.Add(labels)

	p.NominalX(names...)
	p.Y.Min = 0
	if maxMean > 0 {
		p.Y.Max = BarYMax(maxMean)
	}

	return savePNG(p, 10*vg.Inch, 6*vg.Inch, path)
}

// SpeedChartPoints returns the plottable series of the speed chart keyed by
// grid size, with non-positive speeds and undefined means dropped since they
// cannot sit on a log axis. dropped counts the removed groups.
func SpeedChartPoints(groups []SpeedGroup) (series map[int]plotter.XYs, grids []int, dropped int) {
	series = make(map[int]plotter.XYs)
	for _, g := range groups {
		if g.SimSpeed <= 0 || math.IsNaN(g.Stats.Mean) {
			dropped++
			continue
		}
		if _, ok := series[g.GridSize]; !ok {
			grids = append(grids, g.GridSize)
		}
		series[g.GridSize] = append(series[g.GridSize], plotter.XY{X: g.SimSpeed, Y: g.Stats.Mean})
	}
	return series, grids, dropped
}

// RenderSpeedChart draws one marked line per grid size, fps against speed on a
// log x axis. groups must be ordered by grid size then speed. allGrids lists every
// grid size in the dataset so colors match the bar chart.
func RenderSpeedChart(groups []SpeedGroup, allGrids []int, path string) error {
	series, grids, _ := SpeedChartPoints(groups)
	if len(grids) == 0 {
		return fmt.Errorf("%w: no positive simulation speed has fps samples", ErrNothingToPlot)
	}

	colorIndex := make(map[int]int, len(allGrids))
	for i, g := range allGrids {
		colorIndex[g] = i
	}

	p := plot.New()
	p.Title.Text = "Performance vs Simulation Speed"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Simulation Speed Multiplier"
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.Text = "Average FPS"
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridLineColor
	grid.Horizontal.Color = gridLineColor
	p.Add(grid)

	labels := speedLegendLabels(grids)
	p.Legend.Add(labels[0])

	minX, maxX := math.Inf(1), math.Inf(-1)
	for i, g := range grids {
		pts := series[g]
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("line for grid %d: %w", g, err)
		}
		c := paletteColor(colorIndex[g])
		line.Color = c
		line.Width = vg.Points(2)
		points.Shape = draw.CircleGlyph{}
		points.Color = c
		points.Radius = vg.Points(4)

		p.Add(line, points)
		p.Legend.Add(labels[i+1], line, points)

		for _, pt := range pts {
			minX = math.Min(minX, pt.X)
			maxX = math.Max(maxX, pt.X)
		}
	}
	p.Legend.Top = true

	// Pad by a constant ratio so a single speed still spans a range.
	p.X.Min = minX / 1.25
	p.X.Max = maxX * 1.25

	return savePNG(p, 12*vg.Inch, 6*vg.Inch, path)
}

// speedLegendLabels returns the legend title followed by one g×g label per grid.
func speedLegendLabels(grids []int) []string {
	labels := make([]string, 0, len(grids)+1)
	labels = append(labels, speedLegendTitle)
	for _, g := range grids {
		labels = append(labels, fmt.Sprintf("%d×%d", g, g))
	}
	return labels
}

// savePNG renders p at chartDPI and overwrites path.
func savePNG(p *plot.Plot, w, h vg.Length, path string) error {
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(chartDPI))
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to write chart %s: %w", path, err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("unable to write chart %s: %w", path, err)
	}
	return f.Close()
}

func definedGridGroups(groups []GridGroup) []GridGroup {
	out := make([]GridGroup, 0, len(groups))
	for _, g := range groups {
		if !math.IsNaN(g.Stats.Mean) {
			out = append(out, g)
		}
	}
	return out
}
