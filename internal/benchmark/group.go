package benchmark

import (
	"sort"

	"github.com/mwiater/lwbench/internal/metrics"
)

// GridGroup aggregates fps across every row sharing a grid size.
type GridGroup struct {
	GridSize int             `json:"grid_size"`
	Stats    metrics.Summary `json:"fps"`
}

// SpeedGroup aggregates fps across every row sharing a grid size and speed.
type SpeedGroup struct {
	GridSize int             `json:"grid_size"`
	SimSpeed float64         `json:"sim_speed"`
	Stats    metrics.Summary `json:"fps"`
}

type gridSpeedKey struct {
	grid  int
	speed float64
}

// GroupByGrid returns one group per distinct grid size, ascending.
func GroupByGrid(rows []Row) []GridGroup {
	values := make(map[int][]float64)
	for _, row := range rows {
		values[row.GridSize] = append(values[row.GridSize], row.FPS)
	}

	groups := make([]GridGroup, 0, len(values))
	for grid, fps := range values {
		groups = append(groups, GridGroup{GridSize: grid, Stats: metrics.Summarize(fps)})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].GridSize < groups[j].GridSize })
	return groups
}

// GroupByGridSpeed returns one group per distinct (grid size, speed) pair,
// ordered by grid size then speed.
func GroupByGridSpeed(rows []Row) []SpeedGroup {
	values := make(map[gridSpeedKey][]float64)
	for _, row := range rows {
		key := gridSpeedKey{grid: row.GridSize, speed: row.SimSpeed}
		values[key] = append(values[key], row.FPS)
	}

	groups := make([]SpeedGroup, 0, len(values))
	for key, fps := range values {
		groups = append(groups, SpeedGroup{GridSize: key.grid, SimSpeed: key.speed, Stats: metrics.Summarize(fps)})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].GridSize != groups[j].GridSize {
			return groups[i].GridSize < groups[j].GridSize
		}
		return groups[i].SimSpeed < groups[j].SimSpeed
	})
	return groups
}
