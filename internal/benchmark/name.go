package benchmark

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	gridPrefix  = "grid"
	speedPrefix = "speed"
	// speedScale encodes one decimal digit of the speed multiplier in the filename.
	speedScale = 10.0
)

// ErrBadResultName is returned when a result filename does not follow grid<N>_speed<M>.
var ErrBadResultName = errors.New("result name must look like grid<N>_speed<M>")

// ResultParams are the benchmark parameters encoded in a result filename.
type ResultParams struct {
	GridSize int
	SimSpeed float64
}

// ParseResultName extracts the grid size and speed multiplier from path's
// stem. Tokens after the second underscore-separated part are ignored.
func ParseResultName(path string) (ResultParams, error) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	parts := strings.Split(stem, "_")
	if len(parts) < 2 {
		return ResultParams{}, fmt.Errorf("%w: %q has no speed token", ErrBadResultName, base)
	}

	grid, err := strconv.Atoi(strings.TrimPrefix(parts[0], gridPrefix))
	if err != nil {
		return ResultParams{}, fmt.Errorf("%w: grid token %q: %v", ErrBadResultName, parts[0], err)
	}
	speed, err := strconv.Atoi(strings.TrimPrefix(parts[1], speedPrefix))
	if err != nil {
		return ResultParams{}, fmt.Errorf("%w: speed token %q: %v", ErrBadResultName, parts[1], err)
	}

	return ResultParams{GridSize: grid, SimSpeed: float64(speed) / speedScale}, nil
}
