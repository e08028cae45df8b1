// internal/metrics/stats.go
package metrics

import (
	"math"
	"sort"
)

// Add folds value into the running statistic using Welford's online algorithm.
func (rs *RunningStat) Add(value float64) {
	rs.Count++
	if rs.Count == 1 {
		rs.Min = value
		rs.Max = value
	} else {
		if value < rs.Min {
			rs.Min = value
		}
		if value > rs.Max {
			rs.Max = value
		}
	}

	delta := value - rs.Mean
	rs.Mean += delta / float64(rs.Count)
	delta2 := value - rs.Mean
	rs.M2 += delta * delta2
}

// Variance returns the sample variance (n-1 denominator). It is NaN for fewer
// than two samples.
func (rs RunningStat) Variance() float64 {
	if rs.Count < 2 {
		return math.NaN()
	}
	return rs.M2 / float64(rs.Count-1)
}

// StdDev returns the sample standard deviation.
func (rs RunningStat) StdDev() float64 {
	return math.Sqrt(rs.Variance())
}

// Summary finalizes the running statistic. An empty statistic reports NaN for
// every value.
func (rs RunningStat) Summary() Summary {
	if rs.Count == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, Min: nan, Max: nan, StdDev: nan}
	}
	return Summary{
		Count:  rs.Count,
		Mean:   rs.Mean,
		Min:    rs.Min,
		Max:    rs.Max,
		StdDev: rs.StdDev(),
	}
}

// Summarize aggregates values, ignoring NaN entries. Values are accumulated in
// ascending order so the result does not depend on the order they arrive in.
func Summarize(values []float64) Summary {
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	sort.Float64s(sorted)

	var rs RunningStat
	for _, v := range sorted {
		rs.Add(v)
	}
	return rs.Summary()
}

// Round1 rounds v to one decimal place, ties to even. NaN and Inf pass through.
func Round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.RoundToEven(v*10) / 10
}

// Rounded returns a copy of s with every statistic rounded to one decimal place.
func (s Summary) Rounded() Summary {
	return Summary{
		Count:  s.Count,
		Mean:   Round1(s.Mean),
		Min:    Round1(s.Min),
		Max:    Round1(s.Max),
		StdDev: Round1(s.StdDev),
	}
}
