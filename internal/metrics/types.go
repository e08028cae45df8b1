// internal/metrics/types.go
package metrics

import (
	"encoding/json"
	"math"
)

// RunningStat holds the necessary values for online calculation of mean, variance, and stddev.
type RunningStat struct {
	Count int64   `json:"count"`
	Mean  float64 `json:"mean"`
	M2    float64 `json:"-"` // Sum of squares of differences from the current mean
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Summary is the finished aggregate of one group of samples.
type Summary struct {
	Count  int64   `json:"count"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// summaryJSON mirrors Summary with undefined statistics encoded as null.
type summaryJSON struct {
	Count  int64    `json:"count"`
	Mean   *float64 `json:"mean"`
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
	StdDev *float64 `json:"std_dev"`
}

// MarshalJSON encodes NaN statistics (empty groups, single-sample std dev) as null.
func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(summaryJSON{
		Count:  s.Count,
		Mean:   finite(s.Mean),
		Min:    finite(s.Min),
		Max:    finite(s.Max),
		StdDev: finite(s.StdDev),
	})
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
