// Package metrics provides the running statistics used to aggregate benchmark
// samples: Welford accumulation, sample standard deviation and one-decimal
// rounding for published tables.
package metrics
