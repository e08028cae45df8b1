// Package benchmark turns per-run result tables into charts and a summary
// table.
//
// Result tables are CSV files named grid<N>_speed<M>.csv. N is the simulation
// grid size and M is ten times the simulation speed multiplier, so
// grid512_speed05.csv holds samples for a 512x512 grid at 0.5x speed. Every
// row carries an fps column; the two filename parameters are attached to each
// row on load.
package benchmark
