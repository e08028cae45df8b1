// internal/commands/analyze.go
package lwbench

import (
	"strings"

	"github.com/spf13/cobra"
)

const bannerTitle = "Living Worlds Benchmark Analysis"

// analyzeCmd runs the whole benchmark pipeline: conversion, then reporting.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Convert recordings and report benchmark results",
	Long: `Run the full benchmark pipeline. Recordings are converted to GIFs first,
then the result tables are charted and summarized. Each stage reports and skips
missing inputs on its own.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		console := newConsole(cmd)
		rule := strings.Repeat("=", 50)
		console.Println(rule)
		console.Println(bannerTitle)
		console.Println(rule)
		console.Println()

		if _, err := runConvert(cmd, console); err != nil {
			return err
		}
		console.Println()

		if _, err := runReport(console); err != nil {
			return err
		}

		console.Println()
		console.Success("Done!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
