// internal/commands/report.go
package lwbench

import (
	"github.com/mwiater/lwbench/internal/benchmark"
	"github.com/mwiater/lwbench/internal/logging"
	"github.com/spf13/cobra"
)

// reportCmd implements 'report', which charts and summarizes benchmark result tables.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Chart and summarize benchmark result tables",
	Long: `Load every result table matching the results pattern, derive grid size and
speed from each filename, then write the fps charts and the summary table into
the plots directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runReport(newConsole(cmd))
		return err
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(console *logging.Console) (*benchmark.Report, error) {
	cfg := GetConfig()
	opts := benchmark.Options{
		ResultsDir:   cfg.ResultsPath(),
		Pattern:      cfg.ResultsGlob(),
		PlotsDir:     cfg.PlotsPath(),
		AnalysisPath: cfg.AnalysisPath(),
	}
	console.Debug("report options: %+v", opts)
	return benchmark.Run(opts, console)
}
