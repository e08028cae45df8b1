// internal/commands/show_config.go
package lwbench

import (
	"github.com/mwiater/lwbench/internal/appconfig"
	"github.com/spf13/cobra"
)

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON config is loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		file := ""
		if configLoaded {
			file = cfgFile
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), file, GetConfig())
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
