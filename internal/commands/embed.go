// internal/commands/embed.go
package lwbench

import (
	"github.com/mwiater/lwbench/internal/embed"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// embedCmd implements 'embed', which writes a self-contained copy of the presentation.
var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Inline local images into a portable HTML document",
	Long: `Rewrite every local src="..." image reference of the input document as a
base64 data URI and write the result next to it. Remote and already inline
references are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		opts := embed.Options{
			InputPath:  cfg.InputHTMLPath(),
			OutputPath: cfg.OutputHTMLPath(),
			BaseDir:    cfg.Root(),
		}
		_, err := embed.Run(opts, newConsole(cmd))
		return err
	},
}

func init() {
	embedCmd.Flags().String("input", "", "HTML document to read (default docs/Living_Worlds_Presentation.html)")
	embedCmd.Flags().String("output", "", "portable HTML to write (default <input>_Portable.html)")
	_ = viper.BindPFlag("inputHtml", embedCmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("outputHtml", embedCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(embedCmd)
}
