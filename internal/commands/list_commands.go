// internal/commands/list_commands.go
package lwbench

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// commandEntry is one row of the command tree listing.
type commandEntry struct {
	Path        string
	Description string
}

var commandPathStyle = lipgloss.NewStyle().Bold(true)

// commandsCmd implements 'list commands', which prints every command path with
// its short description.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands in two columns",
	Run: func(cmd *cobra.Command, args []string) {
		entries := make([]commandEntry, 0)
		for _, e := range collectCommands(rootCmd, "", "") {
			if strings.Contains(e.Path, "completion") || strings.Contains(e.Path, "help") {
				continue
			}
			entries = append(entries, e)
		}
		printCommands(cmd.OutOrStdout(), entries)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
}

// collectCommands walks the command tree depth first, indenting each level.
func collectCommands(cmd *cobra.Command, parent, indent string) []commandEntry {
	path := cmd.Name()
	if parent != "" {
		path = parent + " " + cmd.Name()
	}
	entries := []commandEntry{{Path: indent + path, Description: cmd.Short}}
	for _, sub := range cmd.Commands() {
		entries = append(entries, collectCommands(sub, path, indent+"  ")...)
	}
	return entries
}

func printCommands(out io.Writer, entries []commandEntry) {
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Path))
	}

	fmt.Fprintln(out, "Commands and Subcommands:")
	for _, e := range entries {
		pad := strings.Repeat(" ", width-len(e.Path)+2)
		fmt.Fprintf(out, "  %s%s%s\n", commandPathStyle.Render(e.Path), pad, e.Description)
	}
}
