// cmd/gostats/list_stats.go
package gostats

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mwiater/gostats/stats"
)

// listStatsCmd implements 'list stats', which prints every registered
// statistic with its description.
var listStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "List the available statistics",
	Long:  `The 'stats' subcommand lists every statistic that can be passed to --stat, with a short description of its edge cases.`,
	Run: func(cmd *cobra.Command, args []string) {
		listStats(cmd.OutOrStdout())
	},
}

func init() {
	listCmd.AddCommand(listStatsCmd)
}

func listStats(w io.Writer) {
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Width(8)
	fmt.Fprintln(w, "Statistics:")
	for _, n := range stats.Names() {
		fmt.Fprintf(w, "  %s %s\n", nameStyle.Render(n), stats.Describe(n))
	}
}
