// cmd/gostats/interactive.go
package gostats

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/gostats/internal/tui"
)

var startTUI = tui.Start

// interactiveCmd represents the 'interactive' command.
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start an interactive session",
	Long:  `The 'interactive' command starts a terminal UI where statistics are recomputed as you type numbers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startTUI(tui.Options{
			Stats:     settings.Stats,
			Precision: settings.Precision,
			Debug:     settings.Debug,
		})
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
