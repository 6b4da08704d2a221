// cmd/gostats/compute.go
package gostats

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwiater/gostats/internal/input"
	"github.com/mwiater/gostats/internal/report"
	"github.com/mwiater/gostats/stats"
)

var computeFile string

// computeCmd implements 'compute', which evaluates the selected statistics
// over one sequence of numbers.
var computeCmd = &cobra.Command{
	Use:   "compute [values...]",
	Short: "Compute statistics over a sequence of numbers",
	Long:  `The 'compute' command reads numbers from its arguments, from --file, or
from stdin when neither is given, and prints the selected statistics.
Values may be separated by whitespace, commas or semicolons. Put "--"
before the values if the first one is negative.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		xs, err := readComputeValues(cmd, args)
		if err != nil {
			return err
		}
		log.Debugf("read %d values", len(xs))

		res, err := stats.Apply(xs, settings.Stats...)
		if err != nil {
			return err
		}
		rows := []report.Row{{Count: len(xs), Results: res}}
		return report.Render(cmd.OutOrStdout(), rows, report.Options{Format: settings.Format, Precision: settings.Precision})
	},
}

func readComputeValues(cmd *cobra.Command, args []string) ([]float64, error) {
	switch {
	case len(args) > 0:
		return input.ParseValues(args)
	case computeFile != "":
		f, err := os.Open(computeFile)
		if err != nil {
			return nil, fmt.Errorf("could not open values file: %w", err)
		}
		defer f.Close()
		return input.ReadValues(f)
	default:
		return input.ReadValues(cmd.InOrStdin())
	}
}

func init() {
	rootCmd.AddCommand(computeCmd)
	computeCmd.Flags().StringVar(&computeFile, "file", "", "read values from a file instead of stdin")
}
