// cmd/gostats/suite.go
package gostats

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/gostats/internal/input"
	"github.com/mwiater/gostats/internal/report"
	"github.com/mwiater/gostats/internal/suite"
)

var suiteFile string

// suiteCmd implements 'suite', which evaluates every series of a dataset
// file and prints one row per series.
var suiteCmd = &cobra.Command{
	Use:   "suite",
	Short: "Compute statistics for every series in a dataset file",
	Long:  `The 'suite' command reads a JSON or YAML dataset of named series from --file and prints the selected statistics for each series, in file order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := input.LoadDataset(suiteFile)
		if err != nil {
			return err
		}
		log.Infof("running suite over %d series from %s", len(ds.Series), suiteFile)

		res, err := suite.Run(cmd.Context(), suite.Config{Series: ds.Series, Stats: settings.Stats})
		if err != nil {
			return err
		}
		return report.Render(cmd.OutOrStdout(), res.Rows(), report.Options{Format: settings.Format, Precision: settings.Precision})
	},
}

func init() {
	rootCmd.AddCommand(suiteCmd)
	suiteCmd.Flags().StringVar(&suiteFile, "file", "", "dataset file (.json, .yaml or .yml)")
	suiteCmd.MarkFlagRequired("file")
}
