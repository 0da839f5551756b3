package cmd

import (
	"github.com/spf13/cobra"

	"mimic_go/tools/overview"
)

// overviewCmd prints summary statistics of a protein FASTA file.
var overviewCmd = &cobra.Command{
	Use:     "overview [in_file]",
	Short:   "Summary statistics of a protein FASTA file",
	Example: "  mimic overview decoys.fasta",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMaybeBenchmarked(cmd, args, func() error {
			report, err := overview.CheckFile(args[0])
			if err != nil {
				return err
			}
			overview.PrintReport(cmd.OutOrStdout(), report)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}
