package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mimic_go/config"
)

// checkCmd performs a simple sanity check that mimic is running,
// printing the version of every tool.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a diagnostic check and list tool versions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Successfully running mimic! (%s)\n", config.Main_version)
		fmt.Fprintln(w, "Modular tools:")
		fmt.Fprintf(w, "\tMimic Generator:\t%s\n", config.Mimic)
		fmt.Fprintf(w, "\tFASTA Overview:\t\t%s\n", config.FASTA_Overview)
		fmt.Fprintf(w, "\tSanity Check:\t\t%s\n", config.Sanity_check)
		fmt.Fprintf(w, "\tBenchmark:\t\t%s\n", config.Benchmark)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
