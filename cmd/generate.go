package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mimic_go/config"
	"mimic_go/tools/mimic"
)

// generateCmd is for writing mimic peptides of every record in a FASTA file.
var generateCmd = &cobra.Command{
	Use:   "generate [in_file]",
	Short: "Write decoy peptides for every protein in a FASTA file",
	Long: `Write decoy peptides for every protein in a FASTA file.

Each record (or, with --cleavage trypsin, each tryptic peptide) at least
min_len residues long becomes a candidate. For every candidate num_shuffles
mimics are written, either as permutations of its own residues (--mode shuffle)
or drawn residue by residue from the amino acid frequency table
(--mode resample). Mimics never equal their source, and with
shared_peptide_ratio 0 no two mimics of a run are identical.

Use "-" as in_file to read from stdin. An out_file ending in .gz is gzipped.`,
	Example: "  mimic generate proteome.fasta -o decoys.fasta -l 7 -m 3 -s 42",
	Aliases: []string{"gen"},
	Args:    cobra.ExactArgs(1),
	RunE:    runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()
	flags.StringP("out_file", "o", "", "output FASTA path")
	flags.IntP("min_len", "l", 0, "minimum peptide length kept")
	flags.IntP("num_shuffles", "m", 1, "mimics generated per peptide")
	flags.BoolP("replace_i", "I", false, "replace Isoleucine with Leucine")
	flags.Uint64P("seed", "s", 0, "random seed, 0 seeds from the clock")
	flags.StringP("protein_name_prefix", "p", "mimic|Random", "header prefix of generated records")
	flags.Float64P("shared_peptide_ratio", "q", 0, "max fraction of mimics allowed to repeat an earlier sequence")
	flags.BoolP("prepend_original", "P", false, "write each source peptide before its mimics")
	flags.BoolP("infer_aa_frequency", "A", true, "infer the amino acid frequency table from the input")
	flags.String("mode", "shuffle", "mimic mode: shuffle or resample")
	flags.String("cleavage", "none", "peptide extraction rule: none or trypsin")
	flags.Int("max_attempts", mimic.DefaultMaxAttempts, "draws per mimic before the best effort is accepted")
	flags.String("background", "swissprot", "reference frequency table: swissprot or uniform")
	flags.String("freq_plot", "", "write an SVG of table vs. generated composition")

	// Bind the parameters to viper
	for _, key := range []string{
		"out_file", "min_len", "num_shuffles", "replace_i", "seed",
		"protein_name_prefix", "shared_peptide_ratio", "prepend_original",
		"infer_aa_frequency", "mode", "cleavage", "max_attempts",
		"background", "freq_plot",
	} {
		viper.BindPFlag(key, flags.Lookup(key))
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	viper.Set("in_file", args[0])
	cfg, err := config.NewConfig(viper.GetViper())
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

	return runMaybeBenchmarked(cmd, args, func() error {
		sum, err := mimic.Run(cfg, logger)
		if errors.Is(err, mimic.ErrEmptyResult) {
			return fmt.Errorf("%w: %d record(s) read, none yielded a peptide of at least %d residues; %s not written",
				err, sum.Records, cfg.MinLen, cfg.OutFile)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records for %d peptides to %s (seed %d)\n",
			sum.Written, sum.Candidates, cfg.OutFile, sum.Seed)
		if sum.Stats.Exhausted > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %d mimic(s) accepted after %d attempts without meeting the uniqueness policy\n",
				sum.Stats.Exhausted, cfg.MaxAttempts)
		}
		return nil
	})
}
