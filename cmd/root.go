// Package cmd is for command line interactions with the mimic application
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mimic_go/benchmark"
	"mimic_go/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "mimic",
	Short: `Generate decoy peptides from a protein FASTA file.
Every retained peptide is shuffled or resampled into length-matched mimics`,
	Version:           config.Main_version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return initConfig() },
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./mimic.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log progress and run statistics to stderr")
	rootCmd.PersistentFlags().Bool("benchmark", false, "report runtime and memory usage of the command")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("benchmark", rootCmd.PersistentFlags().Lookup("benchmark"))
}

// initConfig reads in the config file and MIMIC_* environment variables.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mimic")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("MIMIC")
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// newLogger returns the diagnostics logger, silent unless verbose.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		w = io.Discard
	}
	return log.New(w, "[mimic] ", log.Ltime)
}

// runMaybeBenchmarked runs f, wrapped in a resource report when --benchmark is set.
func runMaybeBenchmarked(cmd *cobra.Command, args []string, f func() error) error {
	if !viper.GetBool("benchmark") {
		return f()
	}
	label := strings.TrimSpace(fmt.Sprintf("%s %s", cmd.CommandPath(), strings.Join(args, " ")))
	return benchmark.Run(cmd.ErrOrStderr(), label, f)
}
