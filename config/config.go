// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned by Validate for settings the engine cannot run with.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the root-level settings struct. It is a mix of settings from an
// optional mimic.yaml, MIMIC_* environment variables and command line flags.
type Config struct {
	// path to the input protein FASTA, "-" for stdin
	InFile string `mapstructure:"in_file"`

	// path to the output FASTA, ".gz" compresses
	OutFile string `mapstructure:"out_file"`

	// candidates shorter than this are dropped
	MinLen int `mapstructure:"min_len"`

	// variants generated per candidate
	NumShuffles int `mapstructure:"num_shuffles"`

	// collapse Isoleucine to Leucine
	ReplaceI bool `mapstructure:"replace_i"`

	// 0 seeds from the clock
	Seed uint64 `mapstructure:"seed"`

	// header prefix for generated records
	ProteinNamePrefix string `mapstructure:"protein_name_prefix"`

	// upper bound on the fraction of generated peptides that repeat an earlier one
	SharedPeptideRatio float64 `mapstructure:"shared_peptide_ratio"`

	// write the source peptide before its variants
	PrependOriginal bool `mapstructure:"prepend_original"`

	// build the frequency table from the input instead of the background table
	InferAAFrequency bool `mapstructure:"infer_aa_frequency"`

	Verbose bool `mapstructure:"verbose"`

	// "shuffle" or "resample"
	Mode string `mapstructure:"mode"`

	// "none" or "trypsin"
	Cleavage string `mapstructure:"cleavage"`

	// draws per variant before the best effort is accepted
	MaxAttempts int `mapstructure:"max_attempts"`

	// "swissprot" or "uniform"
	Background string `mapstructure:"background"`

	// optional SVG path for the composition plot
	FreqPlot string `mapstructure:"freq_plot"`

	Benchmark bool `mapstructure:"benchmark"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		MinLen:             0,
		NumShuffles:        1,
		Seed:               0,
		ProteinNamePrefix:  "mimic|Random",
		SharedPeptideRatio: 0.0,
		InferAAFrequency:   true,
		Mode:               "shuffle",
		Cleavage:           "none",
		MaxAttempts:        1000,
		Background:         "swissprot",
	}
}

// SetDefaults registers Default() with v so that unset keys unmarshal to it.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("min_len", d.MinLen)
	v.SetDefault("num_shuffles", d.NumShuffles)
	v.SetDefault("replace_i", d.ReplaceI)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("protein_name_prefix", d.ProteinNamePrefix)
	v.SetDefault("shared_peptide_ratio", d.SharedPeptideRatio)
	v.SetDefault("prepend_original", d.PrependOriginal)
	v.SetDefault("infer_aa_frequency", d.InferAAFrequency)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("mode", d.Mode)
	v.SetDefault("cleavage", d.Cleavage)
	v.SetDefault("max_attempts", d.MaxAttempts)
	v.SetDefault("background", d.Background)
}

// NewConfig returns a new Config populated by v.
func NewConfig(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode into struct: %w", err)
	}
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	c.Cleavage = strings.ToLower(strings.TrimSpace(c.Cleavage))
	c.Background = strings.ToLower(strings.TrimSpace(c.Background))
	return c, nil
}

// Validate checks ranges and required settings.
func (c Config) Validate() error {
	switch {
	case c.InFile == "":
		return fmt.Errorf("%w: an input FASTA is required", ErrInvalidConfig)
	case c.OutFile == "":
		return fmt.Errorf("%w: out_file is required", ErrInvalidConfig)
	case c.MinLen < 0:
		return fmt.Errorf("%w: min_len must be >= 0, got %d", ErrInvalidConfig, c.MinLen)
	case c.NumShuffles < 0:
		return fmt.Errorf("%w: num_shuffles must be >= 0, got %d", ErrInvalidConfig, c.NumShuffles)
	case c.SharedPeptideRatio < 0 || c.SharedPeptideRatio > 1:
		return fmt.Errorf("%w: shared_peptide_ratio must be between 0.0 and 1.0, got %g", ErrInvalidConfig, c.SharedPeptideRatio)
	case c.MaxAttempts < 1:
		return fmt.Errorf("%w: max_attempts must be >= 1, got %d", ErrInvalidConfig, c.MaxAttempts)
	case strings.TrimSpace(c.ProteinNamePrefix) == "":
		return fmt.Errorf("%w: protein_name_prefix must not be empty", ErrInvalidConfig)
	}
	return nil
}
