package mimic

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"mimic_go/config"
	"mimic_go/tools/overview"
	common "mimic_go/utils"
)

var (
	// ErrInputNotFound is returned before any work when the input FASTA is missing.
	ErrInputNotFound = errors.New("input file not found")

	// ErrOutputDir is returned when the output directory cannot be created.
	ErrOutputDir = errors.New("output directory not writable")
)

// Summary reports what one Run did.
type Summary struct {
	Records    int // protein records read
	Skipped    int // malformed records skipped by the reader
	Candidates int
	Written    int // output records, originals included
	Seed       uint64
	Stats      Stats
}

// OptionsFromConfig translates command line settings into engine options.
func OptionsFromConfig(cfg config.Config) (Options, error) {
	mode, err := ParseMode(cfg.Mode)
	if err != nil {
		return Options{}, err
	}
	rule, err := RuleByName(cfg.Cleavage)
	if err != nil {
		return Options{}, err
	}
	bg, err := ParseBackground(cfg.Background)
	if err != nil {
		return Options{}, err
	}
	return Options{
		MinLen:            cfg.MinLen,
		NumShuffles:       cfg.NumShuffles,
		ReplaceI:          cfg.ReplaceI,
		Seed:              cfg.Seed,
		ProteinNamePrefix: cfg.ProteinNamePrefix,
		SharedRatio:       cfg.SharedPeptideRatio,
		PrependOriginal:   cfg.PrependOriginal,
		InferFrequency:    cfg.InferAAFrequency,
		Mode:              mode,
		Rule:              rule,
		MaxAttempts:       cfg.MaxAttempts,
		Background:        bg,
	}, nil
}

// Run reads cfg.InFile, mimics every candidate and writes cfg.OutFile.
// A run that produces nothing returns ErrEmptyResult and leaves no output file.
func Run(cfg config.Config, logger *log.Logger) (Summary, error) {
	var sum Summary
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if err := cfg.Validate(); err != nil {
		return sum, err
	}
	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		return sum, err
	}
	opts.Logger = logger

	if cfg.InFile != "-" {
		if _, err := os.Stat(cfg.InFile); err != nil {
			return sum, fmt.Errorf("%w: %w", ErrInputNotFound, err)
		}
	}
	if err := common.EnsureDir(cfg.OutFile); err != nil {
		return sum, fmt.Errorf("%w: %w", ErrOutputDir, err)
	}

	var proteins []Protein
	var report *overview.Report
	if cfg.Verbose {
		report = overview.NewReport(cfg.InFile)
	}
	stats, err := common.StreamFasta(cfg.InFile, func(header, seq string) error {
		proteins = append(proteins, Protein{Header: header, Seq: seq})
		if report != nil {
			report.Add(header, seq)
		}
		return nil
	})
	sum.Records = stats.Records
	sum.Skipped = stats.Skipped()
	if err != nil {
		return sum, err
	}
	if report != nil {
		report.Finish(stats)
		logger.Printf("input %s: %s", cfg.InFile, report.Summary())
	}
	if sum.Skipped > 0 {
		logger.Printf("skipped %d malformed record(s)", sum.Skipped)
	}

	coord, err := NewCoordinator(opts)
	if err != nil {
		return sum, err
	}
	sum.Seed = coord.Seed()
	recs, err := coord.Run(proteins)
	sum.Stats = coord.Stats()
	sum.Candidates = sum.Stats.Candidates
	if err != nil {
		return sum, err
	}

	if err := WriteFastaFile(cfg.OutFile, recs); err != nil {
		return sum, fmt.Errorf("writing %s: %w", cfg.OutFile, err)
	}
	sum.Written = len(recs)
	logger.Printf("wrote %d records to %s", sum.Written, cfg.OutFile)

	if cfg.FreqPlot != "" {
		if err := writePlot(cfg.FreqPlot, coord.Table(), recs, opts.ProteinNamePrefix); err != nil {
			return sum, fmt.Errorf("writing %s: %w", cfg.FreqPlot, err)
		}
		logger.Printf("composition plot saved to %s", cfg.FreqPlot)
	}
	return sum, nil
}

func writePlot(path string, table FrequencyTable, recs []OutputRecord, prefix string) error {
	svg, err := CompositionPlotSVG(table, ObservedComposition(table, recs, prefix))
	if err != nil {
		return err
	}
	if err := common.EnsureDir(path); err != nil {
		return err
	}
	return common.WriteFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, svg)
		return err
	})
}
