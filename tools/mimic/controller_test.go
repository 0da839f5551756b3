package mimic

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mimic_go/config"
)

const controllerInput = `>seq1
ACDEFGHIKLMNPQRSTVWY
>empty
>seq2 second record
MKWVTFISLL
LFSSAYS
`

func controllerConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "in.fasta")
	if err := os.WriteFile(in, []byte(controllerInput), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.InFile = in
	cfg.OutFile = filepath.Join(dir, "out", "mimic.fasta")
	cfg.Seed = 9
	cfg.MinLen = 5
	cfg.NumShuffles = 2
	return cfg
}

func TestRun(t *testing.T) {
	cfg := controllerConfig(t)
	cfg.PrependOriginal = true
	cfg.Verbose = true
	cfg.FreqPlot = filepath.Join(filepath.Dir(cfg.OutFile), "plots", "composition.svg")

	var logs bytes.Buffer
	sum, err := Run(cfg, log.New(&logs, "[mimic] ", 0))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := Summary{Records: 2, Skipped: 1, Candidates: 2, Written: 6, Seed: 9}
	want.Stats = sum.Stats
	if sum != want {
		t.Errorf("Run() = %+v, want %+v", sum, want)
	}

	out, err := os.ReadFile(cfg.OutFile)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("got %d output lines, want 12:\n%s", len(lines), out)
	}
	if lines[0] != ">seq1" || lines[2] != ">mimic|Random_1|shuffle_1" || lines[6] != ">seq2 second record" {
		t.Errorf("unexpected headers:\n%s", out)
	}
	if lines[7] != "MKWVTFISLLLFSSAYS" {
		t.Errorf("multi-line record not joined: %q", lines[7])
	}

	svg, err := os.ReadFile(cfg.FreqPlot)
	if err != nil || !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("composition plot missing or not SVG: %v", err)
	}
	for _, want := range []string{"[mimic] seed 9", "skipped 1 malformed", "2 sequences (1 skipped)"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("log missing %q:\n%s", want, logs.String())
		}
	}
}

func TestRunEmptyResult(t *testing.T) {
	cfg := controllerConfig(t)
	cfg.MinLen = 1000

	_, err := Run(cfg, nil)
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("Run() error = %v, want ErrEmptyResult", err)
	}
	if _, err := os.Stat(cfg.OutFile); !os.IsNotExist(err) {
		t.Error("empty result created an output file")
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*config.Config)
		wantErr error
	}{
		{"missing input", func(c *config.Config) { c.InFile = filepath.Join(filepath.Dir(c.InFile), "nope.fasta") }, ErrInputNotFound},
		{"bad ratio", func(c *config.Config) { c.SharedPeptideRatio = 2 }, config.ErrInvalidConfig},
		{"no output", func(c *config.Config) { c.OutFile = "" }, config.ErrInvalidConfig},
		{"unknown mode", func(c *config.Config) { c.Mode = "reverse" }, ErrInvalidOptions},
		{"unknown cleavage", func(c *config.Config) { c.Cleavage = "pepsin" }, ErrInvalidOptions},
		{"unknown background", func(c *config.Config) { c.Background = "yeast" }, ErrInvalidOptions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := controllerConfig(t)
			tt.modify(&cfg)
			if _, err := Run(cfg, nil); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunOutputDirBlocked(t *testing.T) {
	cfg := controllerConfig(t)
	blocker := filepath.Join(filepath.Dir(cfg.InFile), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.OutFile = filepath.Join(blocker, "out.fasta")
	if _, err := Run(cfg, nil); !errors.Is(err, ErrOutputDir) {
		t.Fatalf("Run() error = %v, want ErrOutputDir", err)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Mode = "resample"
	cfg.Cleavage = "trypsin"
	cfg.Background = "uniform"
	cfg.SharedPeptideRatio = 0.2

	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("OptionsFromConfig() error = %v", err)
	}
	if opts.Mode != ModeResample || opts.Rule.Name() != "trypsin" || opts.Background != BackgroundUniform {
		t.Errorf("unexpected options %+v", opts)
	}
	if opts.SharedRatio != 0.2 || opts.NumShuffles != 1 || opts.MaxAttempts != DefaultMaxAttempts || !opts.InferFrequency {
		t.Errorf("settings not carried over: %+v", opts)
	}
}
