package overview

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

const proteins = `>sp|P1|ONE first
MKWV
>sp|P2|TWO
ACDEFGHIKL
>sp|P1|ONE duplicate id
XXBK
>empty
`

func TestCheck(t *testing.T) {
	rep, err := Check(strings.NewReader(proteins), "proteins.fasta")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"headers", rep.HeaderCount, 4},
		{"sequences", rep.TotalSequences, 3},
		{"duplicates", rep.DuplicateHeaders, 1},
		{"missing sequence", rep.MissingSequence, 1},
		{"min length", rep.MinLength, 4},
		{"max length", rep.MaxLength, 10},
		{"standard residues", rep.TotalResidues, 4 + 10 + 1},
		{"ambiguous X", rep.AmbiguousResidues['X'], 2},
		{"ambiguous B", rep.AmbiguousResidues['B'], 1},
		{"K count", rep.AminoAcidCounts['K'], 3},
		{"positive charges", rep.ChargedPositive, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
			}
		})
	}

	if rep.MedianLength != 4 {
		t.Errorf("MedianLength = %v, want 4", rep.MedianLength)
	}
	if math.Abs(rep.MeanLength-6) > 1e-9 {
		t.Errorf("MeanLength = %v, want 6", rep.MeanLength)
	}
	if rep.StdDevLength <= 0 {
		t.Errorf("StdDevLength = %v, want > 0", rep.StdDevLength)
	}
}

func TestCheckEmpty(t *testing.T) {
	rep, err := Check(strings.NewReader(""), "empty.fasta")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if rep.TotalSequences != 0 || rep.MeanLength != 0 {
		t.Fatalf("unexpected report for empty input: %+v", rep)
	}
}

func TestPrintReport(t *testing.T) {
	rep, _ := Check(strings.NewReader(proteins), "proteins.fasta")
	var buf bytes.Buffer
	PrintReport(&buf, rep)

	out := buf.String()
	for _, want := range []string{
		"Protein FASTA Format Report: proteins.fasta",
		"Duplicate headers found: 1",
		"Headers with no sequence (skipped): 1",
		"Ambiguous amino acid codes detected",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(rep.Summary(), "3 sequences (1 skipped)") {
		t.Errorf("Summary() = %q", rep.Summary())
	}
}
