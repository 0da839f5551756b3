package overview

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	common "mimic_go/utils"
)

// Report holds protein FASTA statistics.
type Report struct {
	FileName             string
	HeaderCount          int
	TotalSequences       int
	DuplicateHeaders     int
	EmptyHeaders         int
	MissingSequence      int
	SequenceBeforeHeader int
	SequenceIDs          []string
	SequenceLengths      []int
	AminoAcidCounts      map[rune]int
	TotalResidues        int
	AmbiguousResidues    map[rune]int
	InvalidResidues      map[rune]int
	HydrophobicCount     int
	HydrophilicCount     int
	ChargedPositive      int
	ChargedNegative      int
	MinLength            int
	MaxLength            int
	MeanLength           float64
	StdDevLength         float64
	MedianLength         float64
	MeanMolWeight        float64

	headers     map[string]bool
	totalWeight float64
}

// List of valid 1-letter amino acid codes (excluding B, J, O, U, X, Z)
var validAminoAcids = map[rune]bool{
	'A': true, 'C': true, 'D': true, 'E': true, 'F': true,
	'G': true, 'H': true, 'I': true, 'K': true, 'L': true,
	'M': true, 'N': true, 'P': true, 'Q': true, 'R': true,
	'S': true, 'T': true, 'V': true, 'W': true, 'Y': true,
}

var ambiguousSet = map[rune]bool{'X': true, 'B': true, 'Z': true, 'J': true, 'U': true, 'O': true}

var hydrophobic = map[rune]bool{'A': true, 'V': true, 'I': true, 'L': true, 'M': true, 'F': true, 'Y': true, 'W': true}
var hydrophilic = map[rune]bool{'R': true, 'N': true, 'D': true, 'Q': true, 'E': true, 'K': true, 'S': true, 'T': true, 'H': true}
var positiveCharged = map[rune]bool{'R': true, 'H': true, 'K': true}
var negativeCharged = map[rune]bool{'D': true, 'E': true}

// free amino acid average masses, Da
var aaWeights = map[rune]float64{
	'A': 89.09, 'C': 121.16, 'D': 133.10, 'E': 147.13,
	'F': 165.19, 'G': 75.07, 'H': 155.16, 'I': 131.17,
	'K': 146.19, 'L': 131.17, 'M': 149.21, 'N': 132.12,
	'P': 115.13, 'Q': 146.15, 'R': 174.20, 'S': 105.09,
	'T': 119.12, 'V': 117.15, 'W': 204.23, 'Y': 181.19,
}

const waterMass = 18.015

// NewReport starts an empty report for fileName.
func NewReport(fileName string) *Report {
	return &Report{
		FileName:          fileName,
		AminoAcidCounts:   make(map[rune]int),
		AmbiguousResidues: make(map[rune]int),
		InvalidResidues:   make(map[rune]int),
		headers:           make(map[string]bool),
	}
}

// Add folds one record into the report.
func (r *Report) Add(header, seq string) {
	id := header
	if fields := strings.Fields(header); len(fields) > 0 {
		id = fields[0]
	} else {
		r.EmptyHeaders++
		id = fmt.Sprintf("unnamed_%d", len(r.SequenceIDs)+1)
	}
	if r.headers[id] {
		r.DuplicateHeaders++
	}
	r.headers[id] = true

	r.SequenceIDs = append(r.SequenceIDs, id)
	r.SequenceLengths = append(r.SequenceLengths, len(seq))

	var weight float64
	residues := 0
	for _, aa := range seq {
		if !validAminoAcids[aa] {
			r.InvalidResidues[aa]++
			if ambiguousSet[aa] {
				r.AmbiguousResidues[aa]++
			}
			continue
		}
		r.AminoAcidCounts[aa]++
		r.TotalResidues++
		residues++
		weight += aaWeights[aa]

		if hydrophobic[aa] {
			r.HydrophobicCount++
		} else if hydrophilic[aa] {
			r.HydrophilicCount++
		}
		if positiveCharged[aa] {
			r.ChargedPositive++
		}
		if negativeCharged[aa] {
			r.ChargedNegative++
		}
	}
	if residues > 1 {
		weight -= waterMass * float64(residues-1)
	}
	r.totalWeight += weight
}

// Finish records the reader's counts and computes the length statistics.
func (r *Report) Finish(stats common.FastaStats) {
	r.TotalSequences = len(r.SequenceIDs)
	r.MissingSequence = stats.MissingSequence
	r.SequenceBeforeHeader = stats.Orphaned
	r.HeaderCount = stats.Records + stats.MissingSequence

	if r.TotalSequences == 0 {
		return
	}
	lengths := make([]float64, len(r.SequenceLengths))
	r.MinLength, r.MaxLength = r.SequenceLengths[0], r.SequenceLengths[0]
	for i, l := range r.SequenceLengths {
		lengths[i] = float64(l)
		r.MinLength = min(r.MinLength, l)
		r.MaxLength = max(r.MaxLength, l)
	}
	r.MeanLength = stat.Mean(lengths, nil)
	if len(lengths) > 1 {
		r.StdDevLength = stat.StdDev(lengths, nil)
	}
	sort.Float64s(lengths)
	r.MedianLength = stat.Quantile(0.5, stat.Empirical, lengths, nil)
	r.MeanMolWeight = r.totalWeight / float64(r.TotalSequences)
}

// Check parses and analyzes a protein FASTA stream.
func Check(rd io.Reader, fileName string) (*Report, error) {
	report := NewReport(fileName)
	stats, err := common.StreamFastaReader(rd, func(header, seq string) error {
		report.Add(header, seq)
		return nil
	})
	report.Finish(stats)
	return report, err
}

// CheckFile is Check over a path, plain or gzip.
func CheckFile(path string) (*Report, error) {
	rc, err := common.OpenFasta(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Check(rc, path)
}

// Summary is a one-line digest for logs.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d sequences (%d skipped), %d residues, length min/median/max %d/%.0f/%d",
		r.TotalSequences, r.MissingSequence, r.TotalResidues, r.MinLength, r.MedianLength, r.MaxLength)
}

// PrintReport displays protein FASTA results
func PrintReport(w io.Writer, report *Report) {
	fmt.Fprintf(w, "Protein FASTA Format Report: %s\n", report.FileName)
	fmt.Fprintln(w, strings.Repeat("-", 40))

	fmt.Fprintf(w, "Headers found: %d\n", report.HeaderCount)
	fmt.Fprintf(w, "Total sequences: %d\n", report.TotalSequences)

	if report.DuplicateHeaders > 0 {
		fmt.Fprintf(w, "Duplicate headers found: %d\n", report.DuplicateHeaders)
	} else {
		fmt.Fprintln(w, "No duplicate headers found")
	}
	if report.EmptyHeaders > 0 {
		fmt.Fprintf(w, "Empty headers found: %d\n", report.EmptyHeaders)
	} else {
		fmt.Fprintln(w, "All headers contain names")
	}
	if report.MissingSequence > 0 {
		fmt.Fprintf(w, "Headers with no sequence (skipped): %d\n", report.MissingSequence)
	}
	if report.SequenceBeforeHeader > 0 {
		fmt.Fprintf(w, "Sequence lines before first header: %d\n", report.SequenceBeforeHeader)
	}

	if report.TotalSequences > 0 {
		fmt.Fprintf(w, "\nSequence length statistics:\n")
		fmt.Fprintf(w, "  Shortest: %d aa\n", report.MinLength)
		fmt.Fprintf(w, "  Longest:  %d aa\n", report.MaxLength)
		fmt.Fprintf(w, "  Mean:     %.2f aa (sd %.2f)\n", report.MeanLength, report.StdDevLength)
		fmt.Fprintf(w, "  Median:   %.0f aa\n", report.MedianLength)
		fmt.Fprintf(w, "  Mean molecular weight: %.2f Da\n", report.MeanMolWeight)
	}

	if report.TotalResidues > 0 {
		fmt.Fprintln(w, "\nAmino acid composition:")
		keys := make([]rune, 0, len(report.AminoAcidCounts))
		for aa := range report.AminoAcidCounts {
			keys = append(keys, aa)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, aa := range keys {
			count := report.AminoAcidCounts[aa]
			percent := float64(count) / float64(report.TotalResidues) * 100
			fmt.Fprintf(w, "  %c: %6d (%.2f%%)\n", aa, count, percent)
		}

		total := float64(report.TotalResidues)
		fmt.Fprintf(w, "\nResidue class composition:\n")
		fmt.Fprintf(w, "  Hydrophobic: %.2f%%\n", float64(report.HydrophobicCount)/total*100)
		fmt.Fprintf(w, "  Hydrophilic: %.2f%%\n", float64(report.HydrophilicCount)/total*100)
		fmt.Fprintf(w, "\nCharged residues:\n")
		fmt.Fprintf(w, "  Basic - Positive (R, H, K): %d\n", report.ChargedPositive)
		fmt.Fprintf(w, "  Acidic - Negative (D, E):   %d\n", report.ChargedNegative)
	}

	if len(report.AmbiguousResidues) > 0 {
		fmt.Fprintln(w, "\nAmbiguous amino acid codes detected:")
		keys := make([]rune, 0, len(report.AmbiguousResidues))
		for aa := range report.AmbiguousResidues {
			keys = append(keys, aa)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, aa := range keys {
			fmt.Fprintf(w, "  %c: %d time(s)\n", aa, report.AmbiguousResidues[aa])
		}
	} else {
		fmt.Fprintln(w, "\nNo ambiguous amino acid codes detected")
	}
}
