package mimic

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Background selects the fixed reference composition used when the
// frequency table is not inferred from the input.
type Background int

const (
	BackgroundSwissProt Background = iota
	BackgroundUniform
)

func (b Background) String() string {
	switch b {
	case BackgroundUniform:
		return "uniform"
	default:
		return "swissprot"
	}
}

// ParseBackground maps a configuration name to a Background.
func ParseBackground(name string) (Background, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "swissprot":
		return BackgroundSwissProt, nil
	case "uniform":
		return BackgroundUniform, nil
	}
	return 0, fmt.Errorf("%w: unknown background %q (want swissprot or uniform)", ErrInvalidOptions, name)
}

// UniProtKB/Swiss-Prot amino acid composition, percent.
var swissProtComposition = map[byte]float64{
	'A': 8.25, 'R': 5.53, 'N': 4.06, 'D': 5.45, 'C': 1.37,
	'Q': 3.93, 'E': 6.75, 'G': 7.07, 'H': 2.27, 'I': 5.96,
	'L': 9.66, 'K': 5.84, 'M': 2.42, 'F': 3.86, 'P': 4.70,
	'S': 6.56, 'T': 5.34, 'W': 1.08, 'Y': 2.92, 'V': 6.87,
}

// FrequencyTable is a normalized weight per standard residue. Built once per
// run and never modified afterwards.
type FrequencyTable struct {
	residues []byte
	weights  []float64
	inferred bool
}

// ReferenceTable returns the fixed composition for bg. With replaceI the
// weight of I is folded into L.
func ReferenceTable(bg Background, replaceI bool) FrequencyTable {
	w := make([]float64, len(StandardResidues))
	for i := 0; i < len(StandardResidues); i++ {
		switch bg {
		case BackgroundUniform:
			w[i] = 1
		default:
			w[i] = swissProtComposition[StandardResidues[i]]
		}
	}
	return newFrequencyTable(w, replaceI, false)
}

// BuildFrequencyTable returns the reference table for bg unless infer is set,
// in which case standard residues are counted over every candidate. An empty
// corpus falls back to the reference table.
func BuildFrequencyTable(cands []Peptide, infer bool, bg Background, replaceI bool) FrequencyTable {
	if !infer {
		return ReferenceTable(bg, replaceI)
	}

	var counts [256]float64
	for _, c := range cands {
		for i := 0; i < len(c.Seq); i++ {
			counts[c.Seq[i]]++
		}
	}

	w := make([]float64, len(StandardResidues))
	for i := 0; i < len(StandardResidues); i++ {
		w[i] = counts[StandardResidues[i]]
	}
	if floats.Sum(w) == 0 {
		return ReferenceTable(bg, replaceI)
	}
	return newFrequencyTable(w, replaceI, true)
}

func newFrequencyTable(w []float64, replaceI bool, inferred bool) FrequencyTable {
	if replaceI {
		iIdx := strings.IndexByte(StandardResidues, 'I')
		lIdx := strings.IndexByte(StandardResidues, 'L')
		w[lIdx] += w[iIdx]
		w[iIdx] = 0
	}
	floats.Scale(1/floats.Sum(w), w)
	return FrequencyTable{
		residues: []byte(StandardResidues),
		weights:  w,
		inferred: inferred,
	}
}

// Inferred reports whether the table was counted from the input.
func (t FrequencyTable) Inferred() bool { return t.inferred }

// Prob returns the probability of residue r, 0 for anything outside the alphabet.
func (t FrequencyTable) Prob(r byte) float64 {
	for i, res := range t.residues {
		if res == r {
			return t.weights[i]
		}
	}
	return 0
}

// Residues returns a copy of the table's alphabet in table order.
func (t FrequencyTable) Residues() []byte {
	return append([]byte(nil), t.residues...)
}

// Weights returns a copy of the normalized weights in table order.
func (t FrequencyTable) Weights() []float64 {
	return append([]float64(nil), t.weights...)
}

// Support returns the residues that carry a non-zero weight.
func (t FrequencyTable) Support() []byte {
	var out []byte
	for i, w := range t.weights {
		if w > 0 {
			out = append(out, t.residues[i])
		}
	}
	return out
}

// Entropy is the Shannon entropy of the table in nats.
func (t FrequencyTable) Entropy() float64 {
	return stat.Entropy(t.weights)
}

// Sampler returns a categorical distribution over the table drawing from src.
// Rand() yields an index into Residues().
func (t FrequencyTable) Sampler(src rand.Source) distuv.Categorical {
	return distuv.NewCategorical(t.weights, src)
}
