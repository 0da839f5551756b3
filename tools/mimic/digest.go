package mimic

import (
	"fmt"
	"iter"
	"strings"
)

// Protein is one input FASTA record.
type Protein struct {
	Header string
	Seq    string
}

// Peptide is a length-filtered fragment of a Protein that will be mimicked.
// Source is kept for naming only; Seq is the peptide's own copy.
type Peptide struct {
	Source string
	Index  int  // 1-based fragment number within the source record
	Start  int  // 0-based offset in the source sequence
	Whole  bool // fragment spans the entire record
	Seq    string
}

// Header names the unmodified peptide when it is written next to its mimics.
func (p Peptide) Header() string {
	if p.Whole {
		return p.Source
	}
	return fmt.Sprintf("%s|peptide_%d", p.Source, p.Index)
}

// CleavageRule splits a protein sequence into fragments.
type CleavageRule interface {
	Name() string
	// Sites returns increasing fragment end offsets (exclusive). The end of
	// the sequence is implied and need not be included.
	Sites(seq string) []int
}

// WholeRecord keeps every record as a single candidate.
type WholeRecord struct{}

func (WholeRecord) Name() string       { return "none" }
func (WholeRecord) Sites(string) []int { return nil }

// Trypsin cleaves C-terminal to K or R, except before P.
type Trypsin struct{}

func (Trypsin) Name() string { return "trypsin" }

func (Trypsin) Sites(seq string) []int {
	var sites []int
	for i := 0; i < len(seq)-1; i++ {
		if (seq[i] == 'K' || seq[i] == 'R') && seq[i+1] != 'P' {
			sites = append(sites, i+1)
		}
	}
	return sites
}

var rules = map[string]CleavageRule{
	"none":    WholeRecord{},
	"trypsin": Trypsin{},
}

// RuleByName looks up a cleavage rule by its configuration name.
func RuleByName(name string) (CleavageRule, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return WholeRecord{}, nil
	}
	r, ok := rules[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown cleavage rule %q (want none or trypsin)", ErrInvalidOptions, name)
	}
	return r, nil
}

// Extract lazily yields the candidates of p under rule. Fragments shorter than
// minLen, and empty fragments, are skipped. A nil rule means WholeRecord.
func Extract(p Protein, minLen int, rule CleavageRule) iter.Seq[Peptide] {
	if rule == nil {
		rule = WholeRecord{}
	}
	return func(yield func(Peptide) bool) {
		ends := append(rule.Sites(p.Seq), len(p.Seq))
		start, index := 0, 0
		for _, end := range ends {
			if end <= start || end > len(p.Seq) {
				continue
			}
			index++
			frag := p.Seq[start:end]
			pep := Peptide{
				Source: p.Header,
				Index:  index,
				Start:  start,
				Whole:  start == 0 && end == len(p.Seq),
			}
			start = end
			if len(frag) < minLen {
				continue
			}
			pep.Seq = strings.Clone(frag)
			if !yield(pep) {
				return
			}
		}
	}
}
