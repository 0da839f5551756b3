package mimic

import "strings"

// 20 standard amino acids
const StandardResidues = "ACDEFGHIKLMNPQRSTVWY"

var standard [256]bool

func init() {
	for i := 0; i < len(StandardResidues); i++ {
		standard[StandardResidues[i]] = true
	}
}

// IsStandard reports whether b is one of the 20 standard one-letter codes.
// Ambiguous or non-standard codes (B, J, O, U, X, Z, '*') are tolerated in
// input but never counted toward a frequency table.
func IsStandard(b byte) bool {
	return standard[b]
}

// CollapseIL replaces every Isoleucine with Leucine. The two are isobaric and
// indistinguishable by mass spectrometry.
func CollapseIL(seq string) string {
	return strings.ReplaceAll(seq, "I", "L")
}

// distinctResidues counts the different letters in seq.
func distinctResidues(seq string) int {
	var seen [256]bool
	n := 0
	for i := 0; i < len(seq); i++ {
		if !seen[seq[i]] {
			seen[seq[i]] = true
			n++
		}
	}
	return n
}

// composition returns the residue multiset of seq.
func composition(seq string) map[byte]int {
	counts := make(map[byte]int)
	for i := 0; i < len(seq); i++ {
		counts[seq[i]]++
	}
	return counts
}
