package mimic

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// Mode selects how a mimic is drawn from its source peptide.
type Mode int

const (
	// ModeShuffle permutes the peptide's own residues, keeping composition.
	ModeShuffle Mode = iota
	// ModeResample draws every position from the frequency table.
	ModeResample
)

func (m Mode) String() string {
	switch m {
	case ModeResample:
		return "resample"
	default:
		return "shuffle"
	}
}

// ParseMode maps a configuration name to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "shuffle":
		return ModeShuffle, nil
	case "resample":
		return ModeResample, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q (want shuffle or resample)", ErrInvalidOptions, name)
}

// DefaultMaxAttempts bounds the draws spent on one variant.
const DefaultMaxAttempts = 1000

// Generated is one accepted mimic.
type Generated struct {
	Seq     string
	Number  int  // run-local sequence number
	Shuffle int  // 1..count within its source peptide
	Shared  bool // sequence had already been written in this run
}

// Stats counts what the generator did over a run.
type Stats struct {
	Candidates int // peptides mimicked
	Generated  int // mimics written
	Shared     int // mimics repeating an earlier sequence
	Redraws    int // draws rejected as equal to the source or an unwanted repeat
	Exhausted  int // mimics accepted after max attempts
	Forced     int // mimics whose source allows only one possible sequence
}

// Generator draws mimics. It holds no run state of its own besides counters;
// the set of written sequences is passed in by the Coordinator.
type Generator struct {
	mode        Mode
	rng         *rand.Rand
	sampler     distuv.Categorical
	residues    []byte
	support     []byte
	sharedRatio float64
	maxAttempts int
	stats       Stats
}

// NewGenerator returns a generator drawing all randomness from src.
// A maxAttempts below 1 means DefaultMaxAttempts.
func NewGenerator(mode Mode, table FrequencyTable, src rand.Source, sharedRatio float64, maxAttempts int) *Generator {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{
		mode:        mode,
		rng:         rand.New(src),
		sampler:     table.Sampler(src),
		residues:    table.Residues(),
		support:     table.Support(),
		sharedRatio: sharedRatio,
		maxAttempts: maxAttempts,
	}
}

// Stats returns the counters accumulated so far.
func (g *Generator) Stats() Stats { return g.stats }

// Generate draws count mimics of pep and records each in ledger as it is
// accepted, so later variants of the same peptide see earlier ones.
func (g *Generator) Generate(pep Peptide, count int, ledger *Ledger) []Generated {
	if count <= 0 {
		return nil
	}
	out := make([]Generated, 0, count)
	for shuffle := 1; shuffle <= count; shuffle++ {
		seq := g.pick(pep.Seq, ledger)
		number, shared := ledger.Record(seq, true)
		g.stats.Generated++
		if shared {
			g.stats.Shared++
		}
		out = append(out, Generated{Seq: seq, Number: number, Shuffle: shuffle, Shared: shared})
	}
	return out
}

// pick runs the bounded draw loop for one variant. A draw equal to the source
// is rejected; a draw already in the ledger is rejected unless the shared
// budget allows it. When attempts run out the first draw that differed from
// the source is accepted, or failing that the last draw.
func (g *Generator) pick(orig string, ledger *Ledger) string {
	if g.onlyOne(orig) {
		g.stats.Forced++
		return g.draw(orig)
	}

	var best, last string
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		last = g.draw(orig)
		if last == orig {
			g.stats.Redraws++
			continue
		}
		if best == "" {
			best = last
		}
		if ledger.Contains(last) && !ledger.AllowsShared(g.sharedRatio) {
			g.stats.Redraws++
			continue
		}
		return last
	}

	g.stats.Exhausted++
	if best != "" {
		return best
	}
	return last
}

// onlyOne reports whether every draw from orig yields the same sequence.
func (g *Generator) onlyOne(orig string) bool {
	if g.mode == ModeResample {
		return len(g.support) == 1
	}
	return distinctResidues(orig) < 2
}

func (g *Generator) draw(orig string) string {
	buf := []byte(orig)
	switch g.mode {
	case ModeResample:
		for i := range buf {
			buf[i] = g.residues[int(g.sampler.Rand())]
		}
	default:
		g.rng.Shuffle(len(buf), func(i, j int) {
			buf[i], buf[j] = buf[j], buf[i]
		})
	}
	return string(buf)
}
