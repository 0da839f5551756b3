package mimic

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"time"
)

var (
	// ErrEmptyResult means the run finished without producing a single record,
	// usually because min_len excludes every input sequence.
	ErrEmptyResult = errors.New("no output records produced")

	// ErrInvalidOptions is returned for options the engine cannot run with.
	ErrInvalidOptions = errors.New("invalid options")
)

// Options configures one run.
type Options struct {
	MinLen            int
	NumShuffles       int
	ReplaceI          bool
	Seed              uint64 // 0 seeds from the clock
	ProteinNamePrefix string
	SharedRatio       float64
	PrependOriginal   bool
	InferFrequency    bool
	Mode              Mode
	Rule              CleavageRule
	MaxAttempts       int
	Background        Background
	Logger            *log.Logger
}

// DefaultOptions mirrors the command line defaults.
func DefaultOptions() Options {
	return Options{
		NumShuffles:       1,
		ProteinNamePrefix: "mimic|Random",
		InferFrequency:    true,
		Mode:              ModeShuffle,
		Rule:              WholeRecord{},
		MaxAttempts:       DefaultMaxAttempts,
		Background:        BackgroundSwissProt,
	}
}

// OutputRecord is one FASTA record ready to be written.
type OutputRecord struct {
	Header string
	Seq    string
}

// Coordinator owns everything that lives for a run: the random source, the
// ledger of written sequences and the naming counter. Build a new one per run.
type Coordinator struct {
	opts    Options
	seed    uint64
	src     *rand.PCG
	ledger  *Ledger
	counter int
	table   FrequencyTable
	gen     *Generator
	log     *log.Logger
}

// NewCoordinator validates opts and seeds the run's random source.
func NewCoordinator(opts Options) (*Coordinator, error) {
	switch {
	case opts.MinLen < 0:
		return nil, fmt.Errorf("%w: min_len must be >= 0", ErrInvalidOptions)
	case opts.NumShuffles < 0:
		return nil, fmt.Errorf("%w: num_shuffles must be >= 0", ErrInvalidOptions)
	case opts.SharedRatio < 0 || opts.SharedRatio > 1:
		return nil, fmt.Errorf("%w: shared_peptide_ratio must be between 0.0 and 1.0", ErrInvalidOptions)
	}
	if opts.Rule == nil {
		opts.Rule = WholeRecord{}
	}
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Coordinator{
		opts:   opts,
		seed:   seed,
		src:    rand.NewPCG(seed, seed^0x9E3779B97F4A7C15),
		ledger: NewLedger(),
		log:    logger,
	}, nil
}

// Seed is the seed actually used, which differs from Options.Seed when that was 0.
func (c *Coordinator) Seed() uint64 { return c.seed }

// Table is the frequency table of the last Run.
func (c *Coordinator) Table() FrequencyTable { return c.table }

// Ledger exposes the run's written-sequence set.
func (c *Coordinator) Ledger() *Ledger { return c.ledger }

// Stats returns the generator counters of the last Run.
func (c *Coordinator) Stats() Stats {
	if c.gen == nil {
		return Stats{}
	}
	return c.gen.Stats()
}

// Candidates extracts every peptide candidate from proteins in input order,
// collapsing I to L first when ReplaceI is set.
func (c *Coordinator) Candidates(proteins []Protein) []Peptide {
	var cands []Peptide
	for _, p := range proteins {
		if c.opts.ReplaceI {
			p.Seq = CollapseIL(p.Seq)
		}
		for pep := range Extract(p, c.opts.MinLen, c.opts.Rule) {
			cands = append(cands, pep)
		}
	}
	return cands
}

// Run mimics every candidate of proteins and returns the records in output
// order: per candidate, the optional original followed by its mimics.
// ErrEmptyResult is returned when nothing would be written.
func (c *Coordinator) Run(proteins []Protein) ([]OutputRecord, error) {
	c.log.Printf("seed %d, mode %s", c.seed, c.opts.Mode)
	cands := c.Candidates(proteins)
	c.log.Printf("%d candidate peptides from %d records (min_len=%d, cleavage=%s)",
		len(cands), len(proteins), c.opts.MinLen, c.opts.Rule.Name())

	c.table = BuildFrequencyTable(cands, c.opts.InferFrequency, c.opts.Background, c.opts.ReplaceI)
	source := c.opts.Background.String()
	if c.table.Inferred() {
		source = "input"
	}
	c.log.Printf("frequency table from %s, entropy %.3f nats", source, c.table.Entropy())

	c.gen = NewGenerator(c.opts.Mode, c.table, c.src, c.opts.SharedRatio, c.opts.MaxAttempts)

	records := make([]OutputRecord, 0, len(cands)*(c.opts.NumShuffles+1))
	for _, pep := range cands {
		c.counter++
		c.gen.stats.Candidates++
		if c.opts.PrependOriginal {
			c.ledger.Record(pep.Seq, false)
			records = append(records, OutputRecord{Header: pep.Header(), Seq: pep.Seq})
		}
		for _, g := range c.gen.Generate(pep, c.opts.NumShuffles, c.ledger) {
			records = append(records, OutputRecord{
				Header: fmt.Sprintf("%s_%d|shuffle_%d", c.opts.ProteinNamePrefix, c.counter, g.Shuffle),
				Seq:    g.Seq,
			})
		}
	}

	st := c.gen.Stats()
	c.log.Printf("generated %d mimics, %d shared (ratio %.4f), %d redraws, %d exhausted, %d forced",
		st.Generated, st.Shared, c.ledger.SharedRatio(), st.Redraws, st.Exhausted, st.Forced)

	if len(records) == 0 {
		return nil, ErrEmptyResult
	}
	return records, nil
}
