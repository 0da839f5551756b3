package mimic

// Ledger is the run-scoped set of every sequence written so far, with the
// shared-peptide accounting and sequence numbering that go with it.
// A Ledger belongs to one Coordinator and is not safe for concurrent use.
type Ledger struct {
	seen      map[string]int
	generated int
	shared    int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{seen: make(map[string]int)}
}

// Contains reports whether seq has already been written.
func (l *Ledger) Contains(seq string) bool {
	_, ok := l.seen[seq]
	return ok
}

// Len is the number of distinct sequences written.
func (l *Ledger) Len() int { return len(l.seen) }

// Generated is the number of generated peptides recorded.
func (l *Ledger) Generated() int { return l.generated }

// Shared is the number of generated peptides that repeated an earlier sequence.
func (l *Ledger) Shared() int { return l.shared }

// SharedRatio is Shared / Generated, 0 before anything was generated.
func (l *Ledger) SharedRatio() float64 {
	if l.generated == 0 {
		return 0
	}
	return float64(l.shared) / float64(l.generated)
}

// AllowsShared reports whether one more shared peptide keeps the ratio at or
// below limit. With limit 0 it is always false.
func (l *Ledger) AllowsShared(limit float64) bool {
	return float64(l.shared+1)/float64(l.generated+1) <= limit
}

// Record adds seq. A generated peptide counts toward the shared ratio and
// receives the next run-local sequence number. An original written next to
// its mimics only joins the set and gets 0. A generated peptide is shared
// when its sequence was already present, original or not.
func (l *Ledger) Record(seq string, generated bool) (number int, shared bool) {
	_, shared = l.seen[seq]
	l.seen[seq]++
	if !generated {
		return 0, shared
	}
	l.generated++
	if shared {
		l.shared++
	}
	return l.generated, shared
}
