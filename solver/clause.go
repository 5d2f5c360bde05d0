package solver

import "fmt"

// A Clause is an ordered list of literals, plus bookkeeping used by the
// learned-clause database: an activity score, and learned/locked/garbage
// flags packed into a single word to keep clauses small.
type Clause struct {
	lits     []Lit
	flags    clauseFlags
	activity float32
}

type clauseFlags uint8

const (
	flagLearned clauseFlags = 1 << iota
	flagLocked
	flagGarbage
)

// NewClause builds a clause from a raw literal list. Duplicate literals
// are merged and a clause containing both a literal and its negation is
// reported as a tautology via the second return value; tautologies must be
// discarded by the caller rather than inserted into any clause database.
func NewClause(lits []Lit) (c *Clause, tautology bool) {
	lits = canonicalize(lits)
	for i := 1; i < len(lits); i++ {
		if lits[i].Var() == lits[i-1].Var() {
			// canonicalize sorts by (Var, polarity); equal vars adjacent
			// with different polarity is a tautology.
			return nil, true
		}
	}
	return &Clause{lits: lits}, false
}

// NewLearnedClause returns a new clause flagged as learned. The caller is
// responsible for having already deduplicated lits (learned clauses are
// built from a `seen` bitset during conflict analysis and cannot contain
// duplicates or tautologies by construction).
func NewLearnedClause(lits []Lit) *Clause {
	return &Clause{lits: lits, flags: flagLearned}
}

// canonicalize sorts lits by variable index (ties broken by polarity) and
// removes exact duplicates, to give clauses built by NewClause a stable,
// hashable ordering.
func canonicalize(lits []Lit) []Lit {
	sortLits(lits)
	out := lits[:0]
	for i, l := range lits {
		if i == 0 || l != lits[i-1] {
			out = append(out, l)
		}
	}
	return out
}

func sortLits(lits []Lit) {
	// insertion sort: clauses are short in practice, and this avoids
	// pulling in sort.Slice's reflection overhead for a hot path.
	for i := 1; i < len(lits); i++ {
		for j := i; j > 0 && lits[j] < lits[j-1]; j-- {
			lits[j], lits[j-1] = lits[j-1], lits[j]
		}
	}
}

// Learned returns true iff c was derived during conflict analysis, as
// opposed to being part of the original problem.
func (c *Clause) Learned() bool {
	return c.flags&flagLearned != 0
}

// Lock marks c as the reason for a current assignment: reduce must not
// delete it while it is locked.
func (c *Clause) Lock() {
	c.flags |= flagLocked
}

// Unlock clears the lock flag set by Lock.
func (c *Clause) Unlock() {
	c.flags &^= flagLocked
}

// Locked reports whether c is currently serving as a reason clause.
func (c *Clause) Locked() bool {
	return c.flags&flagLocked != 0
}

// MarkGarbage flags c for deferred deletion by reduce.
func (c *Clause) MarkGarbage() {
	c.flags |= flagGarbage
}

// Garbage reports whether c was marked for deletion.
func (c *Clause) Garbage() bool {
	return c.flags&flagGarbage != 0
}

// Len returns the number of literals in c.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Get returns the ith literal of c.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// Set sets the ith literal of c. Used by top-level simplification to
// compact a clause's remaining literals in place before Shrink.
func (c *Clause) Set(i int, l Lit) {
	c.lits[i] = l
}

// Swap exchanges the ith and jth literals of c.
func (c *Clause) Swap(i, j int) {
	c.lits[i], c.lits[j] = c.lits[j], c.lits[i]
}

// Shrink reduces c's literal count in place, keeping the first newLen
// literals. Used by preprocessing to drop level-0-false literals without
// reallocating the backing array.
func (c *Clause) Shrink(newLen int) {
	c.lits = c.lits[:newLen]
}

// First returns the literal watched in slot 0.
func (c *Clause) First() Lit { return c.lits[0] }

// Second returns the literal watched in slot 1.
func (c *Clause) Second() Lit { return c.lits[1] }

// Lits returns the clause's literals. The returned slice must not be
// retained past the next mutation of c.
func (c *Clause) Lits() []Lit {
	return c.lits
}

// BumpActivity adds inc to the clause's activity. Has no effect on
// non-learned clauses, which are never subject to reduction.
func (c *Clause) BumpActivity(inc float32) {
	if c.Learned() {
		c.activity += inc
	}
}

// Activity returns the clause's current activity score.
func (c *Clause) Activity() float32 {
	return c.activity
}

// RescaleActivity multiplies the clause's activity by factor. Used to avoid
// float overflow after repeated bumps across a long search.
func (c *Clause) RescaleActivity(factor float32) {
	c.activity *= factor
}

// CNF returns a DIMACS representation of the clause, terminated by " 0".
func (c *Clause) CNF() string {
	res := ""
	for _, lit := range c.lits {
		res += fmt.Sprintf("%d ", lit.Int())
	}
	return res + "0"
}

func (c *Clause) String() string {
	return fmt.Sprintf("[%s]", c.CNF())
}
