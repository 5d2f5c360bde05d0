package solver

import "sort"

// Conflict analysis: a backwards breadth-first walk of the implication
// graph that computes a 1-UIP learned clause and a backjump level, per
// spec.md §4.5, against the explicit trail/varInfo model in this package.
// No post-hoc clause minimization: not required by spec.md, and dropping
// it keeps the procedure a direct reading of §4.5's pseudocode.

// analyze walks the implication graph backwards from the conflicting
// clause confl, found at decision level lvl (lvl >= 1), and returns a
// learned clause together with the level to backjump to. The returned
// clause's first literal is always the asserting (1-UIP) literal; its
// second literal, if any, is a literal of maximum level among the rest,
// so that after cancelUntil(backjumpLevel) the clause is immediately unit
// on slot 0 (spec.md §4.5, post-processing).
//
// If the learned clause would have a single literal, analyze returns a nil
// clause together with that asserting literal as unit; the caller must
// enqueue it at level 0 instead of appending anything to the clause
// database (spec.md §4.5).
func (s *Solver) analyze(confl *Clause, lvl int) (learned *Clause, unit Lit, backjumpLevel int) {
	seen := s.seenBuf
	for i := range seen {
		seen[i] = false
	}

	var lits []Lit
	pending := 0     // number of seen variables at level lvl not yet resolved
	ptr := s.trail.len() - 1

	resolve := func(c *Clause, skipFirst int) {
		s.bumpClauseActivity(c)
		for i := skipFirst; i < c.Len(); i++ {
			l := c.Get(i)
			v := l.Var()
			if seen[v] {
				continue
			}
			seen[v] = true
			s.bumpVarActivity(v)
			vl := s.trail.level(v)
			switch {
			case vl == lvl:
				pending++
			case vl > 0:
				// l is already a clause literal that is false under the
				// current trail (the implying clause is unit/falsified in
				// every literal but its asserted one), so l itself is the
				// form to keep: spec.md §4.5 phrases this as "add L's
				// negation", where L is the trail's true-valued literal for
				// this variable and l == L.Negation() already.
				lits = append(lits, l)
				if vl > backjumpLevel {
					backjumpLevel = vl
				}
			}
			// vl == 0: entailed top-level fact, dropped from the learned clause.
		}
	}

	lits = append(lits, -1) // reserve slot 0 for the asserting literal
	resolve(confl, 0)

	var uip Lit
	for {
		for !seen[s.trail.at(ptr).Var()] {
			ptr--
		}
		lit := s.trail.at(ptr)
		ptr--
		pending--
		if pending == 0 {
			uip = lit.Negation()
			break
		}
		if r := s.trail.reason(lit.Var()); r != nil {
			resolve(r, 1)
		}
	}
	lits[0] = uip

	s.decayVarActivity()
	s.decayClauseActivity()

	if len(lits) == 1 {
		return nil, uip, 0
	}
	sort.Slice(lits[1:], func(i, j int) bool {
		return s.trail.level(lits[1+i].Var()) > s.trail.level(lits[1+j].Var())
	})
	out := make([]Lit, len(lits))
	copy(out, lits)
	learned = NewLearnedClause(out)
	return learned, -1, backjumpLevel
}
