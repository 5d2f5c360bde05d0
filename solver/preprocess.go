package solver

// C7: one-time preprocessing plus the top-level simplification repeated
// whenever the search returns to decision level 0 (spec.md §4.7), following
// the plain propositional algorithm spec.md §4.7 spells out step by step.

// preprocess runs once, at solver construction, and returns Unsat if it
// derives a top-level contradiction.
func (s *Solver) preprocess() Status {
	s.sortOriginalBySize()
	s.assignNeverOccurring()
	if st := s.propagateTopLevel(); st == Unsat {
		return Unsat
	}
	s.eliminatePureLiterals()
	if st := s.propagateTopLevel(); st == Unsat {
		return Unsat
	}
	s.installWatches()
	// The propagations above ran before any clause was watched; replay the
	// whole level-0 trail now that the watches are in place.
	s.qHead = 0
	if st := s.propagateTopLevel(); st == Unsat {
		return Unsat
	}
	return Indet
}

// sortOriginalBySize sorts problem clauses by size (smaller first) for
// locality, per spec.md §4.7 step 1. Unit clauses were already pulled out
// by the parser/problem builder, so every clause here has length >= 2 (or
// is the canonical empty clause signalling immediate UNSAT).
func (s *Solver) sortOriginalBySize() {
	clauses := s.original
	for i := 1; i < len(clauses); i++ {
		for j := i; j > 0 && clauses[j].Len() < clauses[j-1].Len(); j-- {
			clauses[j], clauses[j-1] = clauses[j-1], clauses[j]
		}
	}
}

// assignNeverOccurring assigns True, at level 0, to every variable that
// appears in no clause at all, per spec.md §4.7 step 2. The choice is
// arbitrary but must be recorded so Model() reports a concrete value.
func (s *Solver) assignNeverOccurring() {
	occurs := make([]bool, s.nbVars)
	for _, c := range s.original {
		for i := 0; i < c.Len(); i++ {
			occurs[c.Get(i).Var()] = true
		}
	}
	for v := 0; v < s.nbVars; v++ {
		if !occurs[v] && s.trail.value(Var(v)) == Unknown {
			s.enqueue(Var(v).Lit(), 0, nil)
		}
	}
}

// propagateTopLevel runs propagation at decision level 0 and reports Unsat
// if a conflict is found; any conflict at level 0 is a genuine
// contradiction, never something to learn from.
func (s *Solver) propagateTopLevel() Status {
	conflict, newHead := s.propagate(s.qHead, 0)
	s.qHead = newHead
	if conflict != nil {
		return Unsat
	}
	return Indet
}

// eliminatePureLiterals assigns, at level 0, every unassigned variable that
// occurs with only one polarity among the not-yet-satisfied clauses the
// value making that polarity true, per spec.md §4.7 step 4.
func (s *Solver) eliminatePureLiterals() {
	posSeen := make([]bool, s.nbVars)
	negSeen := make([]bool, s.nbVars)
	for _, c := range s.original {
		if s.clauseSatisfiedAtTop(c) {
			continue
		}
		for i := 0; i < c.Len(); i++ {
			l := c.Get(i)
			if s.trail.value(l.Var()) != Unknown {
				continue
			}
			if l.IsPositive() {
				posSeen[l.Var()] = true
			} else {
				negSeen[l.Var()] = true
			}
		}
	}
	for v := 0; v < s.nbVars; v++ {
		if s.trail.value(Var(v)) != Unknown {
			continue
		}
		pos, neg := posSeen[v], negSeen[v]
		if pos != neg { // appears with exactly one polarity
			lit := Var(v).SignedLit(neg)
			s.enqueue(lit, 0, nil)
			s.Stats.PureLiterals++
		}
	}
}

func (s *Solver) clauseSatisfiedAtTop(c *Clause) bool {
	for i := 0; i < c.Len(); i++ {
		if s.trail.litValue(c.Get(i)) == True {
			return true
		}
	}
	return false
}

// installWatches attaches two watches to every original clause of size
// >= 2 that is not already satisfied at the top level, per spec.md §4.7
// step 5.
func (s *Solver) installWatches() {
	kept := s.original[:0]
	for _, c := range s.original {
		if s.clauseSatisfiedAtTop(c) {
			s.Stats.ClausesEliminatedBySimp++
			continue
		}
		kept = append(kept, c)
		s.wl.attach(c)
	}
	s.original = kept
}

// simplifyTopLevel re-runs the level-0 cleanup described in spec.md §4.7:
// propagate, drop satisfied clauses, strip false literals from the rest,
// rescan for pure literals, rebuild watches. It repeats until the pass
// makes no further change. Called by the search driver every time the
// trail returns to decision level 0 after a backjump.
func (s *Solver) simplifyTopLevel() Status {
	for {
		if st := s.propagateTopLevel(); st == Unsat {
			return Unsat
		}
		changed, unsat := s.stripSatisfiedAndFalse()
		if unsat {
			return Unsat
		}
		if !changed {
			return Indet
		}
		s.eliminatePureLiterals()
	}
}

// stripSatisfiedAndFalse removes clauses satisfied at level 0, drops false
// literals from the rest, and re-attaches watches for anything that
// changed shape. Reports whether any clause changed and whether a
// contradiction (empty clause) was derived.
func (s *Solver) stripSatisfiedAndFalse() (changed, unsat bool) {
	kept := s.original[:0]
	for _, c := range s.original {
		if s.clauseSatisfiedAtTop(c) {
			s.wl.detach(c)
			changed = true
			s.Stats.ClausesEliminatedBySimp++
			continue
		}
		hasFalse := false
		for i := 0; i < c.Len(); i++ {
			if s.trail.litValue(c.Get(i)) == False {
				hasFalse = true
				break
			}
		}
		if hasFalse {
			// Detach using the literals watches were installed under,
			// before compacting mutates slots 0 and 1 in place.
			s.wl.detach(c)
			newLen := 0
			for i := 0; i < c.Len(); i++ {
				l := c.Get(i)
				if s.trail.litValue(l) == False {
					continue
				}
				c.Set(newLen, l)
				newLen++
			}
			c.Shrink(newLen)
			changed = true
			switch newLen {
			case 0:
				kept = append(kept, c)
				s.original = kept
				return changed, true
			case 1:
				if s.trail.value(c.Get(0).Var()) == Unknown {
					s.enqueue(c.Get(0), 0, nil)
				}
				s.Stats.ClausesEliminatedBySimp++
				continue // unit clause leaves the watched database
			default:
				s.wl.attach(c)
			}
		}
		kept = append(kept, c)
	}
	s.original = kept
	return changed, false
}
