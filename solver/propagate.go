package solver

// The unit-propagation engine: two-watched-literals BCP to a fixpoint or a
// conflict. Uses the explicit trail/varInfo layout from trail.go and
// follows the blocker-literal algorithm spelled out in spec.md §4.4.

// propagate drains the propagation queue starting at trail index qHead,
// enqueuing every implied literal at level lvl, until the queue empties
// (no conflict) or a clause is found false under the current assignment
// (conflict). It returns the conflicting clause, or nil, and the trail
// index just past the last literal it examined.
//
// Callers are expected to pass the trail index of the first not-yet-
// propagated literal; the solver's search driver tracks this as qHead
// across calls so that literals enqueued by earlier propagate calls at the
// same level are not re-scanned.
func (s *Solver) propagate(qHead int, lvl int) (conflict *Clause, newQHead int) {
	for qHead < s.trail.len() {
		lit := s.trail.at(qHead)
		qHead++
		s.Stats.Propagations++
		// A clause watching literal w stores its watcher entry at index
		// w.Negation(); lit becoming true falsifies lit.Negation(), whose
		// watchers therefore live at index lit.
		ws := s.wl.watchersOf(lit)
		keep := ws[:0]
		for i := 0; i < len(ws); i++ {
			w := ws[i]
			if s.trail.litValue(w.blocker) == True {
				keep = append(keep, w)
				continue
			}
			c := w.clause
			// Ensure the falsified watch (the one whose negation is lit) is in slot 1.
			if c.First() == lit.Negation() {
				c.Swap(0, 1)
			}
			first := c.First()
			if first != w.blocker && s.trail.litValue(first) == True {
				keep = append(keep, watcher{clause: c, blocker: first})
				continue
			}
			found := false
			for k := 2; k < c.Len(); k++ {
				lk := c.Get(k)
				if s.trail.litValue(lk) != False {
					c.Swap(1, k)
					other := c.Get(1).Negation()
					s.wl.byLit[other] = append(s.wl.byLit[other], watcher{clause: c, blocker: first})
					found = true
					break
				}
			}
			if found {
				continue
			}
			// Clause is unit on slot 0, or a conflict.
			keep = append(keep, watcher{clause: c, blocker: first})
			if s.trail.litValue(first) == False {
				s.wl.setWatchers(lit, append(keep, ws[i+1:]...))
				return c, qHead
			}
			s.enqueue(first, lvl, c)
		}
		s.wl.setWatchers(lit, keep)
	}
	return nil, qHead
}

// enqueue assigns lit at level, recording reason as the clause that forced
// it, and appends it to the trail so propagate will pick it up on a later
// iteration of its own loop.
func (s *Solver) enqueue(lit Lit, level int, reason *Clause) {
	s.trail.assign(lit, level, reason)
}
