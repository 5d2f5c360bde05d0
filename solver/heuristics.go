package solver

import "sort"

// C6: variable and clause activity, learned-clause reduction, and the
// restart policy, using the explicit trail and watcherList types in this
// module and the plain activity-based reduction spec.md §4.6 calls for
// (see DESIGN.md for why LBD-based ordering was left out).

const (
	initNbMaxLearned  = 2000  // initial cap on learned clauses
	incrNbMaxLearned  = 300   // cap growth after every reduce
	clauseDecayFactor = 0.999 // per-conflict clause activity decay
	defaultVarDecay   = 0.8   // per-conflict variable activity decay (base)
	varDecayCap       = 0.95  // ceiling the ramp in SPEC_FULL.md §5 approaches
	varDecayRampEvery = 5000  // conflicts between each ramp step
	varDecayRampStep  = 0.01
)

// bumpVarActivity increases v's activity by the current increment and
// rescales all activities if they risk overflowing a float64.
func (s *Solver) bumpVarActivity(v Var) {
	s.activity[v] += s.varInc
	if s.activity[v] > 1e100 {
		for i := range s.activity {
			s.activity[i] *= 1e-100
		}
		s.varInc *= 1e-100
	}
	s.order.decrease(int(v))
}

// decayVarActivity scales up the increment applied by future bumps, which
// is equivalent to scaling down every existing activity (spec.md §4.6).
// It also applies the variable-decay ramp described in SPEC_FULL.md §5:
// every varDecayRampEvery conflicts, s.varDecay itself is nudged towards
// varDecayCap, making later decay steps progressively milder.
func (s *Solver) decayVarActivity() {
	s.varInc *= 1 / s.varDecay
	if s.Stats.NbConflicts%varDecayRampEvery == 0 && s.varDecay < varDecayCap {
		s.varDecay += varDecayRampStep
	}
}

// bumpClauseActivity increases a learned clause's activity; a no-op for
// original (non-learned) clauses.
func (s *Solver) bumpClauseActivity(c *Clause) {
	if !c.Learned() {
		return
	}
	c.BumpActivity(s.clauseInc)
	if c.Activity() > 1e30 {
		for _, c2 := range s.learned {
			c2.RescaleActivity(1e-30)
		}
		s.clauseInc *= 1e-30
	}
}

// decayClauseActivity scales up the increment applied to future clause bumps.
func (s *Solver) decayClauseActivity() {
	s.clauseInc *= 1 / clauseDecayFactor
}

// reduce deletes the half of the learned clauses with lowest activity,
// excluding any clause currently locked as a live reason (spec.md §4.6).
// Candidates are first flagged garbage, then swept in a second pass, the
// deferred-deletion split spec.md §3 calls for, rather than detaching a
// clause the instant it's picked.
func (s *Solver) reduce() {
	sort.Slice(s.learned, func(i, j int) bool {
		return s.learned[i].Activity() < s.learned[j].Activity()
	})
	target := len(s.learned) / 2
	marked := 0
	for _, c := range s.learned {
		if marked >= target {
			break
		}
		if !c.Locked() {
			c.MarkGarbage()
			marked++
		}
	}
	kept := s.learned[:0]
	for _, c := range s.learned {
		if c.Garbage() {
			s.wl.detach(c)
			s.Stats.ClausesEliminatedByReduce++
			continue
		}
		kept = append(kept, c)
	}
	s.learned = kept
	s.maxLearned += incrNbMaxLearned
}

// restartBudget returns the number of conflicts to allow before the
// (restartIdx+1)-th restart, following the Luby sequence scaled by
// lubyConstant, per SPEC_FULL.md §5.
func restartBudget(restartIdx uint) int {
	return int(luby(restartIdx+1) * lubyConstant)
}
