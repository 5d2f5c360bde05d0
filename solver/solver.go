package solver

import (
	"context"

	"github.com/sirupsen/logrus"
)

// The search driver: the state machine composing decide/propagate/analyze/
// backjump into a terminating search, per spec.md §4.8, built against the
// explicit trail of trail.go with no pseudo-boolean/optimization/
// enumeration surface (out of scope per spec.md's Non-goals).

// Solver solves a single CnfProblem. It is not safe for concurrent use
// (spec.md §5): a single goroutine must own a Solver for its entire
// lifetime.
type Solver struct {
	// Verbose enables per-restart and per-reduce debug logging from within
	// the solver itself. The entries are logged at Debug level, so they
	// appear only if the caller's logrus configuration also admits Debug.
	Verbose bool
	Stats   Stats

	nbVars int
	status Status

	trail *trail
	wl     watcherList
	order  varOrder

	original []*Clause // problem clauses of size >= 2
	learned  []*Clause // learned clauses currently in the database

	activity  []float64
	varInc    float64
	varDecay  float64
	clauseInc float32

	maxLearned int

	qHead int // trail index of the next literal to propagate

	seenBuf []bool // reusable scratch buffer for conflict analysis

	model []bool // final model, valid once status == Sat

	log *logrus.Entry
}

// New builds a Solver for the given problem. It runs preprocessing
// immediately (spec.md §4.7); the returned solver's Stats and internal
// status already reflect any contradiction found this early.
func New(p *CnfProblem) *Solver {
	log := logrus.WithField("component", "solver")
	clauses, units, status := buildProblem(p)
	s := &Solver{
		nbVars:     p.NumVariables,
		status:     status,
		trail:      newTrail(p.NumVariables),
		wl:         newWatcherList(p.NumVariables),
		original:   clauses,
		activity:   make([]float64, p.NumVariables),
		varInc:     1.0,
		varDecay:   defaultVarDecay,
		clauseInc:  1.0,
		maxLearned: initNbMaxLearned,
		seenBuf:    make([]bool, p.NumVariables),
		log:        log,
	}
	s.order = newVarOrder(s.activity)
	s.Stats.Variables = p.NumVariables
	s.Stats.Clauses = len(clauses) + len(units)
	if s.status == Unsat {
		log.Debug("problem is trivially unsat after construction")
		return s
	}
	for _, lit := range units {
		if s.trail.value(lit.Var()) == Unknown {
			s.enqueue(lit, 0, nil)
		}
	}
	if st := s.preprocess(); st == Unsat {
		s.status = Unsat
		return s
	}
	s.status = Indet
	return s
}

// Solve runs the search to completion, or until ctx is cancelled. On
// cancellation it returns Interrupted without a model, per spec.md §5.
func (s *Solver) Solve(ctx context.Context) Status {
	if s.status == Unsat {
		return s.status
	}
	if s.allAssigned() {
		s.status = Sat
		s.extractModel()
		return s.status
	}
	s.status = Indet
	var restartIdx uint
	budget := restartBudget(restartIdx)
	conflictsAtRestartStart := s.Stats.NbConflicts

	for s.status == Indet {
		select {
		case <-ctx.Done():
			s.status = Interrupted
			return s.status
		default:
		}

		// A new decision is made only once every enqueued literal has been
		// propagated, so a learned clause's asserting literal is propagated
		// at its backjump level first.
		if s.qHead == s.trail.len() {
			lit := s.decide()
			if lit == -1 {
				s.status = Sat
				s.extractModel()
				return s.status
			}
			s.trail.markDecision()
			s.enqueue(lit, s.trail.decisionLevel(), nil)
		}

		conflict, newHead := s.propagate(s.qHead, s.trail.decisionLevel())
		s.qHead = newHead

		if conflict == nil {
			if s.trail.decisionLevel() == 0 {
				if st := s.simplifyTopLevel(); st == Unsat {
					s.status = Unsat
					return s.status
				}
			}
			if s.allAssigned() {
				s.status = Sat
				s.extractModel()
				return s.status
			}
			if s.Stats.NbConflicts-conflictsAtRestartStart >= budget {
				s.restart()
				restartIdx++
				budget = restartBudget(restartIdx)
				conflictsAtRestartStart = s.Stats.NbConflicts
				if s.Verbose {
					s.log.WithFields(logrus.Fields{
						"restart":     s.Stats.NbRestarts,
						"nextBudget":  budget,
						"nbConflicts": s.Stats.NbConflicts,
					}).Debug("restarted search")
				}
			}
			continue
		}

		s.Stats.NbConflicts++
		if s.trail.decisionLevel() == 0 {
			s.status = Unsat
			return s.status
		}

		learned, unit, bjLevel := s.analyze(conflict, s.trail.decisionLevel())
		if learned == nil {
			s.cancelUntil(0)
			s.qHead = s.trail.len()
			if s.trail.value(unit.Var()) != Unknown {
				s.status = Unsat
				return s.status
			}
			s.enqueue(unit, 0, nil)
			if st := s.simplifyTopLevel(); st == Unsat {
				s.status = Unsat
				return s.status
			}
			continue
		}

		s.cancelUntil(bjLevel)
		s.qHead = s.trail.len()
		s.addLearnedClause(learned)
		if learned.Len() >= 2 {
			s.wl.attach(learned)
		}
		asserting := learned.First()
		s.enqueue(asserting, bjLevel, learned)
		s.Stats.NbLearned++

		if len(s.learned) > s.maxLearned {
			before := len(s.learned)
			s.reduce()
			if s.Verbose {
				s.log.WithFields(logrus.Fields{
					"before":  before,
					"after":   len(s.learned),
					"maxNext": s.maxLearned,
				}).Debug("reduced learned clause database")
			}
		}
	}
	return s.status
}

// addLearnedClause appends a learned clause to the database, bumping its
// activity so it starts above the current floor (spec.md §4.6).
func (s *Solver) addLearnedClause(c *Clause) {
	s.learned = append(s.learned, c)
	s.bumpClauseActivity(c)
}

// restart cancels every decision back to level 0 and resumes search,
// keeping all learned clauses, per spec.md §4.6 ("Restarting ... is
// optional; if implemented, a conflict budget between restarts is
// tracked").
func (s *Solver) restart() {
	s.cancelUntil(0)
	s.qHead = s.trail.len()
	s.Stats.NbRestarts++
}

// cancelUntil backtracks the trail to level, reinserting every variable it
// frees into the branching heap so decide() can choose it again (removeMin
// permanently pops a variable from the heap once it is chosen).
func (s *Solver) cancelUntil(level int) {
	s.trail.cancelUntilNotify(level, func(v Var) {
		s.order.insertIfAbsent(int(v))
	})
}

// decide picks the next branching literal using the activity heuristic
// described in spec.md §4.6: highest activity, ties broken by smallest
// index (the heap's construction), always the positive phase. Returns -1
// if every variable is already assigned.
func (s *Solver) decide() Lit {
	for !s.order.empty() {
		v := Var(s.order.removeMin())
		if s.trail.value(v) == Unknown {
			s.Stats.NbDecisions++
			return v.Lit()
		}
	}
	return -1
}

func (s *Solver) allAssigned() bool {
	return s.trail.len() == s.nbVars
}

// extractModel fills s.model from the trail's final bindings. Any
// variable still Unknown is defaulted to true, per spec.md §4.8's model
// non-determinism note (this should not occur given the loop's own
// all-assigned check, but is handled defensively since it is cheap).
func (s *Solver) extractModel() {
	s.model = make([]bool, s.nbVars)
	for v := 0; v < s.nbVars; v++ {
		switch s.trail.value(Var(v)) {
		case True:
			s.model[v] = true
		case False:
			s.model[v] = false
		default:
			s.model[v] = true
		}
	}
}

// Model returns the satisfying assignment found by Solve, 0-indexed by
// variable. It panics if the solver's status is not Sat (spec.md §6: a
// model only exists on Sat).
func (s *Solver) Model() []bool {
	if s.status != Sat {
		panic("solver: Model() called on a non-Sat solver")
	}
	res := make([]bool, s.nbVars)
	copy(res, s.model)
	return res
}

// Status returns the solver's current status.
func (s *Solver) Status() Status {
	return s.status
}
