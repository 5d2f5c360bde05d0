package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSolver wires a minimal Solver for exercising propagate/analyze
// directly, bypassing New/preprocess so the original clause set stays
// exactly as given.
func newTestSolver(t *testing.T, nbVars int, clauses [][]Lit) *Solver {
	t.Helper()
	s := &Solver{
		nbVars:   nbVars,
		trail:    newTrail(nbVars),
		wl:       newWatcherList(nbVars),
		activity: make([]float64, nbVars),
		varInc:   1.0,
		varDecay: defaultVarDecay,
		seenBuf:  make([]bool, nbVars),
	}
	s.order = newVarOrder(s.activity)
	for _, lits := range clauses {
		c, tautology := NewClause(lits)
		require.False(t, tautology)
		s.original = append(s.original, c)
		s.wl.attach(c)
	}
	return s
}

func TestPropagateFindsUnitImplication(t *testing.T) {
	s := newTestSolver(t, 2, [][]Lit{
		{IntToVar(1).Lit(), IntToVar(2).Lit()},
	})
	s.enqueue(IntToVar(1).Lit().Negation(), 0, nil) // -1
	conflict, newHead := s.propagate(0, 0)
	assert.Nil(t, conflict)
	assert.Equal(t, 2, newHead)
	assert.Equal(t, True, s.trail.value(IntToVar(2)))
}

func TestPropagateDetectsConflict(t *testing.T) {
	s := newTestSolver(t, 2, [][]Lit{
		{IntToVar(1).Lit(), IntToVar(2).Lit()},
	})
	s.enqueue(IntToVar(1).Lit().Negation(), 0, nil)
	s.enqueue(IntToVar(2).Lit().Negation(), 0, nil)
	conflict, _ := s.propagate(0, 0)
	require.NotNil(t, conflict)
}

func TestPropagateBlockerSkipsSatisfiedClause(t *testing.T) {
	s := newTestSolver(t, 3, [][]Lit{
		{IntToVar(1).Lit(), IntToVar(2).Lit(), IntToVar(3).Lit()},
	})
	// lit2 satisfies the clause; assigning -lit1 afterwards would normally
	// force a rescan of the clause's watched literals, but the cached
	// blocker (lit2, already true) lets propagate skip it entirely.
	s.enqueue(IntToVar(2).Lit(), 0, nil)
	s.enqueue(IntToVar(1).Lit().Negation(), 0, nil)
	conflict, _ := s.propagate(0, 0)
	assert.Nil(t, conflict)
	assert.Equal(t, Unknown, s.trail.value(IntToVar(3)))
}
