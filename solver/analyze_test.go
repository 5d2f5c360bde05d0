package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyzeProducesUnitLearnedClause drives a tiny conflict by hand and
// checks that analyze returns a unit literal to assert at level 0, per
// spec.md §4.5: a learned clause of size 1 must not enter the clause
// database.
func TestAnalyzeProducesUnitLearnedClause(t *testing.T) {
	l1, l2 := IntToVar(1).Lit(), IntToVar(2).Lit()
	s := newTestSolver(t, 2, [][]Lit{
		{l1, l2},
		{l1, l2.Negation()},
	})

	s.trail.markDecision()
	s.enqueue(l1.Negation(), 1, nil) // decide -1 at level 1

	conflict, newHead := s.propagate(s.qHead, 1)
	s.qHead = newHead
	require.NotNil(t, conflict)

	learned, unit, bjLevel := s.analyze(conflict, 1)
	assert.Nil(t, learned)
	assert.Equal(t, l1, unit)
	assert.Equal(t, 0, bjLevel)
}

// TestAnalyzeLearnedClauseIsUnitAfterBackjump exercises universal invariant
// 8 from spec.md §8 against a genuine two-decision-level conflict: after
// cancelling to the returned backjump level, the learned clause must be
// unit (exactly one literal Unknown, every other False).
func TestAnalyzeLearnedClauseIsUnitAfterBackjump(t *testing.T) {
	a, b, c := IntToVar(1).Lit(), IntToVar(2).Lit(), IntToVar(3).Lit()
	s := newTestSolver(t, 3, [][]Lit{
		{a.Negation(), b.Negation(), c},
		{a.Negation(), b.Negation(), c.Negation()},
	})

	s.trail.markDecision()
	s.enqueue(a, 1, nil)
	conflict, newHead := s.propagate(s.qHead, 1)
	s.qHead = newHead
	require.Nil(t, conflict)

	s.trail.markDecision()
	s.enqueue(b, 2, nil)
	conflict, newHead = s.propagate(s.qHead, 2)
	s.qHead = newHead
	require.NotNil(t, conflict)

	learned, unit, bjLevel := s.analyze(conflict, 2)
	require.NotNil(t, learned)
	assert.Equal(t, Lit(-1), unit)
	assert.Equal(t, 1, bjLevel)

	s.cancelUntil(bjLevel)
	s.qHead = s.trail.len()

	unknownCount, falseCount := 0, 0
	for i := 0; i < learned.Len(); i++ {
		switch s.trail.litValue(learned.Get(i)) {
		case Unknown:
			unknownCount++
		case False:
			falseCount++
		}
	}
	assert.Equal(t, 1, unknownCount)
	assert.Equal(t, learned.Len()-1, falseCount)
}
