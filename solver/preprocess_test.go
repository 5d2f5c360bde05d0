package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocessPureLiteralElimination(t *testing.T) {
	// variable 2 appears only positively across the whole problem.
	pb := &CnfProblem{NumVariables: 2, Clauses: [][]int{{1, 2}, {-1, 2}}}
	s := New(pb)
	assert.Greater(t, s.Stats.PureLiterals, 0)
	status := s.Solve(context.Background())
	require.Equal(t, Sat, status)
	assert.True(t, s.Model()[1])
}

func TestPreprocessNeverOccurringVariable(t *testing.T) {
	pb := &CnfProblem{NumVariables: 3, Clauses: [][]int{{1, 2}}}
	s := New(pb)
	status := s.Solve(context.Background())
	require.Equal(t, Sat, status)
	assert.Equal(t, Unknown, Tribool(0)) // sanity: Unknown is the zero Tribool
	_ = s.Model()[2]                     // variable 3 must have a concrete value, not panic
}

func TestPreprocessDetectsUnitContradiction(t *testing.T) {
	pb := &CnfProblem{NumVariables: 2, Clauses: [][]int{{1, 2}, {-1}, {1}}}
	s := New(pb)
	assert.Equal(t, Unsat, s.status)
}
