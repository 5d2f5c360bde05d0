package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrailAssignAndValue(t *testing.T) {
	tr := newTrail(3)
	lit := IntToVar(1).Lit()
	tr.assign(lit, 0, nil)
	assert.Equal(t, True, tr.value(lit.Var()))
	assert.Equal(t, True, tr.litValue(lit))
	assert.Equal(t, False, tr.litValue(lit.Negation()))
}

func TestTrailAssignPanicsOnDoubleAssignment(t *testing.T) {
	tr := newTrail(2)
	lit := IntToVar(1).Lit()
	tr.assign(lit, 0, nil)
	assert.Panics(t, func() { tr.assign(lit, 0, nil) })
}

func TestTrailDecisionLevelsAndCancel(t *testing.T) {
	tr := newTrail(4)
	tr.assign(IntToVar(1).Lit(), 0, nil)

	tr.markDecision()
	tr.assign(IntToVar(2).Lit(), 1, nil)
	tr.markDecision()
	tr.assign(IntToVar(3).Lit(), 2, nil)

	assert.Equal(t, 2, tr.decisionLevel())
	assert.Equal(t, 3, tr.len())

	tr.cancelUntil(1)
	assert.Equal(t, 1, tr.decisionLevel())
	assert.Equal(t, Unknown, tr.value(IntToVar(3)))
	assert.Equal(t, True, tr.value(IntToVar(2)))
	assert.Equal(t, True, tr.value(IntToVar(1)))
}

func TestTrailCancelUntilNotifyReportsUndoneVars(t *testing.T) {
	tr := newTrail(3)
	tr.assign(IntToVar(1).Lit(), 0, nil)
	tr.markDecision()
	tr.assign(IntToVar(2).Lit(), 1, nil)

	var undone []Var
	tr.cancelUntilNotify(0, func(v Var) { undone = append(undone, v) })
	assert.Equal(t, []Var{IntToVar(2)}, undone)
}

func TestTrailReasonLockingOnAssignAndUndo(t *testing.T) {
	tr := newTrail(2)
	c, _ := NewClause([]Lit{IntToVar(1).Lit(), IntToVar(2).Lit()})
	tr.assign(IntToVar(1).Lit(), 0, nil)
	tr.markDecision()
	tr.assign(IntToVar(2).Lit(), 1, c)
	assert.True(t, c.Locked())
	tr.cancelUntil(0)
	assert.False(t, c.Locked())
}
