package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarOrderRemovesHighestActivityFirst(t *testing.T) {
	activity := []float64{1, 5, 3, 0}
	q := newVarOrder(activity)
	assert.Equal(t, 1, q.removeMin())
	assert.Equal(t, 2, q.removeMin())
	assert.Equal(t, 0, q.removeMin())
	assert.Equal(t, 3, q.removeMin())
	assert.True(t, q.empty())
}

func TestVarOrderDecreaseReordersAfterBump(t *testing.T) {
	activity := []float64{1, 1, 1}
	q := newVarOrder(activity)
	activity[2] = 100
	q.decrease(2)
	assert.Equal(t, 2, q.removeMin())
}

func TestVarOrderInsertIfAbsent(t *testing.T) {
	activity := []float64{1, 1}
	q := newVarOrder(activity)
	v := q.removeMin()
	assert.False(t, q.contains(v))
	q.insertIfAbsent(v)
	assert.True(t, q.contains(v))
	q.insertIfAbsent(v) // no-op, must not duplicate
	assert.Equal(t, 2, len(q.content))
}
