package solver

// A binary heap ordered by variable activity, supporting decrease/increase
// key. Ports MiniSat's mtl/Heap.h; kept as a separate type (varOrder) here
// to make clear it is the branching heuristic's priority queue and
// nothing else.

type varOrder struct {
	activity []float64 // shared with the solver; never copied
	content  []int
	indices  []int // indices[v] is v's position in content, or -1
}

func newVarOrder(activity []float64) varOrder {
	q := varOrder{activity: activity}
	for i := range activity {
		q.insert(i)
	}
	return q
}

func (q *varOrder) less(i, j int) bool {
	return q.activity[i] > q.activity[j] || (q.activity[i] == q.activity[j] && i < j)
}

func left(i int) int   { return i*2 + 1 }
func right(i int) int  { return (i + 1) * 2 }
func parent(i int) int { return (i - 1) >> 1 }

func (q *varOrder) percolateUp(i int) {
	x := q.content[i]
	p := parent(i)
	for i != 0 && q.less(x, q.content[p]) {
		q.content[i] = q.content[p]
		q.indices[q.content[p]] = i
		i = p
		p = parent(p)
	}
	q.content[i] = x
	q.indices[x] = i
}

func (q *varOrder) percolateDown(i int) {
	x := q.content[i]
	for left(i) < len(q.content) {
		child := left(i)
		if right(i) < len(q.content) && q.less(q.content[right(i)], q.content[left(i)]) {
			child = right(i)
		}
		if !q.less(q.content[child], x) {
			break
		}
		q.content[i] = q.content[child]
		q.indices[q.content[i]] = i
		i = child
	}
	q.content[i] = x
	q.indices[x] = i
}

func (q *varOrder) empty() bool { return len(q.content) == 0 }

func (q *varOrder) contains(v int) bool {
	return v < len(q.indices) && q.indices[v] >= 0
}

// decrease notifies the heap that v's activity increased (lower index =
// higher priority, so a bigger activity "decreases" v's position).
func (q *varOrder) decrease(v int) {
	if q.contains(v) {
		q.percolateUp(q.indices[v])
	}
}

// insertIfAbsent reinserts v if it is not currently in the heap. Used when
// backtracking frees a variable that decide() had previously removed via
// removeMin (decide() also pops assigned variables it skips); variables
// still present in the heap are left alone.
func (q *varOrder) insertIfAbsent(v int) {
	if !q.contains(v) {
		q.insert(v)
	}
}

func (q *varOrder) insert(v int) {
	for i := len(q.indices); i <= v; i++ {
		q.indices = append(q.indices, -1)
	}
	q.indices[v] = len(q.content)
	q.content = append(q.content, v)
	q.percolateUp(q.indices[v])
}

// removeMin pops and returns the variable with the highest activity
// (smallest heap index), breaking ties by smallest variable index per
// spec.md §4.6.
func (q *varOrder) removeMin() int {
	x := q.content[0]
	last := len(q.content) - 1
	q.content[0] = q.content[last]
	q.indices[q.content[0]] = 0
	q.indices[x] = -1
	q.content = q.content[:last]
	if len(q.content) > 0 {
		q.percolateDown(0)
	}
	return x
}
