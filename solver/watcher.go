package solver

// The watch index: for each literal, the clauses that must be re-examined
// when that literal's negation becomes true. Simplified to drop
// cardinality/PB support (out of scope per spec.md's Non-goals) and to
// cache a blocker literal per spec.md §4.3.

// watcher pairs a watched clause with a cached "blocker" literal: a second
// literal of the clause that, if currently true, lets propagation skip the
// clause entirely without touching its memory.
type watcher struct {
	clause  *Clause
	blocker Lit
}

// watcherList indexes clauses by the negation of each of their two watched
// literals.
type watcherList struct {
	byLit [][]watcher // byLit[l] holds watchers triggered when l becomes true
}

func newWatcherList(nbVars int) watcherList {
	return watcherList{byLit: make([][]watcher, nbVars*2)}
}

// attach installs watches on c's first two literals, under the negation of
// each, per the classical convention described in spec.md §4.3. Clauses of
// size 1 must never reach here (unit clauses are handled directly by the
// caller and are not part of the watched database).
func (wl *watcherList) attach(c *Clause) {
	if c.Len() < 2 {
		panic("solver: cannot watch a clause with fewer than 2 literals")
	}
	first, second := c.First(), c.Second()
	n0, n1 := first.Negation(), second.Negation()
	wl.byLit[n0] = append(wl.byLit[n0], watcher{clause: c, blocker: second})
	wl.byLit[n1] = append(wl.byLit[n1], watcher{clause: c, blocker: first})
}

// detach removes the watches keyed by the negations of c's first two
// literals. It must be called before c's literals are reused or the clause
// is discarded.
func (wl *watcherList) detach(c *Clause) {
	for i := 0; i < 2; i++ {
		neg := c.Get(i).Negation()
		lst := wl.byLit[neg]
		for j, w := range lst {
			if w.clause == c {
				lst[j] = lst[len(lst)-1]
				wl.byLit[neg] = lst[:len(lst)-1]
				break
			}
		}
	}
}

// watchersOf returns the current watcher list for lit. The slice is only
// valid until the next attach/detach on lit; callers that mutate while
// iterating must follow the in-place compaction pattern used by propagate.
func (wl *watcherList) watchersOf(lit Lit) []watcher {
	return wl.byLit[lit]
}

// setWatchers replaces the watcher list for lit wholesale. Used by
// propagate after it has compacted the list in place.
func (wl *watcherList) setWatchers(lit Lit, ws []watcher) {
	wl.byLit[lit] = ws
}
