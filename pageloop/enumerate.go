package pageloop

// Enumerator runs the depth-limited Johnson variant over a compacted
// graph, emitting every simple cycle through s of at most k edges.
type Enumerator struct {
	g    *Graph
	s    int
	k    int
	path []int
	out  [][]int
}

// NewEnumerator prepares state for one call to Enumerate. blocked and
// witness state live on the graph itself and are reset here so the
// same compacted graph could in principle be reused.
func NewEnumerator(g *Graph, s, k int) *Enumerator {
	for v := 0; v < g.N(); v++ {
		g.SetBlocked(v, false)
		g.Witness(v).elems = nil
		g.Witness(v).has = make(map[int]bool)
	}
	return &Enumerator{g: g, s: s, k: k}
}

// Enumerate runs circuit(s) and returns every emitted cycle, as
// sequences of new-space vertex ids starting at s, in the order the
// depth-limited Johnson variant discovers them.
func (e *Enumerator) Enumerate() [][]int {
	if !e.g.Active(e.s) {
		return nil
	}
	e.circuit(e.s)
	return e.out
}

// circuit implements §4.5's contract bit-for-bit: path.length < K on
// entry, push v, visit neighbors in adjacency order, recurse or emit,
// then either unblock v (a cycle was found through it) or install v as
// a witness on every live neighbor so a later unblock cascade revisits
// it.
func (e *Enumerator) circuit(v int) bool {
	e.path = append(e.path, v)
	e.g.SetBlocked(v, true)

	found := false
	for _, w := range e.g.Neighbors(v) {
		if w == e.s {
			if len(e.path) <= e.k {
				e.emit()
				found = true
			}
			continue
		}
		if !e.g.Blocked(w) && len(e.path) < e.k {
			if e.circuit(w) {
				found = true
			}
		}
	}

	if found {
		e.unblock(v)
	} else {
		for _, w := range e.g.Neighbors(v) {
			e.g.Witness(w).add(v)
		}
	}

	e.path = e.path[:len(e.path)-1]
	return found
}

// unblock clears v's blocked flag, then drains its witness list
// front-to-back, cascading into any witness that is itself still
// blocked.
func (e *Enumerator) unblock(v int) {
	e.g.SetBlocked(v, false)
	witnesses := e.g.Witness(v)
	for !witnesses.empty() {
		w := witnesses.popFront()
		if e.g.Blocked(w) {
			e.unblock(w)
		}
	}
}

func (e *Enumerator) emit() {
	cycle := make([]int, len(e.path))
	copy(cycle, e.path)
	e.out = append(e.out, cycle)
}
