// Package pageloop enumerates bounded simple directed cycles through a
// designated source vertex, following the pruning pipeline described in
// the accompanying design notes: two reachability passes, an optional
// SCC filter, and a depth-limited variant of Johnson's algorithm.
package pageloop

import "fmt"

// Graph is a soft-delete adjacency-list store over a dense vertex id
// space [0,N). Vertices carry the scratch fields the pipeline needs
// (dist, blocked, witnesses) so no parallel bookkeeping structure is
// required at any stage.
//
// Adjacency order is the insertion order of each edge's first
// occurrence; later stages rely on this for deterministic output.
type Graph struct {
	active   []bool
	adj      [][]int
	hasEdge  []map[int]bool
	dist     []int
	blocked  []bool
	b        []*orderedSet
}

// NewGraph allocates a graph over n vertices, all active, with empty
// adjacency lists.
func NewGraph(n int) *Graph {
	g := &Graph{
		active:  make([]bool, n),
		adj:     make([][]int, n),
		hasEdge: make([]map[int]bool, n),
		dist:    make([]int, n),
		blocked: make([]bool, n),
		b:       make([]*orderedSet, n),
	}
	for v := 0; v < n; v++ {
		g.active[v] = true
		g.hasEdge[v] = make(map[int]bool)
		g.dist[v] = -1
		g.b[v] = newOrderedSet()
	}
	return g
}

// N returns the size of the vertex id space, including inactive
// vertices.
func (g *Graph) N() int {
	return len(g.active)
}

// AddEdge inserts u->v, idempotently: a repeated (u,v) pair leaves the
// adjacency list unchanged so the first occurrence's position is kept.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.N() || v < 0 || v >= g.N() {
		return fmt.Errorf("pageloop: edge (%d,%d) out of range [0,%d)", u, v, g.N())
	}
	if g.hasEdge[u][v] {
		return nil
	}
	g.hasEdge[u][v] = true
	g.adj[u] = append(g.adj[u], v)
	return nil
}

// Neighbors returns u's outgoing neighbors in insertion order.
func (g *Graph) Neighbors(u int) []int {
	return g.adj[u]
}

// Active reports whether v still participates in the graph.
func (g *Graph) Active(v int) bool {
	return g.active[v]
}

// Deactivate soft-deletes v and clears its adjacency list, per the
// invariant that an inactive vertex carries no outgoing edges.
func (g *Graph) Deactivate(v int) {
	g.active[v] = false
	g.adj[v] = nil
	g.hasEdge[v] = make(map[int]bool)
}

// ActiveVertices returns every active vertex id in ascending order.
func (g *Graph) ActiveVertices() []int {
	vs := make([]int, 0, g.N())
	for v := 0; v < g.N(); v++ {
		if g.active[v] {
			vs = append(vs, v)
		}
	}
	return vs
}

// SetDist/Dist hold the last BFS distance from some source; -1 means
// unreached.
func (g *Graph) SetDist(v, d int) { g.dist[v] = d }
func (g *Graph) Dist(v int) int   { return g.dist[v] }

// Blocked/SetBlocked hold the circuit enumerator's per-vertex state.
func (g *Graph) Blocked(v int) bool          { return g.blocked[v] }
func (g *Graph) SetBlocked(v int, val bool)  { g.blocked[v] = val }

// Witness returns v's witness set B[v], used by the unblock cascade.
func (g *Graph) Witness(v int) *orderedSet { return g.b[v] }

// orderedSet is an insertion-ordered, deduplicated collection of ints
// with O(1) membership, FIFO removal from the front, and append. It
// backs each vertex's witness list B: membership is tested on append,
// but removal order (used by the unblock cascade) is insertion order.
type orderedSet struct {
	elems []int
	has   map[int]bool
}

func newOrderedSet() *orderedSet {
	return &orderedSet{has: make(map[int]bool)}
}

func (s *orderedSet) contains(v int) bool {
	return s.has[v]
}

func (s *orderedSet) add(v int) {
	if s.has[v] {
		return
	}
	s.has[v] = true
	s.elems = append(s.elems, v)
}

func (s *orderedSet) empty() bool {
	return len(s.elems) == 0
}

// popFront removes and returns the oldest element.
func (s *orderedSet) popFront() int {
	v := s.elems[0]
	s.elems = s.elems[1:]
	delete(s.has, v)
	return v
}
