package pageloop

// BFS resets every vertex's dist to -1, then performs a breadth-first
// traversal from source over active vertices only, truncated so that
// no vertex is enqueued with dist > horizon-1. A cycle of length <= K
// through S cannot visit a vertex farther than K-1 from S on either
// leg, so callers pass horizon=K.
//
// BFS is a no-op on distances if source is inactive; the caller is
// responsible for validating source before calling.
func BFS(g *Graph, source, horizon int) {
	for v := 0; v < g.N(); v++ {
		g.SetDist(v, -1)
	}
	if !g.Active(source) {
		return
	}
	g.SetDist(source, 0)

	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		d := g.Dist(u)
		if d >= horizon-1 {
			continue
		}
		for _, v := range g.Neighbors(u) {
			if !g.Active(v) {
				continue
			}
			if g.Dist(v) != -1 {
				continue
			}
			g.SetDist(v, d+1)
			queue = append(queue, v)
		}
	}
}

// ReverseActive builds the reverse graph of g restricted to currently
// active vertices: an edge u->v in g becomes v->u in the result, over
// the same dense id space. Inactive vertices are carried over as
// inactive, empty vertices.
func ReverseActive(g *Graph) *Graph {
	r := NewGraph(g.N())
	for v := 0; v < g.N(); v++ {
		if !g.Active(v) {
			r.Deactivate(v)
		}
	}
	for u := 0; u < g.N(); u++ {
		if !g.Active(u) {
			continue
		}
		for _, v := range g.Neighbors(u) {
			if !g.Active(v) {
				continue
			}
			_ = r.AddEdge(v, u)
		}
	}
	return r
}
