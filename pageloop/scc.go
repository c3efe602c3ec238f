package pageloop

import (
	"fmt"

	"github.com/flxj/pageloop/graphlib"
)

// FilterSCC destroys every active vertex not in the same strongly
// connected component as s. It is redundant with the two-pass
// reachability pruner for correctness, but tightens the working set
// before enumeration on adversarial inputs; callers treat it as
// optional (see the driver).
//
// The component search itself is Tarjan's algorithm, reused unmodified
// from graphlib.StronglyConnectedComponent over a throwaway Digraph
// view of g's currently active vertex set.
func FilterSCC(g *Graph, s int) error {
	dg, err := graphlib.NewDigraph[int, struct{}, int]("scc-view")
	if err != nil {
		return fmt.Errorf("pageloop: build scc view: %w", err)
	}
	for _, v := range g.ActiveVertices() {
		if err := dg.AddVertex(graphlib.Vertex[int, struct{}]{Key: v}); err != nil {
			return fmt.Errorf("pageloop: build scc view: %w", err)
		}
	}
	for _, u := range g.ActiveVertices() {
		for _, v := range g.Neighbors(u) {
			e := graphlib.Edge[int, int]{Key: u*g.N() + v, Head: u, Tail: v, Weight: 1}
			if err := dg.AddEdge(e); err != nil && !graphlib.IsAlreadyExists(err) {
				return fmt.Errorf("pageloop: build scc view: %w", err)
			}
		}
	}

	sccs, err := graphlib.StronglyConnectedComponent[int, struct{}](dg)
	if err != nil {
		return fmt.Errorf("pageloop: scc: %w", err)
	}

	var sOwn []int
	for _, comp := range sccs {
		for _, v := range comp {
			if v == s {
				sOwn = comp
				break
			}
		}
		if sOwn != nil {
			break
		}
	}
	keep := make(map[int]bool, len(sOwn))
	for _, v := range sOwn {
		keep[v] = true
	}

	Prune(g, func(v int) bool { return keep[v] })
	return nil
}
