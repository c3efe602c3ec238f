package pageloop

// Prune deactivates every active vertex failing keep, and removes from
// every surviving vertex's adjacency list any edge targeting a
// destroyed vertex. Survivor adjacency order is preserved.
func Prune(g *Graph, keep func(v int) bool) {
	destroy := make([]bool, g.N())
	for _, v := range g.ActiveVertices() {
		if !keep(v) {
			destroy[v] = true
		}
	}
	for _, v := range destroy2list(destroy) {
		g.Deactivate(v)
	}
	for u := 0; u < g.N(); u++ {
		if !g.Active(u) {
			continue
		}
		kept := g.adj[u][:0:0]
		for _, v := range g.adj[u] {
			if !destroy[v] {
				kept = append(kept, v)
			}
		}
		g.adj[u] = kept
	}
}

func destroy2list(destroy []bool) []int {
	vs := make([]int, 0)
	for v, d := range destroy {
		if d {
			vs = append(vs, v)
		}
	}
	return vs
}

// RemapTable is a pair of mutually inverse mappings between an old,
// sparse vertex id space and a new, dense one produced by Compact.
type RemapTable struct {
	Old2New map[int]int
	New2Old []int
}

// Compact assigns dense ids to g's surviving vertices, in ascending
// old-index order, rebuilds adjacency in the new space, and returns
// the resulting graph along with the remap table connecting old and
// new ids.
func Compact(g *Graph) (*Graph, RemapTable) {
	survivors := g.ActiveVertices()
	table := RemapTable{
		Old2New: make(map[int]int, len(survivors)),
		New2Old: make([]int, len(survivors)),
	}
	for newID, oldID := range survivors {
		table.Old2New[oldID] = newID
		table.New2Old[newID] = oldID
	}

	out := NewGraph(len(survivors))
	for newU, oldU := range table.New2Old {
		for _, oldV := range g.Neighbors(oldU) {
			newV, ok := table.Old2New[oldV]
			if !ok {
				continue
			}
			_ = out.AddEdge(newU, newV)
		}
	}
	return out, table
}

// Compose produces the remap table that maps directly between the
// original namespace and the namespace produced by the second of two
// successive prune+compact passes: first was computed against the
// original graph, second against first's output.
func Compose(first, second RemapTable) RemapTable {
	composed := RemapTable{
		Old2New: make(map[int]int, len(second.Old2New)),
		New2Old: make([]int, len(second.New2Old)),
	}
	for oldID, midID := range first.Old2New {
		newID, ok := second.Old2New[midID]
		if !ok {
			continue
		}
		composed.Old2New[oldID] = newID
	}
	for newID, midID := range second.New2Old {
		composed.New2Old[newID] = first.New2Old[midID]
	}
	return composed
}
