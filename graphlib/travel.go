/*
	Copyright (C) 2023 flxj(https://github.com/flxj)

	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at

		http://www.apache.org/licenses/LICENSE-2.0

	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package graphlib

// Tarjan's algorithm for strongly connected components.
//
// dfn[v]: the timestamp at which v is first visited by the DFS.
// low[v]: the smallest timestamp reachable from v's DFS subtree,
// including back edges to an ancestor still on the stack. A vertex is
// the root of its own component exactly when dfn[v] == low[v].
func tarjan[K comparable, V any, W number](g Digraph[K, V, W], u K, stack *stack[K], num *int, dfn, low map[K]int, scc map[K][]K) error {
	*num++
	dfn[u] = *num
	low[u] = *num
	stack.push(u)

	es, err := g.OutEdges(u)
	if err != nil {
		return err
	}
	for _, e := range es {
		v := e.Tail
		if dfn[v] == 0 {
			if err = tarjan(g, v, stack, num, dfn, low, scc); err != nil {
				return err
			}
			if low[v] < low[u] {
				low[u] = low[v]
			}
		} else if stack.contains(v) {
			if dfn[v] < low[u] {
				low[u] = dfn[v]
			}
		}
	}

	if dfn[u] == low[u] {
		for {
			v, ok := stack.pop()
			if !ok {
				break
			}
			scc[u] = append(scc[u], v)
			if u == v {
				break
			}
		}
	}
	return nil
}

func sccTarjan[K comparable, V any, W number](g Digraph[K, V, W]) ([][]K, error) {
	vertexes, err := g.AllVertexes()
	if err != nil {
		return nil, err
	}
	if len(vertexes) == 0 {
		return [][]K{}, nil
	}

	stack := newStack[K]()
	num := 0
	dfn := make(map[K]int)
	low := make(map[K]int)
	scc := make(map[K][]K)

	for _, v := range vertexes {
		if dfn[v.Key] == 0 {
			if err = tarjan(g, v.Key, stack, &num, dfn, low, scc); err != nil {
				return nil, err
			}
		}
	}

	var sccs [][]K
	for _, vs := range scc {
		sccs = append(sccs, vs)
	}
	return sccs, nil
}

// StronglyConnectedComponent returns the vertex set of each strongly
// connected component of g.
func StronglyConnectedComponent[K comparable, V any, W number](g Digraph[K, V, W]) ([][]K, error) {
	return sccTarjan(g)
}
