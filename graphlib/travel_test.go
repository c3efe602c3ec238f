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

import (
	"fmt"
	"testing"
)

func buildDigraph(t *testing.T, vs []Vertex[int, struct{}], es []Edge[int, int]) Digraph[int, struct{}, int] {
	g, err := NewDigraph[int, struct{}, int]("test-dg")
	if err != nil {
		t.Fatalf("new digraph error:%v", err)
	}
	for _, v := range vs {
		if err := g.AddVertex(v); err != nil {
			t.Fatalf("add vertex error:%v", err)
		}
	}
	for _, e := range es {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("add edge error:%v", err)
		}
	}
	return g
}

func TestOutEdges(t *testing.T) {
	g := buildDigraph(t,
		[]Vertex[int, struct{}]{{Key: 1}, {Key: 2}, {Key: 3}},
		[]Edge[int, int]{
			{Key: 1, Head: 1, Tail: 2},
			{Key: 2, Head: 1, Tail: 3},
		},
	)

	es, err := g.OutEdges(1)
	if err != nil {
		t.Fatalf("out edges error:%v", err)
	}
	if len(es) != 2 {
		t.Errorf("OutEdges(1) returned %d edges, want 2", len(es))
	}

	es, err = g.OutEdges(2)
	if err != nil {
		t.Fatalf("out edges error:%v", err)
	}
	if len(es) != 0 {
		t.Errorf("OutEdges(2) returned %d edges, want 0", len(es))
	}

	if _, err := g.OutEdges(99); !IsNotExists(err) {
		t.Errorf("OutEdges(99): got err=%v, want not-exists", err)
	}
}

// TestStronglyConnectedComponent builds two cycles (1->2->3->1 and
// 4->5->4) plus an isolated vertex 6, and checks the SCC partition.
//
//	v1---v2
//	|   /
//	|  /
//	v3     v4-----v5    v6
//	       ^______/
func TestStronglyConnectedComponent(t *testing.T) {
	g := buildDigraph(t,
		[]Vertex[int, struct{}]{{Key: 1}, {Key: 2}, {Key: 3}, {Key: 4}, {Key: 5}, {Key: 6}},
		[]Edge[int, int]{
			{Key: 1, Head: 1, Tail: 2},
			{Key: 2, Head: 2, Tail: 3},
			{Key: 3, Head: 3, Tail: 1},
			{Key: 4, Head: 4, Tail: 5},
			{Key: 5, Head: 5, Tail: 4},
		},
	)

	sccs, err := StronglyConnectedComponent[int, struct{}](g)
	if err != nil {
		t.Fatalf("scc error:%v", err)
	}
	fmt.Printf("sccs: %v\n", sccs)

	if len(sccs) != 3 {
		t.Fatalf("got %d components, want 3", len(sccs))
	}

	sizes := make(map[int]int)
	for _, c := range sccs {
		sizes[len(c)]++
	}
	if sizes[3] != 1 || sizes[2] != 1 || sizes[1] != 1 {
		t.Errorf("component sizes = %v, want one of each 3,2,1", sizes)
	}
}
