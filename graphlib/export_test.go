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
	"testing"
)

func TestMarshalUnmarshalYaml(t *testing.T) {
	g, err := NewDigraph[int, struct{}, int]("round-trip")
	if err != nil {
		t.Fatalf("new digraph error:%v", err)
	}
	vs := []Vertex[int, struct{}]{{Key: 1}, {Key: 2}, {Key: 3}}
	es := []Edge[int, int]{
		{Key: 1, Head: 1, Tail: 2},
		{Key: 2, Head: 2, Tail: 3},
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

	data, err := MarshalGraphToYaml[int, struct{}, int](g)
	if err != nil {
		t.Fatalf("marshal error:%v", err)
	}

	g2, err := UnmarshalGraph[int, struct{}, int](data)
	if err != nil {
		t.Fatalf("unmarshal error:%v", err)
	}
	if g2.Name() != "round-trip" {
		t.Errorf("name = %q, want round-trip", g2.Name())
	}
	if !g2.IsDigraph() {
		t.Errorf("IsDigraph() = false, want true")
	}

	gotV, err := g2.AllVertexes()
	if err != nil {
		t.Fatalf("all vertexes error:%v", err)
	}
	if len(gotV) != len(vs) {
		t.Errorf("got %d vertexes, want %d", len(gotV), len(vs))
	}

	gotE, err := g2.AllEdges()
	if err != nil {
		t.Fatalf("all edges error:%v", err)
	}
	if len(gotE) != len(es) {
		t.Errorf("got %d edges, want %d", len(gotE), len(es))
	}
}
