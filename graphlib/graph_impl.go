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

// graph is a map-backed directed graph: every graph this repository
// ever builds (the SCC view, the -dump-graph YAML output, a parsed
// input document) is directed, so unlike the teacher library there is
// no undirected branch to maintain in parallel.
type graph[K comparable, V any, W number] struct {
	name     string
	vertexes map[K]*Vertex[K, V]
	edges    map[K]*Edge[K, W]
	out      map[K][]K // vertex key -> outgoing edge keys, insertion order
}

// NewDigraph creates an empty directed graph.
func NewDigraph[K comparable, V any, W number](name string) (Digraph[K, V, W], error) {
	return &graph[K, V, W]{
		name:     name,
		vertexes: make(map[K]*Vertex[K, V]),
		edges:    make(map[K]*Edge[K, W]),
		out:      make(map[K][]K),
	}, nil
}

func (g *graph[K, V, W]) Name() string {
	return g.name
}

func (g *graph[K, V, W]) IsDigraph() bool {
	return true
}

func (g *graph[K, V, W]) AddVertex(v Vertex[K, V]) error {
	if _, ok := g.vertexes[v.Key]; ok {
		return errVertexExists
	}
	g.vertexes[v.Key] = &v
	return nil
}

func (g *graph[K, V, W]) AddEdge(e Edge[K, W]) error {
	if _, ok := g.vertexes[e.Head]; !ok {
		return errVertexNotExists
	}
	if _, ok := g.vertexes[e.Tail]; !ok {
		return errVertexNotExists
	}
	if _, ok := g.edges[e.Key]; ok {
		return errEdgeExists
	}
	g.edges[e.Key] = &e
	g.out[e.Head] = append(g.out[e.Head], e.Key)
	return nil
}

func (g *graph[K, V, W]) AllVertexes() ([]Vertex[K, V], error) {
	vs := make([]Vertex[K, V], 0, len(g.vertexes))
	for _, v := range g.vertexes {
		vs = append(vs, *v)
	}
	return vs, nil
}

func (g *graph[K, V, W]) AllEdges() ([]Edge[K, W], error) {
	es := make([]Edge[K, W], 0, len(g.edges))
	for _, e := range g.edges {
		es = append(es, *e)
	}
	return es, nil
}

func (g *graph[K, V, W]) OutEdges(v K) ([]Edge[K, W], error) {
	if _, ok := g.vertexes[v]; !ok {
		return nil, errVertexNotExists
	}
	keys := g.out[v]
	es := make([]Edge[K, W], 0, len(keys))
	for _, k := range keys {
		es = append(es, *g.edges[k])
	}
	return es, nil
}
