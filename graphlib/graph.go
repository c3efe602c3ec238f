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

type number interface {
	int | int64
}

// Vertex is a node in a Graph, carrying an opaque value of type V.
type Vertex[K comparable, V any] struct {
	Key   K
	Value V
}

// Edge is an arc from Head to Tail, carrying a weight of type W.
type Edge[K comparable, W number] struct {
	Key    K
	Head   K
	Tail   K
	Weight W
}

// Graph is the surface this repository's domain code builds and reads
// graphs through: construct from vertices and edges, then read the
// whole vertex/edge set back for traversal or serialization. It does
// not expose the teacher library's full query surface (degree,
// labels, random sampling, property caching, cloning) because nothing
// here needs a generic weighted-graph toolkit, only a vertex/edge
// store a Digraph view and a YAML dump can be built from.
type Graph[K comparable, V any, W number] interface {
	Name() string
	IsDigraph() bool
	AddVertex(vertex Vertex[K, V]) error
	AddEdge(edge Edge[K, W]) error
	AllVertexes() ([]Vertex[K, V], error)
	AllEdges() ([]Edge[K, W], error)
}

// Digraph is a Graph known to be directed, adding the outgoing-edge
// query Tarjan's algorithm traverses by.
type Digraph[K comparable, V any, W number] interface {
	Graph[K, V, W]
	OutEdges(v K) ([]Edge[K, W], error)
}
