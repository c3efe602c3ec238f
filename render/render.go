// Package render writes debugging visualizations of a pruned graph: a
// Graphviz DOT file and a D3-force-layout HTML page. It is adapted
// from flxj/graphlib's draw package, specialized to the plain integer
// vertex space the enumerator operates on and with the external-binary
// SVG rendering step dropped (see the project's design notes).
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// Graph is the minimal view render needs: every active vertex, and
// every directed edge between them.
type Graph struct {
	Vertices []int
	Edges    [][2]int
}

// DOT writes the graph as a Graphviz digraph to <dir>/pruned.dot.
func DOT(g Graph, dir string) (string, error) {
	var dot dotDoc
	for _, v := range g.Vertices {
		dot.Nodes = append(dot.Nodes, fmt.Sprintf("%d [shape=ellipse,label=%d]", v, v))
	}
	for _, e := range g.Edges {
		dot.Edges = append(dot.Edges, fmt.Sprintf("%d->%d", e[0], e[1]))
	}

	tpl, err := template.New("dot").Parse(dotTemplate)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, dot); err != nil {
		return "", err
	}

	path := filepath.Join(dir, "pruned.dot")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// HTML writes a force-directed D3 visualization of the graph to
// <dir>/cycles.html, highlighting source and the edges that appear in
// at least one emitted cycle.
func HTML(g Graph, source int, cycleEdges [][2]int, dir string) (string, error) {
	used := make(map[[2]int]bool, len(cycleEdges))
	for _, e := range cycleEdges {
		used[e] = true
	}

	var data d3Data
	for _, v := range g.Vertices {
		color := ""
		if v == source {
			color = "red"
		}
		data.Nodes = append(data.Nodes, d3Node{ID: fmt.Sprintf("%d", v), Name: fmt.Sprintf("%d", v), Color: color})
	}
	for _, e := range g.Edges {
		color := ""
		if used[e] {
			color = "red"
		}
		data.Links = append(data.Links, d3Link{
			Source: fmt.Sprintf("%d", e[0]),
			Target: fmt.Sprintf("%d", e[1]),
			Color:  color,
		})
	}

	tpl, err := template.New("html").Parse(htmlTemplate)
	if err != nil {
		return "", err
	}
	bs, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, "cycles.html")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()
	if err := tpl.Execute(f, string(bs)); err != nil {
		return "", err
	}
	return path, nil
}

type dotDoc struct {
	Nodes []string
	Edges []string
}

type d3Node struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type d3Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Color  string `json:"color"`
}

type d3Data struct {
	Nodes []d3Node `json:"nodes"`
	Links []d3Link `json:"links"`
}
