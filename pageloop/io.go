package pageloop

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/flxj/pageloop/graphlib"
)

// Input is the parsed, validated content of an input file: the vertex
// count, the edge list in file order, and optional header-supplied
// source/bound (0 if the header used the two-integer form and the
// caller must supply -s/-k).
type Input struct {
	N     int
	S     int
	K     int
	HasSK bool
	Edges [][2]int
}

// ParsePlainText parses spec §6's text format: a header line of either
// "N M S K" or "N M", followed by M "s t" edge lines.
func ParsePlainText(data []byte) (Input, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return Input{}, fmt.Errorf("%w: empty file", errBadHeader)
	}
	header := strings.Fields(scanner.Text())

	var (
		in Input
		m  int
	)
	switch len(header) {
	case 4:
		n, err1 := strconv.Atoi(header[0])
		mm, err2 := strconv.Atoi(header[1])
		s, err3 := strconv.Atoi(header[2])
		k, err4 := strconv.Atoi(header[3])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return Input{}, fmt.Errorf("%w: non-integer header", errBadHeader)
		}
		in.N, m, in.S, in.K, in.HasSK = n, mm, s, k, true
	case 2:
		n, err1 := strconv.Atoi(header[0])
		mm, err2 := strconv.Atoi(header[1])
		if err1 != nil || err2 != nil {
			return Input{}, fmt.Errorf("%w: non-integer header", errBadHeader)
		}
		in.N, m = n, mm
	default:
		return Input{}, fmt.Errorf("%w: expected 2 or 4 header fields, got %d", errBadHeader, len(header))
	}

	// S and K are checked by the driver once -s/-k overrides are applied.
	if in.N <= 0 || m <= 0 {
		return Input{}, fmt.Errorf("%w: N=%d M=%d S=%d K=%d", errBadParam, in.N, m, in.S, in.K)
	}

	for i := 0; i < m; i++ {
		if !scanner.Scan() {
			return Input{}, fmt.Errorf("%w: expected %d edge lines, got %d", errBadHeader, m, i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			return Input{}, fmt.Errorf("%w: malformed edge line %q", errBadHeader, scanner.Text())
		}
		s, err1 := strconv.Atoi(fields[0])
		t, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return Input{}, fmt.Errorf("%w: non-integer edge %q", errBadHeader, scanner.Text())
		}
		in.Edges = append(in.Edges, [2]int{s, t})
	}
	if err := scanner.Err(); err != nil {
		return Input{}, err
	}
	return in, nil
}

// ParseGraphInfo parses the YAML/JSON alternative format (§ domain
// stack expansion): a serialized graphlib.GraphInfo whose vertex keys
// are the dense [0,N) integer ids and whose edges supply the (s,t)
// pairs, reusing graphlib.UnmarshalGraph unchanged.
func ParseGraphInfo(data []byte) (Input, error) {
	g, err := graphlib.UnmarshalGraph[int, struct{}, int](data)
	if err != nil {
		return Input{}, fmt.Errorf("pageloop: parse graph document: %w", err)
	}
	vs, err := g.AllVertexes()
	if err != nil {
		return Input{}, err
	}
	es, err := g.AllEdges()
	if err != nil {
		return Input{}, err
	}
	in := Input{N: len(vs)}
	for _, e := range es {
		in.Edges = append(in.Edges, [2]int{e.Head, e.Tail})
	}
	if in.N <= 0 {
		return Input{}, fmt.Errorf("%w: N=%d", errBadParam, in.N)
	}
	return in, nil
}

// Build constructs a pageloop.Graph from a parsed Input.
func (in Input) Build() *Graph {
	g := NewGraph(in.N)
	for _, e := range in.Edges {
		_ = g.AddEdge(e[0], e[1])
	}
	return g
}
