package pageloop

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/flxj/pageloop/graphlib"
	"github.com/flxj/pageloop/render"
)

// Stats reports the sizes seen at each pipeline stage, for the
// optional -http results server; it carries no behavior of its own.
type Stats struct {
	InputVertices   int
	InputEdges      int
	AfterPass1      int
	AfterPass2      int
	AfterSCC        int
	CyclesEmitted   int
}

// Result is everything a caller (the CLI, or the optional results
// server) needs after a completed Run.
type Result struct {
	Stats  Stats
	Cycles [][]int // original-vertex-space, S first, return edge excluded
}

// Run executes the full pipeline in the fixed order the driver
// contract requires: parse, BFS1+prune+compact, rebuild reverse from
// the compacted graph, BFS2+prune+compact, optional SCC filter,
// enumerate, write.
func Run(cfg Config, logger *log.Logger) (Result, error) {
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}

	in, err := loadInput(cfg)
	if err != nil {
		return Result{}, err
	}

	source, bound := in.S, in.K
	if cfg.SourceSet {
		source = cfg.Source
	}
	if cfg.BoundSet {
		bound = cfg.Bound
	}
	if bound <= 0 || source < 0 {
		return Result{}, fmt.Errorf("%w: S=%d K=%d", errBadParam, source, bound)
	}

	g := in.Build()
	stats := Stats{InputVertices: in.N, InputEdges: len(in.Edges)}
	logger.Printf("loaded graph: N=%d M=%d S=%d K=%d", in.N, len(in.Edges), source, bound)

	if source >= g.N() || !g.Active(source) {
		return finishEmpty(cfg, stats, logger)
	}

	// Pass 1: forward horizon from S in G.
	BFS(g, source, bound)
	Prune(g, func(v int) bool {
		d := g.Dist(v)
		return d != -1 && d <= bound-1
	})
	g1, table1 := Compact(g)
	stats.AfterPass1 = g1.N()
	logger.Printf("after pass 1: %d vertices survive", g1.N())

	newSource, ok := table1.Old2New[source]
	if !ok {
		return finishEmpty(cfg, stats, logger)
	}

	// Pass 2: round-trip horizon, reverse graph rebuilt from G'.
	BFS(g1, newSource, bound)
	distFwd := make([]int, g1.N())
	for v := 0; v < g1.N(); v++ {
		distFwd[v] = g1.Dist(v)
	}
	rev := ReverseActive(g1)
	BFS(rev, newSource, bound)

	Prune(g1, func(v int) bool {
		df, db := distFwd[v], rev.Dist(v)
		if df == -1 || db == -1 {
			return false
		}
		return df+db <= bound
	})
	g2, table2 := Compact(g1)
	stats.AfterPass2 = g2.N()
	logger.Printf("after pass 2: %d vertices survive", g2.N())

	// S always has dist_G'(S)=0 on both legs, so it can never fail pass
	// 2's predicate; its absence here is an invariant violation, not a
	// legal empty result (unlike the pass-1 check above).
	if _, ok := table2.Old2New[newSource]; !ok {
		return Result{}, errSourceMissing
	}
	composed := Compose(table1, table2)
	newSource2 := composed.Old2New[source]

	if cfg.UseSCC {
		if err := FilterSCC(g2, newSource2); err != nil {
			return Result{}, err
		}
		g3, table3 := Compact(g2)
		composed = Compose(composed, table3)
		sccSource, ok := composed.Old2New[source]
		if !ok {
			return finishEmpty(cfg, stats, logger)
		}
		newSource2 = sccSource
		g2 = g3
		stats.AfterSCC = g2.N()
		logger.Printf("after scc filter: %d vertices survive", g2.N())
	}

	if err := dumpGraph(cfg, g2); err != nil {
		return Result{}, err
	}

	enumerator := NewEnumerator(g2, newSource2, bound)
	cyclesNew := enumerator.Enumerate()
	stats.CyclesEmitted = len(cyclesNew)
	logger.Printf("enumerated %d cycles", len(cyclesNew))

	cyclesOld := make([][]int, len(cyclesNew))
	for i, c := range cyclesNew {
		old := make([]int, len(c))
		for j, v := range c {
			old[j] = composed.New2Old[v]
		}
		cyclesOld[i] = old
	}

	if err := renderGraph(cfg, g2, newSource2, cyclesNew); err != nil {
		return Result{}, err
	}

	if err := writeOutput(cfg, cyclesNew, composed.New2Old); err != nil {
		return Result{}, err
	}

	return Result{Stats: stats, Cycles: cyclesOld}, nil
}

func finishEmpty(cfg Config, stats Stats, logger *log.Logger) (Result, error) {
	logger.Printf("source isolated after pruning; writing empty result")
	if err := writeOutput(cfg, nil, nil); err != nil {
		return Result{}, err
	}
	return Result{Stats: stats}, nil
}

func loadInput(cfg Config) (Input, error) {
	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return Input{}, fmt.Errorf("pageloop: open input %s: %w", cfg.InputPath, err)
	}

	format := cfg.Format
	if format == "" {
		switch strings.ToLower(filepath.Ext(cfg.InputPath)) {
		case ".yaml", ".yml", ".json":
			format = "yaml"
		default:
			format = "text"
		}
	}
	if format == "yaml" {
		return ParseGraphInfo(data)
	}
	return ParsePlainText(data)
}

func writeOutput(cfg Config, cycles [][]int, toOld []int) error {
	f, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("pageloop: open output %s: %w", cfg.OutputPath, err)
	}
	defer func() { _ = f.Close() }()
	return WriteCycles(f, cycles, toOld)
}

func dumpGraph(cfg Config, g *Graph) error {
	if cfg.DumpGraph == "" {
		return nil
	}
	dg, err := graphlib.NewDigraph[int, struct{}, int]("pruned")
	if err != nil {
		return err
	}
	for _, v := range g.ActiveVertices() {
		if err := dg.AddVertex(graphlib.Vertex[int, struct{}]{Key: v}); err != nil {
			return err
		}
	}
	for _, u := range g.ActiveVertices() {
		for _, v := range g.Neighbors(u) {
			e := graphlib.Edge[int, int]{Key: u*g.N() + v, Head: u, Tail: v, Weight: 1}
			if err := dg.AddEdge(e); err != nil {
				return err
			}
		}
	}
	bs, err := graphlib.MarshalGraphToYaml[int, struct{}, int](dg)
	if err != nil {
		return err
	}
	return os.WriteFile(cfg.DumpGraph, bs, 0644)
}

func renderGraph(cfg Config, g *Graph, source int, cycles [][]int) error {
	if cfg.RenderDir == "" {
		return nil
	}
	if err := os.MkdirAll(cfg.RenderDir, 0755); err != nil {
		return err
	}

	rg := render.Graph{Vertices: g.ActiveVertices()}
	for _, u := range rg.Vertices {
		for _, v := range g.Neighbors(u) {
			rg.Edges = append(rg.Edges, [2]int{u, v})
		}
	}

	if _, err := render.DOT(rg, cfg.RenderDir); err != nil {
		return fmt.Errorf("pageloop: render dot: %w", err)
	}

	var cycleEdges [][2]int
	for _, c := range cycles {
		for i, v := range c {
			next := c[(i+1)%len(c)]
			cycleEdges = append(cycleEdges, [2]int{v, next})
		}
	}
	if _, err := render.HTML(rg, source, cycleEdges, cfg.RenderDir); err != nil {
		return fmt.Errorf("pageloop: render html: %w", err)
	}
	return nil
}
