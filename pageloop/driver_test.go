package pageloop

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeInput(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runScenario(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	in := writeInput(t, dir, body)
	out := filepath.Join(dir, "output.txt")
	cfg := Config{InputPath: in, OutputPath: out}
	if _, err := Run(cfg, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	bs, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	return string(bs)
}

func TestE1SimpleTriangle(t *testing.T) {
	got := runScenario(t, "3 3 0 3\n0 1\n1 2\n2 0\n")
	want := "0 1 2\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestE2TwoTwoCycles(t *testing.T) {
	got := runScenario(t, "4 4 0 3\n0 1\n1 0\n0 2\n2 0\n")
	want := "0 1\n0 2\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestE3TooLong(t *testing.T) {
	got := runScenario(t, "4 4 0 2\n0 1\n1 2\n2 3\n3 0\n")
	if got != "" {
		t.Fatalf("got %q want empty", got)
	}
}

func TestE4SelfPair(t *testing.T) {
	got := runScenario(t, "2 2 0 5\n0 1\n1 0\n")
	want := "0 1\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestE5CycleNotThroughSourceExcluded(t *testing.T) {
	got := runScenario(t, "5 6 0 4\n0 1\n1 2\n2 0\n2 3\n3 4\n4 2\n")
	want := "0 1 2\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestE6AdjacencyOrderDeterminesOutputOrder(t *testing.T) {
	got := runScenario(t, "5 5 0 5\n0 3\n0 1\n1 2\n2 0\n3 0\n")
	want := "0 3\n0 1 2\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestCLIOverridesSourceAndBound(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "3 3 0 0\n0 1\n1 2\n2 0\n")
	out := filepath.Join(dir, "output.txt")
	cfg := Config{InputPath: in, OutputPath: out, Source: 0, SourceSet: true, Bound: 3, BoundSet: true}
	if _, err := Run(cfg, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	bs, _ := os.ReadFile(out)
	if string(bs) != "0 1 2\n" {
		t.Fatalf("got %q", bs)
	}
}

func TestSourceIsolatedAfterPruneIsEmptyResult(t *testing.T) {
	// vertex 1 has no path back to 0 within K, so pass 2 removes it and
	// S is left with no edges; the result is a legal empty file, not an
	// error.
	got := runScenario(t, "2 1 0 2\n0 1\n")
	if got != "" {
		t.Fatalf("got %q want empty", got)
	}
}

func TestDuplicateEdgesIdempotent(t *testing.T) {
	g := NewGraph(3)
	if err := g.AddEdge(0, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 1); err != nil {
		t.Fatal(err)
	}
	if got := g.Neighbors(0); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("got %v want [1]", got)
	}
}

func TestRemapRoundTrip(t *testing.T) {
	g := NewGraph(5)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}} {
		_ = g.AddEdge(e[0], e[1])
	}
	Prune(g, func(v int) bool { return v != 3 })
	_, table := Compact(g)
	for oldID, newID := range table.Old2New {
		if table.New2Old[newID] != oldID {
			t.Fatalf("round-trip broken for old id %d", oldID)
		}
	}
	for newID, oldID := range table.New2Old {
		if table.Old2New[oldID] != newID {
			t.Fatalf("round-trip broken for new id %d", newID)
		}
	}
}

func TestBFSTruncationMatchesUnbounded(t *testing.T) {
	g := NewGraph(6)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}} {
		_ = g.AddEdge(e[0], e[1])
	}
	BFS(g, 0, 3)
	truncated := map[int]bool{}
	for v := 0; v < g.N(); v++ {
		if d := g.Dist(v); d != -1 && d <= 2 {
			truncated[v] = true
		}
	}
	BFS(g, 0, 1000)
	unbounded := map[int]bool{}
	for v := 0; v < g.N(); v++ {
		if d := g.Dist(v); d != -1 && d <= 2 {
			unbounded[v] = true
		}
	}
	if !reflect.DeepEqual(truncated, unbounded) {
		t.Fatalf("truncated=%v unbounded=%v", truncated, unbounded)
	}
}

func TestMalformedHeaderIsFatal(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "not a header\n")
	out := filepath.Join(dir, "output.txt")
	cfg := Config{InputPath: in, OutputPath: out}
	if _, err := Run(cfg, nil); err == nil {
		t.Fatal("expected error on malformed header")
	}
}

func TestNonPositiveBoundIsFatal(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "2 1 0 0\n0 1\n")
	out := filepath.Join(dir, "output.txt")
	cfg := Config{InputPath: in, OutputPath: out}
	if _, err := Run(cfg, nil); err == nil {
		t.Fatal("expected error on K<=0")
	}
}
