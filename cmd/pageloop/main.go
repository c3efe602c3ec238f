// Command pageloop enumerates bounded simple directed cycles through a
// source vertex and writes one cycle per line to an output file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/flxj/pageloop/pageloop"
	"github.com/flxj/pageloop/resultserver"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("pageloop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		file      string
		output    string
		source    int
		bound     int
		verbose   bool
		debug     bool
		format    string
		dumpGraph string
		renderDir string
		httpAddr  string
		scc       bool
	)
	fs.StringVar(&file, "f", "input.txt", "input file path")
	fs.StringVar(&file, "file", "input.txt", "input file path")
	fs.StringVar(&output, "o", "output.txt", "output file path")
	fs.StringVar(&output, "output", "output.txt", "output file path")
	fs.IntVar(&source, "s", -1, "override source vertex")
	fs.IntVar(&bound, "k", -1, "override cycle-length bound")
	fs.BoolVar(&verbose, "v", false, "informational logging")
	fs.BoolVar(&verbose, "verbose", false, "informational logging")
	fs.BoolVar(&debug, "d", false, "debug logging")
	fs.BoolVar(&debug, "debug", false, "debug logging")
	fs.StringVar(&format, "format", "", `input format: "text" or "yaml" (default: infer from extension)`)
	fs.StringVar(&dumpGraph, "dump-graph", "", "write the final pruned graph as YAML to this path")
	fs.StringVar(&renderDir, "render", "", "write DOT/HTML visualizations of the pruned graph to this directory")
	fs.StringVar(&httpAddr, "http", "", "serve results read-only at this address once enumeration completes")
	fs.BoolVar(&scc, "scc", false, "run the optional SCC filter before enumeration")

	var help bool
	fs.BoolVar(&help, "h", false, "print help and exit")
	fs.BoolVar(&help, "help", false, "print help and exit")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, "pageloop:", err)
		printUsage()
		return 2
	}
	if help {
		printUsage()
		return 0
	}

	level := "quiet"
	if debug {
		level = "debug"
	} else if verbose {
		level = "verbose"
	}
	logger := log.New(os.Stderr, "", log.LstdFlags)
	if level == "quiet" {
		logger.SetOutput(io.Discard)
	}

	cfg := pageloop.Config{
		InputPath:  file,
		OutputPath: output,
		Format:     format,
		DumpGraph:  dumpGraph,
		RenderDir:  renderDir,
		UseSCC:     scc,
	}
	if source >= 0 {
		cfg.Source, cfg.SourceSet = source, true
	}
	if bound >= 0 {
		cfg.Bound, cfg.BoundSet = bound, true
	}

	start := time.Now()
	result, err := pageloop.Run(cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pageloop:", err)
		return 1
	}
	elapsed := time.Since(start)

	if httpAddr != "" {
		store := resultserver.NewStore()
		store.Set(result, elapsed)
		engine := resultserver.NewEngine(store)
		logger.Printf("serving results on %s", httpAddr)
		if err := http.ListenAndServe(httpAddr, engine); err != nil {
			fmt.Fprintln(os.Stderr, "pageloop: http server:", err)
			return 1
		}
	}

	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `pageloop - bounded back-to-source circuit enumeration

Usage: pageloop [flags]

  -f, --file FILE     input path (default "input.txt")
  -o, --output FILE   output path (default "output.txt")
  -s S                override source vertex
  -k K                override cycle-length bound
  -v, --verbose       informational logging
  -d, --debug         debug logging
  --format FORMAT     input format: "text" or "yaml" (default: infer from extension)
  --dump-graph PATH   write the final pruned graph as YAML
  --render DIR        write DOT/HTML visualizations of the pruned graph
  --http ADDR         serve results read-only once enumeration completes
  --scc               run the optional SCC filter before enumeration
  -h, --help          print this help and exit`)
}
