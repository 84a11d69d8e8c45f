package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-plays/position"
	"chess-plays/san"
)

// labelDivide is PerftDivide keyed by disambiguated labels instead of UCI.
func labelDivide(b *position.Board, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	for label, p := range san.Disambiguate(b.Plays()) {
		out[label] = position.Perft(p.Board, depth-1)
	}
	return out
}

func printDivide(div map[string]uint64) {
	keys := maps.Keys(div)
	slices.Sort(keys)
	var sum uint64
	for _, k := range keys {
		fmt.Printf("%-8s %d\n", k, div[k])
		sum += div[k]
	}
	fmt.Printf("plays %d, nodes %d\n", len(keys), sum)
}

func main() {
	fen := flag.String("fen", position.FENStartPos, "FEN of the root position")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print node counts per root play in coordinate notation")
	labels := flag.Bool("labels", false, "Like -divide, keyed by algebraic labels")
	repeat := flag.Int("repeat", 1, "Run the count N times and report the total")
	cpuProf := flag.String("cpuprofile", "", "Write a CPU profile to this file")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}
	board, err := position.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	switch {
	case *labels:
		printDivide(labelDivide(board, *depth))
		return
	case *divide:
		printDivide(position.PerftDivide(board, *depth))
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "cpuprofile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var nodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		nodes += position.Perft(board, *depth)
	}
	elapsed := time.Since(start)
	fmt.Printf("depth %d  nodes %d  time %s  nps %.0f\n", *depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())
}
