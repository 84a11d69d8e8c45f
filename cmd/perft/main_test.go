package main

import (
	"testing"

	"chess-plays/position"
)

func TestLabelDivideMatchesPerft(t *testing.T) {
	board, err := position.ParseFEN("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	if err != nil {
		t.Fatal(err)
	}
	div := labelDivide(board, 2)
	if len(div) != 44 {
		t.Fatalf("labelled roots: got %d want 44", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 1486 {
		t.Fatalf("nodes: got %d want 1486", sum)
	}
	if _, ok := div["Nbc3"]; !ok {
		t.Fatalf("missing Nbc3 in %v", div)
	}
}
