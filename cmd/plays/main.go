package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"chess-plays/diagram"
	"chess-plays/game"
	"chess-plays/position"
)

func main() {
	fen := flag.String("fen", position.FENStartPos, "FEN string of the starting position")
	moves := flag.String("moves", "", "Space separated labels to play before listing")
	svgOut := flag.String("svg", "", "Write an SVG diagram of the final position to this file")
	flip := flag.Bool("flip", false, "Draw the diagram from Black's side")
	flag.Parse()

	board, err := position.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	g := game.New(board)
	for _, label := range strings.Fields(*moves) {
		if err := g.Play(label); err != nil {
			fmt.Fprintf(os.Stderr, "after %d plies: %v\n", g.Board().Ply()-board.Ply(), err)
			os.Exit(2)
		}
	}

	cur := g.Board()
	fmt.Printf("fen:    %s\n", cur.FEN())
	fmt.Printf("hash:   %016x %016x\n", cur.Hash().Lane(0), cur.Hash().Lane(1))
	fmt.Printf("status: %s\n", g.Status())
	fmt.Printf("plays:  %s\n", strings.Join(g.Labels(), " "))

	if *svgOut != "" {
		f, err := os.Create(*svgOut)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating svg: %v\n", err)
			os.Exit(2)
		}
		if err := diagram.Write(f, cur, diagram.Options{Flip: *flip}); err != nil {
			_ = f.Close()
			fmt.Fprintf(os.Stderr, "writing svg: %v\n", err)
			os.Exit(2)
		}
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "closing svg: %v\n", err)
			os.Exit(2)
		}
	}
}
