// Package diagram renders board snapshots as static SVG images.
package diagram

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"chess-plays/position"
)

// Options controls the rendering. Zero values select the defaults.
type Options struct {
	SquareSize int
	Light      string
	Dark       string
	// Flip draws the board from Black's side.
	Flip bool
}

const (
	defaultSquareSize = 45
	defaultLight      = "#f0d9b5"
	defaultDark       = "#b58863"
)

func (o Options) withDefaults() Options {
	if o.SquareSize <= 0 {
		o.SquareSize = defaultSquareSize
	}
	if o.Light == "" {
		o.Light = defaultLight
	}
	if o.Dark == "" {
		o.Dark = defaultDark
	}
	return o
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// Write draws b to w with rank 8 at the top (rank 1 when flipped). Pieces
// are drawn as their layout letters.
func Write(w io.Writer, b *position.Board, opts Options) error {
	opts = opts.withDefaults()
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	size := opts.SquareSize
	canvas.Start(8*size, 8*size)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			at := squareAt(row, col, opts.Flip)
			fill := opts.Light
			if (int(at.File)+int(at.Rank))%2 == 0 {
				fill = opts.Dark
			}
			x, y := col*size, row*size
			canvas.Rect(x, y, size, size, "fill:"+fill)

			p, ok := b.PieceAt(at)
			if !ok {
				continue
			}
			color, stroke := "#ffffff", "#000000"
			if p.Color == position.Black {
				color, stroke = "#000000", "#ffffff"
			}
			style := fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-weight:bold;font-size:%dpx;fill:%s;stroke:%s;stroke-width:1",
				size*2/3, color, stroke)
			canvas.Text(x+size/2, y+size*3/4, string(p.Char()), style)
		}
	}
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("diagram: %w", ew.err)
	}
	return nil
}

func squareAt(row, col int, flip bool) position.Coord {
	if flip {
		return position.Coord{File: int8(7 - col), Rank: int8(row)}
	}
	return position.Coord{File: int8(col), Rank: int8(7 - row)}
}
