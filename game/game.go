// Package game drives a sequence of positions: it lists the labels of the
// current ply, adopts the board of the chosen play and reports how the game
// stands.
package game

import (
	"errors"
	"fmt"

	"chess-plays/position"
	"chess-plays/san"
)

// ErrUnknownLabel is returned by Play when no legal play carries the label.
var ErrUnknownLabel = errors.New("game: unknown or ambiguous label")

// Status describes whether the game can continue.
type Status uint8

const (
	InProgress Status = iota
	Checkmate
	Stalemate
	// Repetition is a third occurrence of the current position.
	Repetition
	// FiftyMove is a half-move clock of 100 or more.
	FiftyMove
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Repetition:
		return "repetition"
	case FiftyMove:
		return "fifty-move rule"
	default:
		return "unknown"
	}
}

// occurrence identifies a position for repetition counting. The hash does not
// encode the side to move, so it is kept alongside. An en-passant file that no
// legal play can use is left out of the key.
type occurrence struct {
	key    position.Hash
	active position.Color
}

func occurrenceOf(b *position.Board, plays []position.Play) occurrence {
	o := occurrence{key: b.Hash(), active: b.Active()}
	if _, ok := b.EnPassantFile(); !ok {
		return o
	}
	for _, p := range plays {
		if p.Kind == position.EnPassant {
			return o
		}
	}
	o.key = o.key.Xor(b.EnPassantKey())
	return o
}

// Game holds the boards reached so far. Boards are shared, never copied.
type Game struct {
	boards  []*position.Board
	history []occurrence
	plays   map[string]*position.Play
}

// New starts a game at b.
func New(b *position.Board) *Game {
	g := &Game{}
	g.adopt(b)
	return g
}

func (g *Game) adopt(b *position.Board) {
	plays := b.Plays()
	g.boards = append(g.boards, b)
	g.history = append(g.history, occurrenceOf(b, plays))
	g.plays = san.Disambiguate(plays)
}

// Board returns the current position.
func (g *Game) Board() *position.Board { return g.boards[len(g.boards)-1] }

// Boards returns every position reached, starting with the initial one.
func (g *Game) Boards() []*position.Board {
	out := make([]*position.Board, len(g.boards))
	copy(out, g.boards)
	return out
}

// Labels returns the sorted labels playable in the current position.
func (g *Game) Labels() []string { return san.Labels(g.plays) }

// Lookup returns the play behind a label without playing it.
func (g *Game) Lookup(label string) (*position.Play, bool) {
	p, ok := g.plays[label]
	return p, ok
}

// Play advances the game by the play carrying label.
func (g *Game) Play(label string) error {
	p, ok := g.plays[label]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	g.adopt(p.Board)
	return nil
}

// History returns the hash of every position reached, in order.
func (g *Game) History() []position.Hash {
	out := make([]position.Hash, len(g.boards))
	for i, b := range g.boards {
		out[i] = b.Hash()
	}
	return out
}

// Status classifies the current position. Checkmate and stalemate are told
// apart by whether the side to move is in check.
func (g *Game) Status() Status {
	b := g.Board()
	if len(g.plays) == 0 && len(b.Plays()) == 0 {
		if b.InCheck() {
			return Checkmate
		}
		return Stalemate
	}
	if g.repetitions() >= 3 {
		return Repetition
	}
	if b.HalfmoveClock() >= 100 {
		return FiftyMove
	}
	return InProgress
}

// repetitions counts occurrences of the current position, including itself.
// Only positions since the last capture or pawn move can match.
func (g *Game) repetitions() int {
	last := len(g.history) - 1
	cur := g.history[last]
	first := last - g.Board().HalfmoveClock()
	if first < 0 {
		first = 0
	}
	n := 0
	for _, o := range g.history[first:] {
		if o == cur {
			n++
		}
	}
	return n
}
