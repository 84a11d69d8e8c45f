// Package san turns the legal plays of one ply into the shortest algebraic
// labels that tell them apart.
package san

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-plays/position"
)

// Castling labels.
const (
	KingsideCastle  = "O-O"
	QueensideCastle = "O-O-O"
)

// Specificity levels of a label, tried in order.
const (
	levelBare = iota
	levelFile
	levelRank
	levelSquare
)

type claim struct {
	play      int
	ambiguous bool
}

type work struct {
	play  int
	level int
}

// Disambiguate maps each unambiguous label to its play. Every play starts at
// the bare form; when a second play claims a label, the label is marked
// ambiguous for good and both plays retry at the next level. Labels that were
// ever ambiguous are left out of the result, and a play that runs out of
// forms has no label.
func Disambiguate(plays []position.Play) map[string]*position.Play {
	queue := make([]work, 0, len(plays))
	for i := range plays {
		queue = append(queue, work{play: i, level: levelBare})
	}

	claims := make(map[string]claim, len(plays))
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]

		label, ok := Label(plays[w.play], w.level)
		if !ok {
			continue
		}
		prev, taken := claims[label]
		if !taken {
			claims[label] = claim{play: w.play}
			continue
		}
		if !prev.ambiguous {
			claims[label] = claim{ambiguous: true}
			queue = append(queue, work{play: w.play, level: w.level + 1})
			queue = append(queue, work{play: prev.play, level: w.level + 1})
			continue
		}
		queue = append(queue, work{play: w.play, level: w.level + 1})
	}

	out := make(map[string]*position.Play, len(claims))
	for label, c := range claims {
		if !c.ambiguous {
			out[label] = &plays[c.play]
		}
	}
	return out
}

// Labels returns the labels of a mapping in sorted order.
func Labels(m map[string]*position.Play) []string {
	labels := maps.Keys(m)
	slices.Sort(labels)
	return labels
}

// Label renders a play at the given specificity level. It reports false when
// the play has no form at that level.
func Label(p position.Play, level int) (string, bool) {
	from := p.From()
	dest := p.Destination.String()
	switch p.Kind {
	case position.KingsideCastle:
		return KingsideCastle, level == levelBare
	case position.QueensideCastle:
		return QueensideCastle, level == levelBare
	case position.Promotion:
		return dest + p.Promotion.Letter(), level == levelBare
	case position.PromotionCapture:
		s, ok := pawnCapture(from, dest, level)
		return s + p.Promotion.Letter(), ok
	case position.EnPassant:
		return pawnCapture(from, dest, level)
	case position.Move, position.Capture:
		if p.Piece.Class == position.Pawn {
			if p.Kind == position.Move {
				return dest, level == levelBare
			}
			return pawnCapture(from, dest, level)
		}
		if p.IsCapture() {
			dest = "x" + dest
		}
		letter := p.Piece.Class.Letter()
		switch level {
		case levelBare:
			return letter + dest, true
		case levelFile:
			return letter + from.FileName() + dest, true
		case levelRank:
			return letter + from.RankName() + dest, true
		case levelSquare:
			return letter + from.String() + dest, true
		}
	}
	return "", false
}

// pawnCapture renders "exd5" at the bare level and "e4xd5" one level up.
func pawnCapture(from position.Coord, dest string, level int) (string, bool) {
	switch level {
	case levelBare:
		return from.FileName() + "x" + dest, true
	case levelFile:
		return from.String() + "x" + dest, true
	default:
		return "", false
	}
}
