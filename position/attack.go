package position

// Attacked reports whether the king of color c can be captured immediately by
// the other color. Every reachable board has both kings placed; a board
// without one is a precondition violation.
func (b *Board) Attacked(c Color) bool {
	king := b.pieces[kingSlot(c)]
	if !king.OnBoard() {
		panic("position: " + c.String() + " king is not on the board")
	}
	return b.squareAttacked(king.Position, c.Other())
}

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool { return b.Attacked(b.active) }

// squareAttacked scans outward from sq: knight jumps first, then each of the
// eight rays up to its nearest occupant.
func (b *Board) squareAttacked(sq Coord, by Color) bool {
	for _, off := range KnightOffsets {
		if p, ok := b.PieceAt(sq.Add(off)); ok && p.Color == by && p.Class == Knight {
			return true
		}
	}

	// A pawn of color `by` attacks sq from one rank behind it, relative to its
	// own forward direction.
	pawnRank := -by.forward().Rank

	for _, dir := range AllDirections {
		cardinal := dir.File == 0 || dir.Rank == 0
		for dist := int8(1); ; dist++ {
			at := sq.Add(dir.Mul(dist))
			if !at.OnBoard() {
				break
			}
			p, ok := b.PieceAt(at)
			if !ok {
				continue
			}
			if p.Color == by && attacksAlong(p.Class, cardinal, dist, dir.Rank == pawnRank) {
				return true
			}
			break
		}
	}
	return false
}

// attacksAlong reports whether the nearest piece found on a ray attacks back
// along it.
func attacksAlong(class Class, cardinal bool, dist int8, pawnSide bool) bool {
	switch class {
	case Queen:
		return true
	case Rook:
		return cardinal
	case Bishop:
		return !cardinal
	case King:
		return dist == 1
	case Pawn:
		return !cardinal && dist == 1 && pawnSide
	default:
		return false
	}
}
