package position

// Hash is a two-lane Zobrist-style position key. Lane 0 describes the position
// from White's side; lane 1 describes the same position with colors swapped and
// the board rotated, so a position and its color-flipped twin share one pair
// of values with the lanes exchanged.
type Hash [2]uint64

// Key table offsets.
const (
	keyActiveKingSide    = 768
	keyActiveQueenSide   = 769
	keyInactiveKingSide  = 770
	keyInactiveQueenSide = 771
	keyEnPassant         = 772
)

// Lane returns one of the two 64-bit values.
func (h Hash) Lane(i int) uint64 { return h[i] }

// Swap exchanges the lanes.
func (h Hash) Swap() Hash { return Hash{h[1], h[0]} }

// Xor returns the lane-wise XOR of h and o.
func (h Hash) Xor(o Hash) Hash { return Hash{h[0] ^ o[0], h[1] ^ o[1]} }

func pieceKeyIndex(c Color, class Class, at Coord) int {
	return int(c) + int(class)*2 + int(at.File)*12 + int(at.Rank)*96
}

// pieceHash is the contribution of a piece of the given color and class on a square.
func pieceHash(c Color, class Class, at Coord) Hash {
	mirrored := Coord{File: 7 - at.File, Rank: 7 - at.Rank}
	return Hash{
		hashKeys[pieceKeyIndex(c, class, at)],
		hashKeys[pieceKeyIndex(c.Other(), class, mirrored)],
	}
}

// castleHash is the contribution of the listed rights of color c.
func castleHash(c Color, rights CastleRight) Hash {
	var own, opp uint64
	if rights&KingSide != 0 {
		own ^= hashKeys[keyActiveKingSide]
		opp ^= hashKeys[keyInactiveKingSide]
	}
	if rights&QueenSide != 0 {
		own ^= hashKeys[keyActiveQueenSide]
		opp ^= hashKeys[keyInactiveQueenSide]
	}
	if c == White {
		return Hash{own, opp}
	}
	return Hash{opp, own}
}

// enPassantHash is the contribution of an en-passant file.
func enPassantHash(file int8) Hash {
	return Hash{hashKeys[keyEnPassant+int(file)], hashKeys[keyEnPassant+7-int(file)]}
}

// EnPassantKey returns the contribution of the current en-passant file to the
// hash, or the zero Hash when none is set.
func (b *Board) EnPassantKey() Hash {
	if b.enPassant == noFile {
		return Hash{}
	}
	return enPassantHash(b.enPassant)
}

// ComputeHash recomputes the hash from scratch over all placed pieces, castling
// rights and the en-passant file.
func (b *Board) ComputeHash() Hash {
	var h Hash
	for _, p := range b.pieces {
		if p.OnBoard() {
			h = h.Xor(pieceHash(p.Color, p.Class, p.Position))
		}
	}
	h = h.Xor(castleHash(White, b.castling[White]))
	h = h.Xor(castleHash(Black, b.castling[Black]))
	return h.Xor(b.EnPassantKey())
}
