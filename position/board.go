package position

import (
	"errors"
	"fmt"
)

// CastleRight is the set of castling wings still available to one color.
type CastleRight uint8

const (
	CastleNone CastleRight = 0
	KingSide   CastleRight = 1 << 0
	QueenSide  CastleRight = 1 << 1
	CastleBoth             = KingSide | QueenSide
)

func (r CastleRight) String() string {
	switch r {
	case CastleNone:
		return "none"
	case KingSide:
		return "kingside"
	case QueenSide:
		return "queenside"
	default:
		return "both"
	}
}

const (
	noSlot int8 = -1
	noFile int8 = -1
)

// ErrCorrupt is returned by Validate when the board's redundant state disagrees.
var ErrCorrupt = errors.New("position: corrupt board")

// Board is an immutable-by-convention chess position. Boards handed out by
// Plays or ParseFEN are never mutated again; only scratch copies are changed
// while generating plays.
type Board struct {
	// Side to move
	active Color

	// Fixed piece slots; captured pieces keep their slot with no position
	pieces [SlotCount]Piece

	// grid[file][rank] holds the occupying slot or noSlot
	grid [8][8]int8

	// Half-moves played since the game start
	ply int

	// Half-moves since the last capture or pawn move
	halfmoveClock int

	hash Hash

	// File of a pawn that just made a double step, or noFile
	enPassant int8

	// Remaining castling wings per color
	castling [2]CastleRight
}

// NewBoard builds a board from a full slot set with White to move, both
// castling rights for both colors and no en-passant file. The slot set is
// trusted: piece counts and king placement are not checked.
func NewBoard(pieces [SlotCount]Piece) *Board {
	return newBoard(pieces, White, [2]CastleRight{CastleBoth, CastleBoth}, noFile, 0, 0)
}

func newBoard(pieces [SlotCount]Piece, active Color, castling [2]CastleRight, enPassant int8, halfmove, ply int) *Board {
	b := &Board{
		active:        active,
		pieces:        pieces,
		ply:           ply,
		halfmoveClock: halfmove,
		enPassant:     enPassant,
		castling:      castling,
	}
	for f := range b.grid {
		for r := range b.grid[f] {
			b.grid[f][r] = noSlot
		}
	}
	for i := range b.pieces {
		b.pieces[i].Index = i
		b.pieces[i].Color = SlotColor(i)
		if at := b.pieces[i].Position; at.OnBoard() {
			b.grid[at.File][at.Rank] = int8(i)
		} else {
			b.pieces[i].Position = NoCoord
		}
	}
	b.hash = b.ComputeHash()
	return b
}

// Active returns the color to move.
func (b *Board) Active() Color { return b.active }

// Ply returns the number of half-moves played.
func (b *Board) Ply() int { return b.ply }

// FullmoveNumber returns the move number as written in FEN, starting at 1.
func (b *Board) FullmoveNumber() int { return b.ply/2 + 1 }

// HalfmoveClock returns the half-moves since the last capture or pawn move.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// Hash returns the incrementally maintained position hash.
func (b *Board) Hash() Hash { return b.hash }

// EnPassantFile returns the en-passant file and whether one is set.
func (b *Board) EnPassantFile() (int8, bool) { return b.enPassant, b.enPassant != noFile }

// CastleRights returns the castling wings still available to c.
func (b *Board) CastleRights(c Color) CastleRight { return b.castling[c] }

// Piece returns the piece in a slot.
func (b *Board) Piece(slot int) Piece { return b.pieces[slot] }

// Pieces returns a copy of all 32 slots.
func (b *Board) Pieces() [SlotCount]Piece { return b.pieces }

// King returns the king of color c.
func (b *Board) King(c Color) Piece { return b.pieces[kingSlot(c)] }

// PieceAt returns the piece on a square, if any.
func (b *Board) PieceAt(at Coord) (Piece, bool) {
	if !at.OnBoard() {
		return Piece{}, false
	}
	slot := b.grid[at.File][at.Rank]
	if slot == noSlot {
		return Piece{}, false
	}
	return b.pieces[slot], true
}

func (b *Board) empty(at Coord) bool { return b.grid[at.File][at.Rank] == noSlot }

// clone returns a scratch copy. All state is held in arrays, so a value copy
// is a deep copy.
func (b *Board) clone() *Board {
	c := *b
	return &c
}

// ==========================
// Mutation primitives (scratch boards only)
// ==========================

// relocate moves the piece in slot to the square, capturing any occupant,
// and keeps grid, hash and castling rights in sync.
func (b *Board) relocate(slot int, to Coord) {
	if occ := b.grid[to.File][to.Rank]; occ != noSlot && int(occ) != slot {
		b.capture(int(occ))
	}
	p := &b.pieces[slot]
	if p.OnBoard() {
		b.grid[p.Position.File][p.Position.Rank] = noSlot
		b.hash = b.hash.Xor(pieceHash(p.Color, p.Class, p.Position))
	}
	p.Position = to
	b.grid[to.File][to.Rank] = int8(slot)
	b.hash = b.hash.Xor(pieceHash(p.Color, p.Class, to))
	b.revokeFor(slot)
}

// capture takes the piece in slot off the board. The slot itself is kept.
func (b *Board) capture(slot int) {
	p := &b.pieces[slot]
	if !p.OnBoard() {
		return
	}
	b.grid[p.Position.File][p.Position.Rank] = noSlot
	b.hash = b.hash.Xor(pieceHash(p.Color, p.Class, p.Position))
	p.Position = NoCoord
	b.revokeFor(slot)
}

// promote changes the class of a placed piece.
func (b *Board) promote(slot int, class Class) {
	p := &b.pieces[slot]
	b.hash = b.hash.Xor(pieceHash(p.Color, p.Class, p.Position))
	p.Class = class
	b.hash = b.hash.Xor(pieceHash(p.Color, p.Class, p.Position))
}

// revokeFor drops the castling rights tied to a home king or rook slot once
// that slot moves or is captured.
func (b *Board) revokeFor(slot int) {
	var lost CastleRight
	switch slot {
	case whiteKing, blackKing:
		lost = CastleBoth
	case whiteKingRook, blackKingRook:
		lost = KingSide
	case whiteQueenRook, blackQueenRook:
		lost = QueenSide
	default:
		return
	}
	b.revoke(SlotColor(slot), lost)
}

func (b *Board) revoke(c Color, lost CastleRight) {
	lost &= b.castling[c]
	if lost == CastleNone {
		return
	}
	b.castling[c] &^= lost
	b.hash = b.hash.Xor(castleHash(c, lost))
}

// completePly finishes a play: the stale en-passant file is cleared, a fresh
// one is set after a double step, clocks advance and the turn passes.
func (b *Board) completePly(irreversible bool, doubleStep int8) {
	if b.enPassant != noFile {
		b.hash = b.hash.Xor(enPassantHash(b.enPassant))
		b.enPassant = noFile
	}
	if doubleStep != noFile {
		b.enPassant = doubleStep
		b.hash = b.hash.Xor(enPassantHash(doubleStep))
	}
	if irreversible {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	b.active = b.active.Other()
	b.ply++
}

// Validate checks the grid against the piece slots, the fixed slot colors and
// the incremental hash against a full recomputation.
func (b *Board) Validate() error {
	for i, p := range b.pieces {
		if p.Index != i {
			return fmt.Errorf("%w: slot %d holds index %d", ErrCorrupt, i, p.Index)
		}
		if p.Color != SlotColor(i) {
			return fmt.Errorf("%w: slot %d has color %s", ErrCorrupt, i, p.Color)
		}
		if p.OnBoard() && b.grid[p.Position.File][p.Position.Rank] != int8(i) {
			return fmt.Errorf("%w: slot %d at %s missing from grid", ErrCorrupt, i, p.Position)
		}
		if !p.OnBoard() && p.Position != NoCoord {
			return fmt.Errorf("%w: slot %d has position %v", ErrCorrupt, i, p.Position)
		}
	}
	for f := int8(0); f < 8; f++ {
		for r := int8(0); r < 8; r++ {
			slot := b.grid[f][r]
			if slot == noSlot {
				continue
			}
			if b.pieces[slot].Position != (Coord{f, r}) {
				return fmt.Errorf("%w: grid %s points at slot %d", ErrCorrupt, Coord{f, r}, slot)
			}
		}
	}
	if got := b.ComputeHash(); got != b.hash {
		return fmt.Errorf("%w: hash %x, recomputed %x", ErrCorrupt, b.hash, got)
	}
	return nil
}
