package position

import "testing"

// flipped returns b with colors exchanged and the board turned half a circle.
func flipped(b *Board) *Board {
	var pieces [SlotCount]Piece
	for i, p := range b.pieces {
		j := (i + slotsPerColor) % SlotCount
		pieces[j] = Piece{Class: p.Class, Position: NoCoord}
		if p.OnBoard() {
			pieces[j].Position = Coord{File: 7 - p.Position.File, Rank: 7 - p.Position.Rank}
		}
	}
	ep := noFile
	if b.enPassant != noFile {
		ep = 7 - b.enPassant
	}
	castling := [2]CastleRight{b.castling[Black], b.castling[White]}
	return newBoard(pieces, b.active.Other(), castling, ep, b.halfmoveClock, b.ply)
}

func walk(t *testing.T, b *Board, depth int, visit func(*Board)) {
	t.Helper()
	visit(b)
	if depth == 0 {
		return
	}
	for _, p := range b.Plays() {
		walk(t, p.Board, depth-1, visit)
	}
}

func TestIncrementalHashAndGrid(t *testing.T) {
	fens := []string{
		FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		walk(t, b, 2, func(nb *Board) {
			if err := nb.Validate(); err != nil {
				t.Fatalf("%s: %v", nb.FEN(), err)
			}
		})
	}
}

func TestHashLaneSymmetry(t *testing.T) {
	fens := []string{
		FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		walk(t, b, 2, func(nb *Board) {
			twin := flipped(nb)
			if twin.Hash() != nb.Hash().Swap() {
				t.Fatalf("%s: twin hash %x, want %x", nb.FEN(), twin.Hash(), nb.Hash().Swap())
			}
		})
	}
}

func TestDoubleFlipRestoresHash(t *testing.T) {
	b := NewBoard(StandardPieces())
	h := b.Hash()
	// Turning the board swaps the king and queen files, so the start
	// position is not its own twin.
	if h.Lane(0) == h.Lane(1) {
		t.Fatalf("lanes unexpectedly equal: %x", h)
	}
	if flipped(flipped(b)).Hash() != h {
		t.Fatalf("double flip changed the hash")
	}
}

func TestHashIgnoresSideToMove(t *testing.T) {
	white := NewBoard(StandardPieces())
	black := newBoard(StandardPieces(), Black, [2]CastleRight{CastleBoth, CastleBoth}, noFile, 0, 1)
	if white.Hash() != black.Hash() {
		t.Fatalf("side to move changed the hash")
	}
}

func TestHashDistinguishesPositions(t *testing.T) {
	b := NewBoard(StandardPieces())
	seen := map[Hash]string{b.Hash(): b.FEN()}
	for _, p := range b.Plays() {
		if prev, dup := seen[p.Board.Hash()]; dup {
			t.Fatalf("%s collides with %s", p.Board.FEN(), prev)
		}
		seen[p.Board.Hash()] = p.Board.FEN()
	}
	h := b.Hash()
	if h.Xor(h) != (Hash{}) {
		t.Fatalf("xor is not self-inverse")
	}
}

func TestHashKeysDistinct(t *testing.T) {
	seen := make(map[uint64]int, len(hashKeys))
	for i, k := range hashKeys {
		if k == 0 {
			t.Fatalf("key %d is zero", i)
		}
		if j, dup := seen[k]; dup {
			t.Fatalf("keys %d and %d are equal", j, i)
		}
		seen[k] = i
	}
}
