package position

// Plays returns every legal play for the side to move. Each candidate is tried
// on a scratch copy and dropped if it leaves the mover's king attacked. An
// empty result means checkmate or stalemate; InCheck tells them apart.
func (b *Board) Plays() []Play {
	plays := make([]Play, 0, 48)
	first := int(b.active) * slotsPerColor
	for slot := first; slot < first+slotsPerColor; slot++ {
		p := b.pieces[slot]
		if !p.OnBoard() {
			continue
		}
		switch p.Class {
		case Pawn:
			plays = b.pawnPlays(p, plays)
		case Knight:
			plays = b.stepPlays(p, KnightOffsets[:], plays)
		case Bishop:
			plays = b.slidePlays(p, Intercardinal[:], plays)
		case Rook:
			plays = b.slidePlays(p, Cardinal[:], plays)
		case Queen:
			plays = b.slidePlays(p, AllDirections[:], plays)
		case King:
			plays = b.stepPlays(p, AllDirections[:], plays)
		}
	}

	rights := b.castling[b.active]
	if rights&KingSide != 0 {
		if nb := b.castle(KingSide); nb != nil {
			plays = append(plays, b.castlePlay(KingsideCastle, nb))
		}
	}
	if rights&QueenSide != 0 {
		if nb := b.castle(QueenSide); nb != nil {
			plays = append(plays, b.castlePlay(QueensideCastle, nb))
		}
	}
	return plays
}

// trial moves the piece on a scratch copy and returns it, or nil when the
// mover's king would be left attacked. The turn is not yet completed.
func (b *Board) trial(slot int, to Coord) *Board {
	nb := b.clone()
	nb.relocate(slot, to)
	if nb.Attacked(b.active) {
		return nil
	}
	return nb
}

// slidePlays walks each ray one square at a time, stopping at the edge or the
// first occupied square.
func (b *Board) slidePlays(p Piece, dirs []Coord, plays []Play) []Play {
	for _, dir := range dirs {
		for to := p.Position.Add(dir); to.OnBoard(); to = to.Add(dir) {
			occ, taken := b.PieceAt(to)
			if taken && occ.Color == p.Color {
				break
			}
			plays = b.appendSimple(p, to, occ, taken, plays)
			if taken {
				break
			}
		}
	}
	return plays
}

// stepPlays tries a single step along each offset.
func (b *Board) stepPlays(p Piece, offsets []Coord, plays []Play) []Play {
	for _, off := range offsets {
		to := p.Position.Add(off)
		if !to.OnBoard() {
			continue
		}
		occ, taken := b.PieceAt(to)
		if taken && occ.Color == p.Color {
			continue
		}
		plays = b.appendSimple(p, to, occ, taken, plays)
	}
	return plays
}

// appendSimple appends a plain move or capture of a non-pawn piece if legal.
func (b *Board) appendSimple(p Piece, to Coord, occ Piece, taken bool, plays []Play) []Play {
	nb := b.trial(p.Index, to)
	if nb == nil {
		return plays
	}
	nb.completePly(taken, noFile)
	play := Play{Kind: Move, Piece: p, Destination: to, Board: nb}
	if taken {
		play.Kind = Capture
		play.Occupier = occ
	}
	return append(plays, play)
}

// ==========================
// Pawns
// ==========================

func pawnStartRank(c Color) int8 {
	if c == White {
		return 1
	}
	return 6
}

// enPassantRank is the rank a pawn must stand on to capture en passant.
func enPassantRank(c Color) int8 {
	if c == White {
		return 4
	}
	return 3
}

func (b *Board) pawnPlays(p Piece, plays []Play) []Play {
	fwd := p.Color.forward()
	lastRank := p.Color.Other().homeRank()

	// Pushes
	one := p.Position.Add(fwd)
	if one.OnBoard() && b.empty(one) {
		if nb := b.trial(p.Index, one); nb != nil {
			if one.Rank == lastRank {
				plays = appendPromotions(plays, Promotion, p, Piece{}, one, nb)
			} else {
				nb.completePly(true, noFile)
				plays = append(plays, Play{Kind: Move, Piece: p, Destination: one, Board: nb})
			}
		}
		two := one.Add(fwd)
		if p.Position.Rank == pawnStartRank(p.Color) && b.empty(two) {
			if nb := b.trial(p.Index, two); nb != nil {
				nb.completePly(true, p.Position.File)
				plays = append(plays, Play{Kind: Move, Piece: p, Destination: two, Board: nb})
			}
		}
	}

	// Diagonal captures
	for _, df := range [2]int8{-1, 1} {
		to := Coord{File: p.Position.File + df, Rank: one.Rank}
		occ, taken := b.PieceAt(to)
		if !taken || occ.Color == p.Color {
			continue
		}
		nb := b.trial(p.Index, to)
		if nb == nil {
			continue
		}
		if to.Rank == lastRank {
			plays = appendPromotions(plays, PromotionCapture, p, occ, to, nb)
			continue
		}
		nb.completePly(true, noFile)
		plays = append(plays, Play{Kind: Capture, Piece: p, Occupier: occ, Destination: to, Board: nb})
	}

	// En passant: the victim stands beside the mover on the mover's rank.
	if b.enPassant == noFile || p.Position.Rank != enPassantRank(p.Color) {
		return plays
	}
	if df := p.Position.File - b.enPassant; df != 1 && df != -1 {
		return plays
	}
	victim, ok := b.PieceAt(Coord{File: b.enPassant, Rank: p.Position.Rank})
	if !ok || victim.Color == p.Color || victim.Class != Pawn {
		return plays
	}
	to := Coord{File: b.enPassant, Rank: one.Rank}
	if !b.empty(to) {
		return plays
	}
	nb := b.clone()
	nb.capture(victim.Index)
	nb.relocate(p.Index, to)
	if nb.Attacked(p.Color) {
		return plays
	}
	nb.completePly(true, noFile)
	return append(plays, Play{Kind: EnPassant, Piece: p, Occupier: victim, Destination: to, Board: nb})
}

// appendPromotions fans a legal pawn arrival on the last rank out into one
// play per promotion class.
func appendPromotions(plays []Play, kind PlayKind, pawn, occ Piece, to Coord, trial *Board) []Play {
	for _, class := range PromotionClasses {
		nb := trial.clone()
		nb.promote(pawn.Index, class)
		nb.completePly(true, noFile)
		plays = append(plays, Play{Kind: kind, Piece: pawn, Occupier: occ, Destination: to, Promotion: class, Board: nb})
	}
	return plays
}

// ==========================
// Castling
// ==========================

// castle returns the board after castling on the given wing, or nil if any
// precondition fails: the squares between king and rook must be empty and
// the king may not be attacked on its start square or on any square it steps
// through or lands on.
func (b *Board) castle(side CastleRight) *Board {
	c := b.active
	rank := c.homeRank()
	king := b.pieces[kingSlot(c)]
	rook := b.pieces[rookSlot(c, side)]

	home := Coord{File: 4, Rank: rank}
	rookHome := Coord{File: 0, Rank: rank}
	step := West
	if side == KingSide {
		rookHome.File = 7
		step = East
	}
	if king.Position != home || rook.Class != Rook || rook.Position != rookHome {
		return nil
	}
	for at := home.Add(step); at != rookHome; at = at.Add(step) {
		if !b.empty(at) {
			return nil
		}
	}
	if b.Attacked(c) {
		return nil
	}

	nb := b.clone()
	landing := home.Add(step.Mul(2))
	for at := home.Add(step); ; at = at.Add(step) {
		nb.relocate(king.Index, at)
		if nb.Attacked(c) {
			return nil
		}
		if at == landing {
			break
		}
	}
	nb.relocate(rook.Index, home.Add(step))
	nb.completePly(false, noFile)
	return nb
}

func (b *Board) castlePlay(kind PlayKind, nb *Board) Play {
	king := b.pieces[kingSlot(b.active)]
	return Play{Kind: kind, Piece: king, Destination: nb.pieces[king.Index].Position, Board: nb}
}
