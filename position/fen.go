package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN wraps every decoding failure of ParseFEN.
var ErrInvalidFEN = errors.New("position: invalid FEN")

func invalidFEN(reason string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFEN, fmt.Sprintf(reason, args...))
}

// classFromChar converts a FEN letter (either case) into a class.
func classFromChar(ch byte) (Class, bool) {
	switch ch | ('a' - 'A') {
	case 'p':
		return Pawn, true
	case 'n':
		return Knight, true
	case 'b':
		return Bishop, true
	case 'r':
		return Rook, true
	case 'q':
		return Queen, true
	case 'k':
		return King, true
	default:
		return 0, false
	}
}

type placement struct {
	class Class
	at    Coord
}

// ParseFEN parses a FEN string and returns a new Board set up to that position.
// The half-move clock and full-move number may be omitted.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, invalidFEN("expected 4 to 6 fields, got %d", len(fields))
	}

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, invalidFEN("expected 8 ranks, got %d", len(ranks))
	}
	var placed [2][]placement
	for i, rankStr := range ranks {
		rank := int8(7 - i)
		file := int8(0)
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int8(ch - '0')
				continue
			}
			class, ok := classFromChar(ch)
			if !ok {
				return nil, invalidFEN("unrecognized piece character %q", ch)
			}
			if file >= 8 {
				return nil, invalidFEN("rank %d has more than 8 squares", rank+1)
			}
			c := White
			if ch >= 'a' {
				c = Black
			}
			placed[c] = append(placed[c], placement{class: class, at: Coord{File: file, Rank: rank}})
			file++
		}
		if file != 8 {
			return nil, invalidFEN("rank %d does not have 8 squares", rank+1)
		}
	}

	// 2. Side to move
	var active Color
	switch fields[1] {
	case "w":
		active = White
	case "b":
		active = Black
	default:
		return nil, invalidFEN("side to move must be 'w' or 'b'")
	}

	// 3. Castling rights
	var castling [2]CastleRight
	if fields[2] != "-" {
		for j := 0; j < len(fields[2]); j++ {
			switch fields[2][j] {
			case 'K':
				castling[White] |= KingSide
			case 'Q':
				castling[White] |= QueenSide
			case 'k':
				castling[Black] |= KingSide
			case 'q':
				castling[Black] |= QueenSide
			default:
				return nil, invalidFEN("invalid castling rights character %q", fields[2][j])
			}
		}
	}

	// 4. En passant target square; only its file is kept
	enPassant := noFile
	if fields[3] != "-" {
		sq, ok := ParseCoord(fields[3])
		if !ok {
			return nil, invalidFEN("invalid en passant square %q", fields[3])
		}
		if sq.Rank != enPassantRank(active)+active.forward().Rank {
			return nil, invalidFEN("en passant square %s is not on the capture rank", sq)
		}
		enPassant = sq.File
	}

	// 5. Halfmove clock, 6. Fullmove number
	halfmove, fullmove := 0, 1
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, invalidFEN("halfmove clock %q is not a number", fields[4])
		}
		halfmove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 0 {
			return nil, invalidFEN("fullmove number %q is not a number", fields[5])
		}
		if n > 0 {
			fullmove = n
		}
	}

	var pieces [SlotCount]Piece
	for _, c := range [2]Color{White, Black} {
		if err := assignSlots(&pieces, c, placed[c], castling[c]); err != nil {
			return nil, err
		}
	}
	ply := (fullmove-1)*2 + int(active)
	return newBoard(pieces, active, castling, enPassant, halfmove, ply), nil
}

// assignSlots places one color's pieces into its 16 slots: the king into its
// fixed slot, corner rooks into the castling rook slots, then pawns and the
// remaining pieces into free slots in order. Unused slots become captured
// placeholders.
func assignSlots(pieces *[SlotCount]Piece, c Color, placed []placement, rights CastleRight) error {
	if len(placed) > slotsPerColor {
		return invalidFEN("%s has %d pieces", c, len(placed))
	}
	base := int(c) * slotsPerColor
	var used [slotsPerColor]bool
	put := func(slot int, pl placement) {
		pieces[slot] = Piece{Color: c, Class: pl.class, Index: slot, Position: pl.at}
		used[slot-base] = true
	}

	kings := 0
	var rest []placement
	for _, pl := range placed {
		switch {
		case pl.class == King:
			kings++
			put(kingSlot(c), pl)
		case pl.class == Rook && pl.at == Coord{File: 0, Rank: c.homeRank()}:
			put(rookSlot(c, QueenSide), pl)
		case pl.class == Rook && pl.at == Coord{File: 7, Rank: c.homeRank()}:
			put(rookSlot(c, KingSide), pl)
		default:
			rest = append(rest, pl)
		}
	}
	if kings != 1 {
		return invalidFEN("%s has %d kings", c, kings)
	}

	homeKing := pieces[kingSlot(c)].Position == Coord{File: 4, Rank: c.homeRank()}
	for _, side := range [2]CastleRight{KingSide, QueenSide} {
		if rights&side != 0 && (!homeKing || !used[rookSlot(c, side)-base]) {
			return invalidFEN("%s %s castling without king and rook on home squares", c, side)
		}
	}

	next := 0
	fill := func(pl placement) {
		for used[next] {
			next++
		}
		put(base+next, pl)
	}
	for _, pl := range rest {
		if pl.class == Pawn {
			fill(pl)
		}
	}
	for _, pl := range rest {
		if pl.class != Pawn {
			fill(pl)
		}
	}
	for i := range used {
		if !used[i] {
			pieces[base+i] = Piece{Color: c, Class: Pawn, Index: base + i, Position: NoCoord}
		}
	}
	return nil
}

// Layout returns the board-layout field of FEN: rank 8 down to rank 1,
// ranks joined by '/', empty runs as digit counts.
func (b *Board) Layout() string {
	var sb strings.Builder
	for rank := int8(7); rank >= 0; rank-- {
		emptyCount := 0
		for file := int8(0); file < 8; file++ {
			p, ok := b.PieceAt(Coord{File: file, Rank: rank})
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Char())
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// FEN produces the full six-field FEN string of the board.
func (b *Board) FEN() string {
	var sb strings.Builder

	// 1. Piece placement
	sb.WriteString(b.Layout())
	sb.WriteByte(' ')

	// 2. Side to move
	if b.active == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	if b.castling[White] == CastleNone && b.castling[Black] == CastleNone {
		sb.WriteByte('-')
	} else {
		if b.castling[White]&KingSide != 0 {
			sb.WriteByte('K')
		}
		if b.castling[White]&QueenSide != 0 {
			sb.WriteByte('Q')
		}
		if b.castling[Black]&KingSide != 0 {
			sb.WriteByte('k')
		}
		if b.castling[Black]&QueenSide != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	// 4. En passant square: behind the pawn that just double-stepped
	if b.enPassant != noFile {
		target := Coord{File: b.enPassant, Rank: enPassantRank(b.active) + b.active.forward().Rank}
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	// 5. Halfmove clock, 6. Fullmove number
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullmoveNumber()))
	return sb.String()
}
