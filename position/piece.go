package position

// Coord is a square on the board addressed by file (a=0) and rank (1=0).
type Coord struct {
	File int8
	Rank int8
}

// NoCoord marks a piece that is no longer on the board.
var NoCoord = Coord{File: -1, Rank: -1}

// Direction vectors used for ray casting and stepping.
var (
	North     = Coord{0, 1}
	NorthEast = Coord{1, 1}
	East      = Coord{1, 0}
	SouthEast = Coord{1, -1}
	South     = Coord{0, -1}
	SouthWest = Coord{-1, -1}
	West      = Coord{-1, 0}
	NorthWest = Coord{-1, 1}
)

var (
	// Cardinal holds the rook directions.
	Cardinal = [4]Coord{North, East, South, West}
	// Intercardinal holds the bishop directions.
	Intercardinal = [4]Coord{NorthEast, SouthEast, SouthWest, NorthWest}
	// AllDirections holds the queen and king directions.
	AllDirections = [8]Coord{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
	// KnightOffsets holds the eight knight jumps.
	KnightOffsets = [8]Coord{
		{1, 2}, {-1, 2}, {2, 1}, {2, -1},
		{1, -2}, {-1, -2}, {-2, 1}, {-2, -1},
	}
)

// Add returns c translated by d.
func (c Coord) Add(d Coord) Coord { return Coord{c.File + d.File, c.Rank + d.Rank} }

// Sub returns the vector from d to c.
func (c Coord) Sub(d Coord) Coord { return Coord{c.File - d.File, c.Rank - d.Rank} }

// Mul scales c by k.
func (c Coord) Mul(k int8) Coord { return Coord{c.File * k, c.Rank * k} }

// OnBoard reports whether both axes are within 0..7.
func (c Coord) OnBoard() bool {
	return c.File >= 0 && c.File <= 7 && c.Rank >= 0 && c.Rank <= 7
}

// FileName returns the file letter ("a".."h").
func (c Coord) FileName() string { return string(rune('a' + c.File)) }

// RankName returns the rank digit ("1".."8").
func (c Coord) RankName() string { return string(rune('1' + c.Rank)) }

// String returns the algebraic square name, e.g. "e4", or "-" when off the board.
func (c Coord) String() string {
	if !c.OnBoard() {
		return "-"
	}
	return c.FileName() + c.RankName()
}

// ParseCoord converts an algebraic square name into a Coord.
func ParseCoord(s string) (Coord, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoCoord, false
	}
	return Coord{File: int8(s[0] - 'a'), Rank: int8(s[1] - '1')}, true
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// forward is the pawn step direction for the color.
func (c Color) forward() Coord {
	if c == White {
		return North
	}
	return South
}

// homeRank is the rank of the color's king row.
func (c Color) homeRank() int8 {
	if c == White {
		return 0
	}
	return 7
}

// Class is the colorless kind of a piece.
type Class uint8

const (
	Pawn Class = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionClasses lists the classes a pawn may promote to, in generation order.
var PromotionClasses = [4]Class{Knight, Bishop, Rook, Queen}

// Letter returns the notation letter of the class; pawns have none.
func (c Class) Letter() string {
	switch c {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

func (c Class) String() string {
	switch c {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "?"
	}
}

// Fixed slot indices. Slots 0-15 belong to White and 16-31 to Black; the
// home king and rook slots carry the castling rights.
const (
	SlotCount     = 32
	slotsPerColor = 16

	whiteQueenRook = 8
	whiteKing      = 12
	whiteKingRook  = 15
	blackQueenRook = 24
	blackKing      = 28
	blackKingRook  = 31
)

// SlotColor returns the color owning a slot index.
func SlotColor(slot int) Color {
	if slot < slotsPerColor {
		return White
	}
	return Black
}

// kingSlot returns the fixed slot of the color's king.
func kingSlot(c Color) int {
	if c == White {
		return whiteKing
	}
	return blackKing
}

// rookSlot returns the home slot of the color's rook on the given wing.
func rookSlot(c Color, side CastleRight) int {
	switch {
	case c == White && side == KingSide:
		return whiteKingRook
	case c == White:
		return whiteQueenRook
	case side == KingSide:
		return blackKingRook
	default:
		return blackQueenRook
	}
}

// Piece is one of the 32 fixed slots of a game. A captured piece keeps its slot
// with Position set to NoCoord.
type Piece struct {
	Color    Color
	Class    Class
	Index    int
	Position Coord
}

// OnBoard reports whether the piece still occupies a square.
func (p Piece) OnBoard() bool { return p.Position.OnBoard() }

// Char returns the layout character: uppercase for White, lowercase for Black.
func (p Piece) Char() byte {
	ch := byte('P')
	if p.Class != Pawn {
		ch = p.Class.Letter()[0]
	}
	if p.Color == Black {
		ch += 'a' - 'A'
	}
	return ch
}

var backRank = [8]Class{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StandardPieces returns the 32 slots of the standard starting position.
// Pawns take slots 0-7 (16-23) and the back rank 8-15 (24-31) from the a-file.
func StandardPieces() [SlotCount]Piece {
	var pieces [SlotCount]Piece
	for _, c := range [2]Color{White, Black} {
		base := int(c) * slotsPerColor
		pawnRank := int8(1)
		if c == Black {
			pawnRank = 6
		}
		for f := int8(0); f < 8; f++ {
			pieces[base+int(f)] = Piece{Color: c, Class: Pawn, Index: base + int(f), Position: Coord{f, pawnRank}}
			slot := base + 8 + int(f)
			pieces[slot] = Piece{Color: c, Class: backRank[f], Index: slot, Position: Coord{f, c.homeRank()}}
		}
	}
	return pieces
}
