package position

import "strings"

// PlayKind is the closed set of play shapes.
type PlayKind uint8

const (
	Move PlayKind = iota
	Capture
	Promotion
	PromotionCapture
	EnPassant
	KingsideCastle
	QueensideCastle
)

func (k PlayKind) String() string {
	switch k {
	case Move:
		return "move"
	case Capture:
		return "capture"
	case Promotion:
		return "promotion"
	case PromotionCapture:
		return "promotion-capture"
	case EnPassant:
		return "en-passant"
	case KingsideCastle:
		return "kingside-castle"
	case QueensideCastle:
		return "queenside-castle"
	default:
		return "unknown"
	}
}

// Play is one legal play together with the board it produces.
//
// Piece is the mover as it stood before the play (the king for castles).
// Occupier is the captured piece for Capture, PromotionCapture and EnPassant;
// for en passant it stands beside the mover, not on Destination. Promotion is
// only meaningful for the two promotion kinds.
type Play struct {
	Kind        PlayKind
	Piece       Piece
	Occupier    Piece
	Destination Coord
	Promotion   Class
	Board       *Board
}

// From returns the origin square of the mover.
func (p Play) From() Coord { return p.Piece.Position }

// IsCapture reports whether the play removes an enemy piece.
func (p Play) IsCapture() bool {
	return p.Kind == Capture || p.Kind == PromotionCapture || p.Kind == EnPassant
}

// IsPromotion reports whether the play promotes a pawn.
func (p Play) IsPromotion() bool {
	return p.Kind == Promotion || p.Kind == PromotionCapture
}

// UCI returns the coordinate notation of the play, e.g. "e2e4", "e7e8q" or
// "e1g1" for a king-side castle.
func (p Play) UCI() string {
	s := p.From().String() + p.Destination.String()
	if p.IsPromotion() {
		s += strings.ToLower(p.Promotion.Letter())
	}
	return s
}

func (p Play) String() string { return p.UCI() }
