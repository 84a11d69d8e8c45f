package bench

import (
	"testing"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"

	"chess-plays/position"
)

const fenKiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func benchPerft(b *testing.B, fen string, depth int) {
	board, err := position.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = position.Perft(board, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, position.FENStartPos, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, fenKiwipete, 3)
}

// Bitboard baseline for the same workload.
func benchReferencePerft(b *testing.B, fen string, depth int) {
	board, err := gm.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gm.Perft(board, depth)
	}
}

func BenchmarkReferencePerft_Initial_D4(b *testing.B) {
	benchReferencePerft(b, position.FENStartPos, 4)
}

func BenchmarkReferencePerft_Kiwipete_D3(b *testing.B) {
	benchReferencePerft(b, fenKiwipete, 3)
}
