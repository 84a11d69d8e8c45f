package san_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-plays/position"
	"chess-plays/san"
)

func labelsFor(t *testing.T, fen string) map[string]*position.Play {
	t.Helper()
	b, err := position.ParseFEN(fen)
	require.NoError(t, err)
	return san.Disambiguate(b.Plays())
}

func TestStartPositionLabels(t *testing.T) {
	m := labelsFor(t, position.FENStartPos)
	want := []string{
		"Na3", "Nc3", "Nf3", "Nh3",
		"a3", "a4", "b3", "b4", "c3", "c4", "d3", "d4",
		"e3", "e4", "f3", "f4", "g3", "g4", "h3", "h4",
	}
	assert.Equal(t, want, san.Labels(m))
	assert.Equal(t, "g1f3", m["Nf3"].UCI())
	assert.Equal(t, "e2e4", m["e4"].UCI())
}

func TestCastleLabels(t *testing.T) {
	m := labelsFor(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.Contains(t, m, san.KingsideCastle)
	require.Contains(t, m, san.QueensideCastle)
	assert.Equal(t, position.KingsideCastle, m["O-O"].Kind)
	assert.Equal(t, position.QueensideCastle, m["O-O-O"].Kind)
	// The king's two-square step is only reachable through the castle label.
	assert.NotContains(t, m, "Kg1")
	assert.NotContains(t, m, "Kc1")
}

func TestFileDisambiguation(t *testing.T) {
	m := labelsFor(t, "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	require.Contains(t, m, "Nbc3")
	require.Contains(t, m, "Nec3")
	assert.NotContains(t, m, "Nc3")
	assert.Equal(t, "b1c3", m["Nbc3"].UCI())
	assert.Equal(t, "e2c3", m["Nec3"].UCI())
	// Promotion captures carry the letter with no separator.
	for _, l := range []string{"dxc8Q", "dxc8R", "dxc8B", "dxc8N"} {
		assert.Contains(t, m, l)
	}
}

func TestRankDisambiguation(t *testing.T) {
	m := labelsFor(t, "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1")
	for _, l := range []string{"R1a3", "R5a3", "R1a2", "R5a2", "R1a4", "R5a4"} {
		assert.Contains(t, m, l)
	}
	for _, l := range []string{"Ra3", "Raa3", "Ra2", "Raa2"} {
		assert.NotContains(t, m, l)
	}
	assert.Equal(t, "a5a3", m["R5a3"].UCI())
	// Only one rook reaches b5.
	assert.Contains(t, m, "Rb5")
}

func TestSquareDisambiguation(t *testing.T) {
	m := labelsFor(t, "4k3/8/8/8/8/Q1Q5/8/Q1Q1K3 w - - 0 1")
	for _, l := range []string{"Qa1b2", "Qa3b2", "Qc1b2", "Qc3b2"} {
		require.Contains(t, m, l)
		assert.Equal(t, l[1:3], m[l].From().String())
	}
	for _, l := range []string{"Qb2", "Qab2", "Qcb2", "Q1b2", "Q3b2"} {
		assert.NotContains(t, m, l)
	}
}

func TestPawnLabels(t *testing.T) {
	m := labelsFor(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	want := []string{
		"Kg1", "Kg2", "Kh2",
		"a8B", "a8N", "a8Q", "a8R",
		"axb8B", "axb8N", "axb8Q", "axb8R",
	}
	assert.Equal(t, want, san.Labels(m))
	assert.Equal(t, position.PromotionCapture, m["axb8Q"].Kind)

	ep := labelsFor(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	require.Contains(t, ep, "exd6")
	assert.Equal(t, position.EnPassant, ep["exd6"].Kind)
	assert.Contains(t, ep, "e6")
}

func TestLabelLevels(t *testing.T) {
	b, err := position.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	for _, p := range b.Plays() {
		if p.Kind != position.KingsideCastle {
			continue
		}
		l, ok := san.Label(p, 0)
		assert.True(t, ok)
		assert.Equal(t, "O-O", l)
		_, ok = san.Label(p, 1)
		assert.False(t, ok, "castles have no longer form")
	}
}

// notnilLabels lists the SAN moves of an independent library with check marks
// and promotion separators removed.
func notnilLabels(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := chess.FEN(fen)
	require.NoError(t, err)
	g := chess.NewGame(opt)
	var out []string
	for _, m := range g.ValidMoves() {
		s := chess.AlgebraicNotation{}.Encode(g.Position(), m)
		s = strings.NewReplacer("+", "", "#", "", "=", "").Replace(s)
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func TestLabelsMatchNotnil(t *testing.T) {
	fens := []string{
		position.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/R7/8/8/8/R3K3 w - - 0 1",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			assert.Equal(t, notnilLabels(t, fen), san.Labels(labelsFor(t, fen)))
		})
	}
}
