package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-plays/game"
	"chess-plays/position"
)

func newGame(t *testing.T, fen string) *game.Game {
	t.Helper()
	b, err := position.ParseFEN(fen)
	require.NoError(t, err)
	return game.New(b)
}

func playAll(t *testing.T, g *game.Game, labels ...string) {
	t.Helper()
	for _, l := range labels {
		require.NoError(t, g.Play(l), "playing %s", l)
	}
}

func TestFoolsMate(t *testing.T) {
	g := newGame(t, position.FENStartPos)
	playAll(t, g, "f3", "e5", "g4")
	assert.Equal(t, game.InProgress, g.Status())
	playAll(t, g, "Qh4")
	assert.Equal(t, game.Checkmate, g.Status())
	assert.Empty(t, g.Labels())
	assert.True(t, g.Board().InCheck())
}

func TestStalemate(t *testing.T) {
	g := newGame(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.Equal(t, game.Stalemate, g.Status())
	assert.False(t, g.Board().InCheck())
}

func TestThreefoldRepetition(t *testing.T) {
	g := newGame(t, position.FENStartPos)
	shuffle := []string{"Nf3", "Nf6", "Ng1", "Ng8"}
	playAll(t, g, shuffle...)
	assert.Equal(t, game.InProgress, g.Status())
	playAll(t, g, shuffle[:3]...)
	assert.Equal(t, game.InProgress, g.Status())
	playAll(t, g, shuffle[3])
	assert.Equal(t, game.Repetition, g.Status())

	history := g.History()
	require.Len(t, history, 9)
	assert.Equal(t, history[0], history[4])
	assert.Equal(t, history[0], history[8])
}

func TestRepetitionIgnoresUnusableEnPassant(t *testing.T) {
	g := newGame(t, "4k3/8/8/8/8/8/4P3/R3K3 w - - 0 1")
	// The double step sets an en-passant file no black pawn can use.
	playAll(t, g, "e4")
	shuffle := []string{"Kd8", "Ra2", "Ke8", "Ra1"}
	playAll(t, g, shuffle...)
	assert.Equal(t, game.InProgress, g.Status())
	playAll(t, g, shuffle...)
	assert.Equal(t, game.Repetition, g.Status())

	history := g.History()
	require.Len(t, history, 10)
	assert.NotEqual(t, history[1], history[5], "board hashes still carry the en-passant file")
	assert.Equal(t, history[5], history[9])
}

func TestRepetitionKeepsUsableEnPassant(t *testing.T) {
	g := newGame(t, "4k3/8/8/8/3p4/8/4P3/R3K3 w - - 0 1")
	// After e4 black may capture en passant, so that position differs from the
	// later ones with the same placement.
	playAll(t, g, "e4")
	require.Contains(t, g.Labels(), "dxe3")
	shuffle := []string{"Kd8", "Ra2", "Ke8", "Ra1"}
	playAll(t, g, shuffle...)
	playAll(t, g, shuffle...)
	assert.Equal(t, game.InProgress, g.Status())
	playAll(t, g, shuffle...)
	assert.Equal(t, game.Repetition, g.Status())
}

func TestFiftyMoveRule(t *testing.T) {
	g := newGame(t, "4k3/8/8/8/8/8/8/R3K3 w - - 99 60")
	assert.Equal(t, game.InProgress, g.Status())
	playAll(t, g, "Ra2")
	assert.Equal(t, 100, g.Board().HalfmoveClock())
	assert.Equal(t, game.FiftyMove, g.Status())
}

func TestUnknownLabel(t *testing.T) {
	g := newGame(t, position.FENStartPos)
	before := g.Board()

	for _, l := range []string{"e5", "Nc6", "O-O", "Ngf3", ""} {
		err := g.Play(l)
		assert.ErrorIs(t, err, game.ErrUnknownLabel, "label %q", l)
	}
	assert.Same(t, before, g.Board())
	assert.Len(t, g.Boards(), 1)
}

func TestLookupAndBoards(t *testing.T) {
	g := newGame(t, position.FENStartPos)
	p, ok := g.Lookup("e4")
	require.True(t, ok)
	assert.Equal(t, "e2e4", p.UCI())

	playAll(t, g, "e4")
	assert.Same(t, p.Board, g.Board())
	boards := g.Boards()
	require.Len(t, boards, 2)
	assert.Equal(t, position.FENStartPos, boards[0].FEN())
	assert.Equal(t, position.Black, g.Board().Active())
	assert.Contains(t, g.Labels(), "e5")
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "checkmate", game.Checkmate.String())
	assert.Equal(t, "fifty-move rule", game.FiftyMove.String())
}
