package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staleboards/board"
)

func parseBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.ParseFEN(fen)
	require.NoError(t, err)
	return b
}

func TestEvaluateKingCount(t *testing.T) {
	// No black king at all.
	b := parseBoard(t, "8/8/8/8/8/8/P7/8 w - - 0 1")
	assert.Equal(t, RejectKingCount, Evaluate(b))

	// Two black kings.
	b = parseBoard(t, "k6k/8/8/8/8/8/8/8 w - - 0 1")
	assert.Equal(t, RejectKingCount, Evaluate(b))
}

func TestEvaluateLoneKingsPass(t *testing.T) {
	// Kings far apart, no pawns: filters 2-5 are vacuous and the board is kept.
	b := parseBoard(t, "7k/8/8/8/8/8/8/K7 w - - 0 1")
	assert.Equal(t, Accepted, Evaluate(b))
	assert.True(t, IsCritical(b))
}

func TestEvaluateRookOnOpenFileRejected(t *testing.T) {
	// White rook shares an open file with the black king: mutual-attack
	// filter fires before anything else can pass the board.
	b := parseBoard(t, "4k3/8/8/8/4R3/8/8/8 w - - 0 1")
	assert.Equal(t, RejectAttack, Evaluate(b))
}

func TestEvaluateDeliverableCheckRejected(t *testing.T) {
	// Quiet board, but Ra1-a8 (or Ra1-h1) would check the king on h8.
	b := parseBoard(t, "7k/8/8/8/8/8/8/R7 w - - 0 1")
	assert.Equal(t, RejectCheck, Evaluate(b))
}

func TestEvaluatePassedPawnRejected(t *testing.T) {
	// A lone white pawn with no enemy pawns is passed by definition.
	b := parseBoard(t, "7k/8/8/8/8/8/P7/8 w - - 0 1")
	assert.Equal(t, RejectPassedPawn, Evaluate(b))
}

func TestEvaluatePawnIslandsRejected(t *testing.T) {
	// White pawns on files a, b, e: two islands. The mirrored black pawns
	// keep every pawn un-passed so the chain reaches the island filter.
	b := parseBoard(t, "7k/pp2p3/8/8/8/8/PP2P3/8 w - - 0 1")
	assert.Equal(t, RejectPawnIslands, Evaluate(b))
}

func TestCanDeliverCheckSelfCheckDiscard(t *testing.T) {
	// The white rook on e4 is pinned along rank 4: leaving the rank would
	// expose the white king to the black rook on h4. Capturing the knight
	// on e6 would check the king behind it, but that move and every other
	// e-file move is discarded; the rank-4 moves it keeps check nothing.
	b := parseBoard(t, "4k3/8/4n3/8/K3R2r/8/8/8 w - - 0 1")
	assert.False(t, CanDeliverCheck(b))

	// Without the pinning rook, Rxe6 goes through and discovers the king.
	b = parseBoard(t, "4k3/8/4n3/8/K3R3/8/8/8 w - - 0 1")
	assert.True(t, CanDeliverCheck(b))
}

func TestCanDeliverCheckWithoutWhiteKing(t *testing.T) {
	// No white king: the self-check discard is vacuous and every
	// pseudo-legal move is considered.
	b := parseBoard(t, "7k/8/8/8/8/8/8/R7 w - - 0 1")
	assert.True(t, CanDeliverCheck(b))
}

func TestHasPassedPawn(t *testing.T) {
	// Facing pawns on the same file block each other.
	b := parseBoard(t, "8/p7/8/8/8/8/P7/8 w - - 0 1")
	assert.False(t, HasPassedPawn(b))

	// An adjacent-file enemy pawn ahead also denies passage.
	b = parseBoard(t, "8/1p6/8/8/8/8/P7/8 w - - 0 1")
	assert.False(t, HasPassedPawn(b))

	// An enemy pawn behind does not: nothing stands ahead of the white
	// pawn on b4, so it is passed despite the black pawn on a2.
	b = parseBoard(t, "8/8/8/8/1P6/8/p7/8 w - - 0 1")
	assert.True(t, HasPassedPawn(b))

	// Front spans cover adjacent files in both directions: a4 and b2 each
	// stand ahead of the other, so neither pawn is passed.
	b = parseBoard(t, "8/8/8/8/p7/8/1P6/8 w - - 0 1")
	assert.False(t, HasPassedPawn(b))
}

func TestWhitePawnIslands(t *testing.T) {
	cases := []struct {
		fen  string
		want int
	}{
		{"8/8/8/8/8/8/8/8 w - - 0 1", 0},
		{"8/8/8/8/8/8/P7/8 w - - 0 1", 1},
		{"8/8/8/8/8/8/PP2P3/8 w - - 0 1", 2},
		{"8/8/8/8/8/8/P1P1P1P1/8 w - - 0 1", 4},
		{"8/8/8/8/4P3/8/PPP5/8 w - - 0 1", 2},
	}
	for _, tc := range cases {
		b := parseBoard(t, tc.fen)
		assert.Equal(t, tc.want, WhitePawnIslands(b), "fen %s", tc.fen)
	}
}
