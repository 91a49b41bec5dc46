package gen

import (
	"math/bits"

	"staleboards/board"
)

// RejectReason identifies which filter rejected a completed board, or
// Accepted if the board survived the whole chain.
type RejectReason uint8

const (
	Accepted RejectReason = iota
	RejectKingCount
	RejectAttack
	RejectCheck
	RejectPassedPawn
	RejectPawnIslands

	numRejectReasons
)

func (r RejectReason) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectKingCount:
		return "king_count"
	case RejectAttack:
		return "piece_under_attack"
	case RejectCheck:
		return "deliverable_check"
	case RejectPassedPawn:
		return "passed_pawn"
	case RejectPawnIslands:
		return "pawn_islands"
	default:
		return "unknown"
	}
}

// Evaluate runs the five positional filters against a completed board in
// fixed order, short-circuiting on the first failure. A board is kept only
// when it has exactly one Black king, no piece of either side is attacked,
// White has no move that delivers check, no pawn is passed, and White's
// pawns form at most one island.
func Evaluate(b *board.Board) RejectReason {
	if bits.OnesCount64(b.PieceBitboard(board.Black, board.King)) != 1 {
		return RejectKingCount
	}
	if b.AnyPieceAttacked() {
		return RejectAttack
	}
	if CanDeliverCheck(b) {
		return RejectCheck
	}
	if HasPassedPawn(b) {
		return RejectPassedPawn
	}
	if WhitePawnIslands(b) > 1 {
		return RejectPawnIslands
	}
	return Accepted
}

// IsCritical reports whether the board survives the whole filter chain.
func IsCritical(b *board.Board) bool { return Evaluate(b) == Accepted }

// CanDeliverCheck reports whether White has a pseudo-legal move that leaves
// the Black king in check. Moves that would leave White's own king in check
// are discarded first; with no White king on the board that step is vacuous.
func CanDeliverCheck(b *board.Board) bool {
	moves := b.WhiteMoves(make([]board.Move, 0, 64))
	for _, m := range moves {
		nb := b.Applied(m)
		if nb.InCheck(board.White) {
			continue
		}
		if nb.InCheck(board.Black) {
			return true
		}
	}
	return false
}

// HasPassedPawn reports whether any pawn of either side is passed: no enemy
// pawn on its own or an adjacent file on any rank strictly ahead of it in
// its direction of advance.
func HasPassedPawn(b *board.Board) bool {
	whitePawns := b.PieceBitboard(board.White, board.Pawn)
	blackPawns := b.PieceBitboard(board.Black, board.Pawn)

	for pawns := whitePawns; pawns != 0; pawns &= pawns - 1 {
		sq := board.Square(bits.TrailingZeros64(pawns))
		if frontSpan(sq, board.White)&blackPawns == 0 {
			return true
		}
	}
	for pawns := blackPawns; pawns != 0; pawns &= pawns - 1 {
		sq := board.Square(bits.TrailingZeros64(pawns))
		if frontSpan(sq, board.Black)&whitePawns == 0 {
			return true
		}
	}
	return false
}

// frontSpan masks the squares on the pawn's file and the adjacent files
// (clamped to the board edges) strictly ahead of the pawn.
func frontSpan(sq board.Square, c board.Color) uint64 {
	file := sq.File()
	rank := sq.Rank()
	var span uint64
	lo, hi := file-1, file+1
	if lo < 0 {
		lo = 0
	}
	if hi > 7 {
		hi = 7
	}
	if c == board.White {
		for r := rank + 1; r < 8; r++ {
			for f := lo; f <= hi; f++ {
				span |= 1 << uint(r*8+f)
			}
		}
	} else {
		for r := rank - 1; r >= 0; r-- {
			for f := lo; f <= hi; f++ {
				span |= 1 << uint(r*8+f)
			}
		}
	}
	return span
}

// WhitePawnIslands counts maximal runs of consecutive files holding at least
// one White pawn.
func WhitePawnIslands(b *board.Board) int {
	pawns := b.PieceBitboard(board.White, board.Pawn)
	const fileA uint64 = 0x0101010101010101
	islands := 0
	inIsland := false
	for file := 0; file < 8; file++ {
		if pawns&(fileA<<uint(file)) != 0 {
			if !inIsland {
				islands++
				inIsland = true
			}
		} else {
			inIsland = false
		}
	}
	return islands
}
