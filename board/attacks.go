package board

import "math/bits"

// Precomputed attack masks for knights and kings from each square.
var knightMoves [64]uint64
var kingMoves [64]uint64

// pawnAttacks[color][sq] gives the squares a pawn of 'color' attacks from 'sq'.
var pawnAttacks [2][64]uint64

// Directional rays for sliders, excluding the origin square.
// Rook directions: 0=N, 1=S, 2=E, 3=W. Bishop: 0=NE, 1=NW, 2=SE, 3=SW.
var rookRays [64][4]uint64
var bishopRays [64][4]uint64

func init() {
	initLeaperTables()
	initRays()
}

func initLeaperTables() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8
		for _, off := range knightOffsets {
			rf, ff := rank+off[0], file+off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				knightMoves[sq] |= uint64(1) << (rf*8 + ff)
			}
		}
		for _, off := range kingOffsets {
			rf, ff := rank+off[0], file+off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				kingMoves[sq] |= uint64(1) << (rf*8 + ff)
			}
		}

		// White pawns attack upward, black pawns downward.
		if rank < 7 {
			if file > 0 {
				pawnAttacks[White][sq] |= uint64(1) << ((rank+1)*8 + file - 1)
			}
			if file < 7 {
				pawnAttacks[White][sq] |= uint64(1) << ((rank+1)*8 + file + 1)
			}
		}
		if rank > 0 {
			if file > 0 {
				pawnAttacks[Black][sq] |= uint64(1) << ((rank-1)*8 + file - 1)
			}
			if file < 7 {
				pawnAttacks[Black][sq] |= uint64(1) << ((rank-1)*8 + file + 1)
			}
		}
	}
}

func initRays() {
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		for r := rank + 1; r < 8; r++ { // N
			rookRays[sq][0] |= 1 << uint(r*8+file)
		}
		for r := rank - 1; r >= 0; r-- { // S
			rookRays[sq][1] |= 1 << uint(r*8+file)
		}
		for f := file + 1; f < 8; f++ { // E
			rookRays[sq][2] |= 1 << uint(rank*8+f)
		}
		for f := file - 1; f >= 0; f-- { // W
			rookRays[sq][3] |= 1 << uint(rank*8+f)
		}

		for r, f := rank+1, file+1; r < 8 && f < 8; r, f = r+1, f+1 { // NE
			bishopRays[sq][0] |= 1 << uint(r*8+f)
		}
		for r, f := rank+1, file-1; r < 8 && f >= 0; r, f = r+1, f-1 { // NW
			bishopRays[sq][1] |= 1 << uint(r*8+f)
		}
		for r, f := rank-1, file+1; r >= 0 && f < 8; r, f = r-1, f+1 { // SE
			bishopRays[sq][2] |= 1 << uint(r*8+f)
		}
		for r, f := rank-1, file-1; r >= 0 && f >= 0; r, f = r-1, f-1 { // SW
			bishopRays[sq][3] |= 1 << uint(r*8+f)
		}
	}
}

// firstBlocker returns the blocker square nearest the ray origin. 'rising'
// is true for directions that run toward higher square indices (N/E, NE/NW).
func firstBlocker(blockers uint64, rising bool) int {
	if rising {
		return bits.TrailingZeros64(blockers)
	}
	return 63 - bits.LeadingZeros64(blockers)
}

// rookAttacks returns the rook attack set from sq given board occupancy.
// Each ray is trimmed at the first blocker; the blocker square itself stays
// in the set, so attacks on occupied squares are reported.
func rookAttacks(sq int, occ uint64) uint64 {
	var attacks uint64
	for d := 0; d < 4; d++ {
		ray := rookRays[sq][d]
		if blockers := ray & occ; blockers != 0 {
			first := firstBlocker(blockers, d == 0 || d == 2)
			ray &^= rookRays[first][d]
		}
		attacks |= ray
	}
	return attacks
}

// bishopAttacks returns the bishop attack set from sq given board occupancy.
func bishopAttacks(sq int, occ uint64) uint64 {
	var attacks uint64
	for d := 0; d < 4; d++ {
		ray := bishopRays[sq][d]
		if blockers := ray & occ; blockers != 0 {
			first := firstBlocker(blockers, d == 0 || d == 1)
			ray &^= bishopRays[first][d]
		}
		attacks |= ray
	}
	return attacks
}

// IsSquareAttacked reports whether the given square is attacked by any piece
// of the given color. Sliding attacks are blocked by the first occupied
// square on the ray, regardless of its color.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	s := int(sq)
	byIdx := int(by)

	// A pawn of color 'by' attacks s exactly when a pawn of the other color
	// standing on s would attack the pawn's square.
	if pawnAttacks[by.Other()][s]&b.pawns[byIdx] != 0 {
		return true
	}
	if knightMoves[s]&b.knights[byIdx] != 0 {
		return true
	}
	if kingMoves[s]&b.kings[byIdx] != 0 {
		return true
	}

	occ := b.AllOccupancy()
	if rq := b.rooks[byIdx] | b.queens[byIdx]; rq != 0 && rookAttacks(s, occ)&rq != 0 {
		return true
	}
	if bq := b.bishops[byIdx] | b.queens[byIdx]; bq != 0 && bishopAttacks(s, occ)&bq != 0 {
		return true
	}
	return false
}

// InCheck reports whether the given side's king is attacked. A side with no
// king on the board is never in check.
func (b *Board) InCheck(color Color) bool {
	ks := b.KingSquare(color)
	if ks == NoSquare {
		return false
	}
	return b.IsSquareAttacked(ks, color.Other())
}

// AnyPieceAttacked reports whether any piece of either side stands on a
// square attacked by the opposing side.
func (b *Board) AnyPieceAttacked() bool {
	for _, c := range [2]Color{White, Black} {
		them := c.Other()
		for occ := b.occupancy[int(c)]; occ != 0; occ &= occ - 1 {
			sq := Square(bits.TrailingZeros64(occ))
			if b.IsSquareAttacked(sq, them) {
				return true
			}
		}
	}
	return false
}
