// Package gen implements the mirrored-placement catalog, the backtracking
// search over placement combinations, the positional-legality filter chain,
// and the parallel runner that streams surviving positions to a sink.
package gen

import (
	"fmt"

	"staleboards/board"
)

// Placement is one mirrored pair: a White piece and its Black mirror on the
// same file, with ranks reflected around the respective home ranks.
type Placement struct {
	File      int // 0 = a-file
	WhiteRank int // 1..8
	BlackRank int // 1..8
	White     board.Piece
	Black     board.Piece
}

// WhiteSquare returns the square of the pair's White piece.
func (p Placement) WhiteSquare() board.Square {
	return board.SquareAt(p.File, p.WhiteRank-1)
}

// BlackSquare returns the square of the pair's Black piece.
func (p Placement) BlackSquare() board.Square {
	return board.SquareAt(p.File, p.BlackRank-1)
}

// startRanks returns the home ranks (1-indexed) the mirroring rule reflects
// around: rank 2/7 for pawns, 1/8 for everything else.
func startRanks(pt board.PieceType) (white, black int) {
	if pt == board.Pawn {
		return 2, 7
	}
	return 1, 8
}

// Placements generates every mirrored pair for one piece type. White ranks
// run 1..4 (pawns never on rank 1); for each, the candidate Black ranks are
// the reflections start±distance, kept only when on the board, in Black's
// half (rank >= 5), and — for pawns — not on a back rank. A piece type
// outside the closed six-type set is a caller bug and panics.
func Placements(pt board.PieceType) []Placement {
	white := board.PieceFromType(board.White, pt)
	black := board.PieceFromType(board.Black, pt)
	if white == board.NoPiece {
		panic(fmt.Sprintf("gen: invalid piece type %d", pt))
	}
	srw, srb := startRanks(pt)

	var placements []Placement
	for file := 0; file < 8; file++ {
		for whiteRank := 1; whiteRank <= 4; whiteRank++ {
			if pt == board.Pawn && whiteRank == 1 {
				continue
			}
			distance := whiteRank - srw
			if distance < 0 {
				distance = -distance
			}
			candidates := []int{srb + distance}
			if distance != 0 {
				candidates = append(candidates, srb-distance)
			}
			for _, blackRank := range candidates {
				if blackRank < 1 || blackRank > 8 {
					continue
				}
				if blackRank < 5 {
					// Mirror must land in Black's half.
					continue
				}
				if pt == board.Pawn && (blackRank == 1 || blackRank == 8) {
					continue
				}
				placements = append(placements, Placement{
					File:      file,
					WhiteRank: whiteRank,
					BlackRank: blackRank,
					White:     white,
					Black:     black,
				})
			}
		}
	}
	return placements
}
