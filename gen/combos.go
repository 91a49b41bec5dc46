package gen

import "staleboards/board"

// Combinations lists every non-decreasing sequence of n piece types drawn
// from the six canonical types (combinations with replacement). Each
// combination drives one independent search instance.
func Combinations(n int) [][]board.PieceType {
	var results [][]board.PieceType
	var rec func(comb []board.PieceType, start, left int)
	rec = func(comb []board.PieceType, start, left int) {
		if left == 0 {
			results = append(results, append([]board.PieceType(nil), comb...))
			return
		}
		for i := start; i < len(board.PieceTypes); i++ {
			rec(append(comb, board.PieceTypes[i]), i, left-1)
		}
	}
	rec(make([]board.PieceType, 0, n), 0, n)
	return results
}
