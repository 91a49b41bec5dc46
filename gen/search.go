package gen

import "staleboards/board"

// searcher holds the backtracking state for one combination's search. Each
// search instance owns its occupancy array and chosen-placement stack
// outright, so concurrent searches never share mutable state.
type searcher struct {
	options  [][]Placement
	occupied [64]bool
	chosen   []Placement
	stats    *Stats
	emit     func(fen string)
}

// newSearcher expands a combination into its per-slot placement catalogs.
// The catalogs are built eagerly and live for the duration of this search.
func newSearcher(combo []board.PieceType, stats *Stats, emit func(fen string)) *searcher {
	options := make([][]Placement, len(combo))
	for i, pt := range combo {
		options[i] = Placements(pt)
	}
	return &searcher{
		options: options,
		chosen:  make([]Placement, 0, len(combo)),
		stats:   stats,
		emit:    emit,
	}
}

// run recurses over slots, assigning one placement per slot. A candidate is
// pruned when either of its two squares is already occupied; accepted
// candidates are undone explicitly on backtrack. Filters only apply to
// completed boards — pawn structure is a whole-board property — so pruning
// power comes solely from square occupancy.
func (s *searcher) run(index int) {
	if index == len(s.options) {
		b := buildBoard(s.chosen)
		s.stats.boardsCompleted.Add(1)
		if reason := Evaluate(&b); reason != Accepted {
			s.stats.countReject(reason)
			return
		}
		s.stats.emitted.Add(1)
		s.emit(b.FEN())
		return
	}
	for _, placement := range s.options[index] {
		w := placement.WhiteSquare()
		bl := placement.BlackSquare()
		if s.occupied[w] || s.occupied[bl] {
			continue
		}
		s.occupied[w] = true
		s.occupied[bl] = true
		s.chosen = append(s.chosen, placement)

		s.run(index + 1)

		s.chosen = s.chosen[:len(s.chosen)-1]
		s.occupied[w] = false
		s.occupied[bl] = false
	}
}

// buildBoard places every chosen pair on an empty board. The search has
// already guaranteed the squares are pairwise distinct.
func buildBoard(chosen []Placement) board.Board {
	var b board.Board
	for _, p := range chosen {
		b.SetPiece(p.WhiteSquare(), p.White)
		b.SetPiece(p.BlackSquare(), p.Black)
	}
	return b
}

// ProcessCombination runs one complete backtracking search for a single
// piece-type combination, emitting every surviving board.
func ProcessCombination(combo []board.PieceType, stats *Stats, emit func(fen string)) {
	newSearcher(combo, stats, emit).run(0)
	stats.combinations.Add(1)
}
