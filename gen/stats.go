package gen

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Stats collects run counters across all workers. All fields are updated
// with atomics, so one Stats value is shared by every concurrent search.
type Stats struct {
	combinations    atomic.Int64
	boardsCompleted atomic.Int64
	emitted         atomic.Int64
	rejects         [numRejectReasons]atomic.Int64
}

func (s *Stats) countReject(r RejectReason) {
	if r > Accepted && r < numRejectReasons {
		s.rejects[r].Add(1)
	}
}

// Combinations returns the number of fully processed combinations.
func (s *Stats) Combinations() int64 { return s.combinations.Load() }

// BoardsCompleted returns the number of complete collision-free boards the
// searches assembled, before filtering.
func (s *Stats) BoardsCompleted() int64 { return s.boardsCompleted.Load() }

// Emitted returns the number of boards that survived all filters.
func (s *Stats) Emitted() int64 { return s.emitted.Load() }

// Rejected returns how many boards the given filter rejected.
func (s *Stats) Rejected(r RejectReason) int64 {
	if r > Accepted && r < numRejectReasons {
		return s.rejects[r].Load()
	}
	return 0
}

// Fields renders the counters as zap fields for progress and summary logs.
func (s *Stats) Fields() []zap.Field {
	fields := []zap.Field{
		zap.Int64("combinations", s.Combinations()),
		zap.Int64("boards", s.BoardsCompleted()),
		zap.Int64("emitted", s.Emitted()),
	}
	for r := RejectKingCount; r < numRejectReasons; r++ {
		fields = append(fields, zap.Int64("rejected_"+r.String(), s.Rejected(r)))
	}
	return fields
}
