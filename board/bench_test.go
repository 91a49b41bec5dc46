package board_test

import (
	"testing"

	"staleboards/board"
)

func benchBoard(b *testing.B, fen string) *board.Board {
	bd, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	return bd
}

func BenchmarkWhiteMoves(b *testing.B) {
	bd := benchBoard(b, "r3k3/pp6/8/3q4/3Q4/8/PP6/R3K3 w - - 0 1")
	buf := make([]board.Move, 0, 128)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = bd.WhiteMoves(buf)
		buf = buf[:0]
	}
}

func BenchmarkAnyPieceAttacked(b *testing.B) {
	bd := benchBoard(b, "r3k3/pp6/8/3q4/3Q4/8/PP6/R3K3 w - - 0 1")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bd.AnyPieceAttacked()
	}
}
