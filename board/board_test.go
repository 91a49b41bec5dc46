package board_test

import (
	"testing"

	"staleboards/board"
)

func TestSquareMapping(t *testing.T) {
	if got := board.SquareAt(0, 0); got != 0 {
		t.Fatalf("a1 should map to 0, got %d", got)
	}
	if got := board.SquareAt(7, 7); got != 63 {
		t.Fatalf("h8 should map to 63, got %d", got)
	}
	// Bijective: every square round-trips through file/rank.
	for sq := board.Square(0); sq < 64; sq++ {
		if board.SquareAt(sq.File(), sq.Rank()) != sq {
			t.Fatalf("square %d does not round-trip", sq)
		}
	}
	if got := board.SquareAt(4, 3).String(); got != "e4" {
		t.Fatalf("expected e4, got %s", got)
	}
}

func TestPieceEncoding(t *testing.T) {
	if board.BlackRook.Type() != board.Rook {
		t.Fatalf("black rook should have rook type")
	}
	if board.BlackRook.PieceColor() != board.Black {
		t.Fatalf("black rook should be black")
	}
	if board.WhiteQueen.PieceColor() != board.White {
		t.Fatalf("white queen should be white")
	}
	for _, pt := range board.PieceTypes {
		w := board.PieceFromType(board.White, pt)
		b := board.PieceFromType(board.Black, pt)
		if w.Type() != pt || b.Type() != pt {
			t.Fatalf("PieceFromType lost type %d", pt)
		}
		if w.PieceColor() != board.White || b.PieceColor() != board.Black {
			t.Fatalf("PieceFromType lost color for type %d", pt)
		}
	}
	if board.PieceFromType(board.White, board.NoPieceType) != board.NoPiece {
		t.Fatalf("NoPieceType should produce NoPiece")
	}
}

func TestSetClearMove(t *testing.T) {
	var b board.Board
	e2 := board.SquareAt(4, 1)
	e4 := board.SquareAt(4, 3)

	b.SetPiece(e2, board.WhitePawn)
	if b.PieceAt(e2) != board.WhitePawn {
		t.Fatalf("expected pawn on e2")
	}
	if !b.Validate() {
		t.Fatalf("board inconsistent after SetPiece")
	}

	b.MovePiece(e2, e4)
	if b.PieceAt(e2) != board.NoPiece || b.PieceAt(e4) != board.WhitePawn {
		t.Fatalf("MovePiece did not relocate the pawn")
	}
	if !b.Validate() {
		t.Fatalf("board inconsistent after MovePiece")
	}

	// Capture: moving onto an occupied square removes the occupant.
	d5 := board.SquareAt(3, 4)
	b.SetPiece(d5, board.BlackKnight)
	b.MovePiece(e4, d5)
	if b.PieceAt(d5) != board.WhitePawn {
		t.Fatalf("capture should leave the mover on the target square")
	}
	if b.ColorOccupancy(board.Black) != 0 {
		t.Fatalf("captured piece still in black occupancy")
	}

	b.ClearSquare(d5)
	if b.AllOccupancy() != 0 {
		t.Fatalf("board should be empty")
	}
	if !b.Validate() {
		t.Fatalf("board inconsistent after ClearSquare")
	}
}

func TestKingSquare(t *testing.T) {
	var b board.Board
	if b.KingSquare(board.White) != board.NoSquare {
		t.Fatalf("empty board should have no king")
	}
	g8 := board.SquareAt(6, 7)
	b.SetPiece(g8, board.BlackKing)
	if b.KingSquare(board.Black) != g8 {
		t.Fatalf("expected black king on g8")
	}
	if b.KingSquare(board.White) != board.NoSquare {
		t.Fatalf("white king should still be absent")
	}
}
