// Package board provides the fixed 8x8 board model used by the critical-board
// generator: typed pieces and squares, occupancy bitboards alongside a mailbox
// array, attack queries, and FEN serialization.
package board

import "math/bits"

// Piece identifies a piece together with its color.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless piece kind used for table lookups and catalogs.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// PieceTypes lists the six canonical types in catalog order.
var PieceTypes = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// PieceColor returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) PieceColor() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt < Pawn || pt > King {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= 8
	}
	return p
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Square represents a board position (0-63), index = rank*8 + file with
// rank 0 being White's back rank.
type Square int

const NoSquare Square = -1

// SquareAt converts a 0-indexed file and rank into a Square.
func SquareAt(file, rank int) Square { return Square(rank*8 + file) }

// File returns the 0-indexed file of the square (0 = a-file).
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the 0-indexed rank of the square (0 = rank 1).
func (sq Square) Rank() int { return int(sq) / 8 }

// String renders the square in algebraic form, e.g. "a1".
func (sq Square) String() string {
	if sq < 0 || sq > 63 {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// Board holds a position as a mailbox array kept in sync with per-type
// bitboards and per-side occupancy. Only piece placement is tracked: the
// generator always emits White-to-move positions with no castling or
// en-passant rights.
type Board struct {
	pieces [64]Piece

	// Per piece type and color (index 0 = white, 1 = black)
	pawns   [2]uint64
	knights [2]uint64
	bishops [2]uint64
	rooks   [2]uint64
	queens  [2]uint64
	kings   [2]uint64

	occupancy [2]uint64
}

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b.pieces[int(sq)] }

// AllOccupancy returns a bitboard of all occupied squares.
func (b *Board) AllOccupancy() uint64 { return b.occupancy[0] | b.occupancy[1] }

// ColorOccupancy returns the occupancy bitboard for the given color.
func (b *Board) ColorOccupancy(c Color) uint64 { return b.occupancy[int(c)] }

// PieceBitboard returns the bitboard for one piece type of one side.
func (b *Board) PieceBitboard(c Color, pt PieceType) uint64 {
	ci := int(c)
	switch pt {
	case Pawn:
		return b.pawns[ci]
	case Knight:
		return b.knights[ci]
	case Bishop:
		return b.bishops[ci]
	case Rook:
		return b.rooks[ci]
	case Queen:
		return b.queens[ci]
	case King:
		return b.kings[ci]
	default:
		return 0
	}
}

// KingSquare returns the square of the given side's king, or NoSquare if
// that side has no king on the board.
func (b *Board) KingSquare(c Color) Square {
	kings := b.kings[int(c)]
	if kings == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(kings))
}

// SetPiece sets a piece on a square, replacing any existing piece.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.removePiece(sq)
	b.addPiece(sq, p)
}

// ClearSquare removes any piece from the given square.
func (b *Board) ClearSquare(sq Square) { _ = b.removePiece(sq) }

// MovePiece moves a piece from one square to another, capturing whatever
// occupied the destination.
func (b *Board) MovePiece(from, to Square) {
	moving := b.removePiece(from)
	_ = b.removePiece(to)
	b.addPiece(to, moving)
}

func bb(sq Square) uint64 { return 1 << uint64(sq) }

func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	b.pieces[int(sq)] = p
	ci := int(p.PieceColor())
	b.occupancy[ci] |= bb(sq)
	switch p.Type() {
	case Pawn:
		b.pawns[ci] |= bb(sq)
	case Knight:
		b.knights[ci] |= bb(sq)
	case Bishop:
		b.bishops[ci] |= bb(sq)
	case Rook:
		b.rooks[ci] |= bb(sq)
	case Queen:
		b.queens[ci] |= bb(sq)
	case King:
		b.kings[ci] |= bb(sq)
	}
}

func (b *Board) removePiece(sq Square) Piece {
	p := b.pieces[int(sq)]
	if p == NoPiece {
		return NoPiece
	}
	ci := int(p.PieceColor())
	mask := ^bb(sq)
	b.pieces[int(sq)] = NoPiece
	b.occupancy[ci] &= mask
	switch p.Type() {
	case Pawn:
		b.pawns[ci] &= mask
	case Knight:
		b.knights[ci] &= mask
	case Bishop:
		b.bishops[ci] &= mask
	case Rook:
		b.rooks[ci] &= mask
	case Queen:
		b.queens[ci] &= mask
	case King:
		b.kings[ci] &= mask
	}
	return p
}

// Validate checks internal consistency between the mailbox array, the
// per-type bitboards, and occupancy.
func (b *Board) Validate() bool {
	var want Board
	for sq := 0; sq < 64; sq++ {
		want.addPiece(Square(sq), b.pieces[sq])
	}
	return want == *b
}
