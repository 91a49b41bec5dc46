package board

import "math/bits"

// Move encodes a pseudo-legal relocation in a 32-bit value.
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift  = 0  // 6 bits
	moveToShift    = 6  // 6 bits
	movePieceShift = 12 // 4 bits
)

// NewMove constructs a Move value from components.
func NewMove(from, to Square, piece Piece) Move {
	return Move(uint32(from&0x3F) |
		uint32(to&0x3F)<<moveToShift |
		uint32(piece&0xF)<<movePieceShift)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// MovedPiece returns the piece being moved.
func (m Move) MovedPiece() Piece { return Piece((uint32(m) >> movePieceShift) & 0xF) }

// String produces coordinate notation for the move, e.g. "e2e4".
func (m Move) String() string { return m.From().String() + m.To().String() }

// Applied returns a copy of the board with the move made. Whatever occupied
// the destination square is captured. No promotion handling: the generator's
// check-deliverability probe only looks one ply ahead.
func (b *Board) Applied(m Move) Board {
	nb := *b
	nb.MovePiece(m.From(), m.To())
	return nb
}

// WhiteMoves appends all pseudo-legal White moves to dst and returns it.
// Pawns get single and double forward pushes plus diagonal captures; knights
// and the king use their offset masks; sliders stop at the first obstruction
// with capture-or-block semantics. Legality with respect to check is not
// considered here.
func (b *Board) WhiteMoves(dst []Move) []Move {
	moves := dst[:0]
	ownOcc := b.occupancy[White]
	oppOcc := b.occupancy[Black]
	all := ownOcc | oppOcc

	for pawns := b.pawns[White]; pawns != 0; pawns &= pawns - 1 {
		sq := bits.TrailingZeros64(pawns)
		from := Square(sq)
		// Forward pushes. The single push must be clear before the double
		// push from the home rank is considered.
		if sq+8 < 64 && all&(uint64(1)<<(sq+8)) == 0 {
			moves = append(moves, NewMove(from, Square(sq+8), WhitePawn))
			if sq/8 == 1 && all&(uint64(1)<<(sq+16)) == 0 {
				moves = append(moves, NewMove(from, Square(sq+16), WhitePawn))
			}
		}
		for caps := pawnAttacks[White][sq] & oppOcc; caps != 0; caps &= caps - 1 {
			moves = append(moves, NewMove(from, Square(bits.TrailingZeros64(caps)), WhitePawn))
		}
	}

	for knights := b.knights[White]; knights != 0; knights &= knights - 1 {
		sq := bits.TrailingZeros64(knights)
		moves = appendTargets(moves, Square(sq), WhiteKnight, knightMoves[sq]&^ownOcc)
	}

	for bishops := b.bishops[White]; bishops != 0; bishops &= bishops - 1 {
		sq := bits.TrailingZeros64(bishops)
		moves = appendTargets(moves, Square(sq), WhiteBishop, bishopAttacks(sq, all)&^ownOcc)
	}

	for rooks := b.rooks[White]; rooks != 0; rooks &= rooks - 1 {
		sq := bits.TrailingZeros64(rooks)
		moves = appendTargets(moves, Square(sq), WhiteRook, rookAttacks(sq, all)&^ownOcc)
	}

	for queens := b.queens[White]; queens != 0; queens &= queens - 1 {
		sq := bits.TrailingZeros64(queens)
		targets := (rookAttacks(sq, all) | bishopAttacks(sq, all)) &^ ownOcc
		moves = appendTargets(moves, Square(sq), WhiteQueen, targets)
	}

	for kings := b.kings[White]; kings != 0; kings &= kings - 1 {
		sq := bits.TrailingZeros64(kings)
		moves = appendTargets(moves, Square(sq), WhiteKing, kingMoves[sq]&^ownOcc)
	}

	return moves
}

func appendTargets(moves []Move, from Square, piece Piece, targets uint64) []Move {
	for ; targets != 0; targets &= targets - 1 {
		moves = append(moves, NewMove(from, Square(bits.TrailingZeros64(targets)), piece))
	}
	return moves
}
