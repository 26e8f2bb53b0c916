//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package move holds the packed 28-bit move word and its accessors.
package move

import . "github.com/halvorsen/hmbird/internal/types"

// Move is a move packed into the low 28 bits of a uint32:
//
//	from(6) to(6) piece(3) promotion(3) captured_piece(3) captured_color(1) ep_square(6)
//
// promotion == piece encodes "no promotion". The zero value, Null, means
// "no move" and cannot be confused with a real move since every real move
// has from != to or non-zero higher fields.
type Move uint32

// Null is the sentinel "no move" value.
const Null Move = 0

const (
	fromOffset          = 0
	toOffset            = 6
	pieceOffset         = 12
	promotionOffset     = 15
	capturedPieceOffset = 18
	capturedColorOffset = 21
	epSquareOffset      = 22

	sixBitMask   = 0x3F
	threeBitMask = 0x7
	oneBitMask   = 0x1
)

// create is the single underlying packer every constructor below funnels
// through.
func create(from, to Square, piece, promotion, capturedPiece Piece, capturedColor Color, epSquare Square) Move {
	var epField Square
	if epSquare != SqNone {
		epField = epSquare
	} else {
		epField = 0
	}
	return Move(uint32(from)<<fromOffset |
		uint32(to)<<toOffset |
		uint32(piece)<<pieceOffset |
		uint32(promotion)<<promotionOffset |
		uint32(capturedPiece)<<capturedPieceOffset |
		uint32(capturedColor)<<capturedColorOffset |
		uint32(epField)<<epSquareOffset)
}

// CreatePromotionCaptureMove is the fully general constructor: a capture
// that is also a promotion.
func CreatePromotionCaptureMove(from, to Square, piece, promotion, capturedPiece Piece, capturedColor Color) Move {
	return create(from, to, piece, promotion, capturedPiece, capturedColor, SqNone)
}

// CreateCaptureMove builds a non-promoting capture.
func CreateCaptureMove(from, to Square, piece, capturedPiece Piece, capturedColor Color) Move {
	return create(from, to, piece, piece, capturedPiece, capturedColor, SqNone)
}

// CreatePromotionMove builds a non-capturing promotion.
func CreatePromotionMove(from, to Square, piece, promotion Piece, epSquare Square) Move {
	return create(from, to, piece, promotion, PieceNone, White, epSquare)
}

// CreateMove builds a plain move: no capture, no promotion, optionally
// setting the en-passant square a following move could capture on (used for
// pawn double pushes).
func CreateMove(from, to Square, piece Piece, epSquare Square) Move {
	return create(from, to, piece, piece, PieceNone, White, epSquare)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((uint32(m) >> fromOffset) & sixBitMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((uint32(m) >> toOffset) & sixBitMask)
}

// Piece returns the moving piece kind.
func (m Move) Piece() Piece {
	return Piece((uint32(m) >> pieceOffset) & threeBitMask)
}

// Promotion returns the promotion piece kind, or the same as Piece() if
// this move is not a promotion.
func (m Move) Promotion() Piece {
	return Piece((uint32(m) >> promotionOffset) & threeBitMask)
}

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion() != m.Piece()
}

// CapturedPiece returns the captured piece kind, or PieceNone if this move
// is not a capture.
func (m Move) CapturedPiece() Piece {
	return Piece((uint32(m) >> capturedPieceOffset) & threeBitMask)
}

// IsCapture reports whether this move captures a piece.
func (m Move) IsCapture() bool {
	return m.CapturedPiece() != PieceNone
}

// CapturedColor returns the color of the captured piece. Only meaningful
// when IsCapture() is true.
func (m Move) CapturedColor() Color {
	return Color((uint32(m) >> capturedColorOffset) & oneBitMask)
}

// EpSquare returns the square that becomes the en-passant target after this
// move, or SqNone if this move does not create one.
func (m Move) EpSquare() Square {
	field := Square((uint32(m) >> epSquareOffset) & sixBitMask)
	if field == 0 {
		return SqNone
	}
	return field
}

// IsIrreversible reports whether this move resets the half-move clock: it
// captures a piece or moves a pawn.
func (m Move) IsIrreversible() bool {
	return m.IsCapture() || m.Piece() == Pawn
}

// String renders the move in long-algebraic (UCI) form, e.g. "e7e8q", or
// "null" for the null move.
func (m Move) String() string {
	if m == Null {
		return "null"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		promo := m.Promotion()
		s += promo.Char(Black) // lower-case letter regardless of mover's color
	}
	return s
}
