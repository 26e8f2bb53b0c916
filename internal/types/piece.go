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

package types

// Color is the side a piece belongs to or the side to move.
type Color int8

// The two colors.
const (
	White Color = iota
	Black
	ColorLength
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// Piece is a piece kind, independent of color. PieceNone (0) marks an
// empty square and also indexes the (unused) "empty set" bitboard slot.
type Piece int8

// Piece kinds.
const (
	PieceNone Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PieceLength
)

var pieceChars = [PieceLength]string{" ", "P", "N", "B", "R", "Q", "K"}
var pieceCharsLower = [PieceLength]string{" ", "p", "n", "b", "r", "q", "k"}

// Char returns the upper-case FEN letter for white, lower-case for black.
func (p Piece) Char(c Color) string {
	if p == PieceNone {
		return "."
	}
	if c == White {
		return pieceChars[p]
	}
	return pieceCharsLower[p]
}

// String returns the color-independent upper-case piece letter.
func (p Piece) String() string {
	return pieceChars[p]
}

// PieceFromChar maps a FEN piece letter to its kind and color. ok is false
// for any character that is not one of PNBRQKpnbrqk.
func PieceFromChar(c byte) (p Piece, color Color, ok bool) {
	switch c {
	case 'P':
		return Pawn, White, true
	case 'N':
		return Knight, White, true
	case 'B':
		return Bishop, White, true
	case 'R':
		return Rook, White, true
	case 'Q':
		return Queen, White, true
	case 'K':
		return King, White, true
	case 'p':
		return Pawn, Black, true
	case 'n':
		return Knight, Black, true
	case 'b':
		return Bishop, Black, true
	case 'r':
		return Rook, Black, true
	case 'q':
		return Queen, Black, true
	case 'k':
		return King, Black, true
	}
	return PieceNone, White, false
}

// Value is a centipawn-ish score or tuning value.
type Value int32
