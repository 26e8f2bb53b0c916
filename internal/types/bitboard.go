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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit unsigned int with 1 bit for each square on the board,
// lsb = A1.
type Bitboard uint64

// BbZero is the empty bitboard.
const BbZero Bitboard = 0

// BbAll is the full bitboard.
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

// precomputed per-square and per-line masks, filled in by init().
var (
	sqBb            [SqLength]Bitboard
	fileBb          [FileLength]Bitboard
	rankBb          [RankLength]Bitboard
	diagBb          [SqLength]Bitboard
	antiDiagBb      [SqLength]Bitboard
	knightAttacksBb [SqLength]Bitboard
	kingAttacksBb   [SqLength]Bitboard
)

func init() {
	for f := FileA; f < FileLength; f++ {
		var bb Bitboard
		for r := Rank1; r < RankLength; r++ {
			bb |= Bitboard(1) << uint(SquareOf(f, r))
		}
		fileBb[f] = bb
	}
	for r := Rank1; r < RankLength; r++ {
		var bb Bitboard
		for f := FileA; f < FileLength; f++ {
			bb |= Bitboard(1) << uint(SquareOf(f, r))
		}
		rankBb[r] = bb
	}
	for sq := SqA1; sq <= SqH8; sq++ {
		sqBb[sq] = Bitboard(1) << uint(sq)
	}
	for sq := SqA1; sq <= SqH8; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())
		var diag, anti Bitboard
		for df := -7; df <= 7; df++ {
			ff, rr := f+df, r+df
			if ff >= 0 && ff < 8 && rr >= 0 && rr < 8 {
				diag |= sqBb[SquareOf(File(ff), Rank(rr))]
			}
			ff, rr = f+df, r-df
			if ff >= 0 && ff < 8 && rr >= 0 && rr < 8 {
				anti |= sqBb[SquareOf(File(ff), Rank(rr))]
			}
		}
		diagBb[sq] = diag
		antiDiagBb[sq] = anti
	}
	knightDeltas := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingDeltas := [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	for sq := SqA1; sq <= SqH8; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())
		var kbb, nbb Bitboard
		for _, d := range knightDeltas {
			ff, rr := f+d[0], r+d[1]
			if ff >= 0 && ff < 8 && rr >= 0 && rr < 8 {
				nbb |= sqBb[SquareOf(File(ff), Rank(rr))]
			}
		}
		for _, d := range kingDeltas {
			ff, rr := f+d[0], r+d[1]
			if ff >= 0 && ff < 8 && rr >= 0 && rr < 8 {
				kbb |= sqBb[SquareOf(File(ff), Rank(rr))]
			}
		}
		knightAttacksBb[sq] = nbb
		kingAttacksBb[sq] = kbb
	}
}

// Bb returns the single-bit Bitboard for the square.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// FileBb returns the bitboard of all squares on the square's file.
func (sq Square) FileBb() Bitboard {
	return fileBb[sq.FileOf()]
}

// RankBb returns the bitboard of all squares on the square's rank.
func (sq Square) RankBb() Bitboard {
	return rankBb[sq.RankOf()]
}

// DiagBb returns the bitboard of the A1-H8-direction diagonal through sq.
func (sq Square) DiagBb() Bitboard {
	return diagBb[sq]
}

// AntiDiagBb returns the bitboard of the A8-H1-direction diagonal through sq.
func (sq Square) AntiDiagBb() Bitboard {
	return antiDiagBb[sq]
}

// KnightAttacks returns the knight-move span from sq.
func (sq Square) KnightAttacks() Bitboard {
	return knightAttacksBb[sq]
}

// KingAttacks returns the king-move (and explosion blast) span from sq,
// not including sq itself.
func (sq Square) KingAttacks() Bitboard {
	return kingAttacksBb[sq]
}

// PushSquare sets the bit for s in b and returns the result.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bb()
}

// PushSquare sets the bit for s.
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare clears the bit for s in b and returns the result.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bb()
}

// PopSquare clears the bit for s.
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b = *b &^ s.Bb()
	return *b
}

// Has reports whether the bit for s is set.
func (b Bitboard) Has(s Square) bool {
	return b&sqBb[s] != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the least significant set bit. Undefined on
// an empty bitboard.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the square of the most significant set bit. Undefined on
// an empty bitboard.
func (b Bitboard) Msb() Square {
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns the square of the least significant set bit and clears it
// in *b. Undefined on an empty bitboard.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

// PopMsb returns the square of the most significant set bit and clears it
// in *b. Undefined on an empty bitboard.
func (b *Bitboard) PopMsb() Square {
	sq := b.Msb()
	*b &^= sq.Bb()
	return sq
}

// Reverse returns b with its 64 bits in reverse order (square A1 <-> H8),
// i.e. the bitboard as seen from the other side of the board.
func (b Bitboard) Reverse() Bitboard {
	return Bitboard(bits.Reverse64(uint64(b)))
}

// notFileA / notFileH are used to mask off wraparound when shifting
// east/west across the board edge.
const notFileA = ^Bitboard(0) ^ Bitboard(0x0101010101010101)
const notFileH = ^Bitboard(0) ^ Bitboard(0x8080808080808080)

// ShiftBitboard shifts every bit of b one square in direction d, clearing
// any bit that would wrap around a board edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b & notFileH) << 1
	case West:
		return (b & notFileA) >> 1
	case Northeast:
		return (b & notFileH) << 9
	case Southeast:
		return (b & notFileH) >> 7
	case Southwest:
		return (b & notFileA) >> 9
	case Northwest:
		return (b & notFileA) << 7
	}
	return b
}

// String renders the bitboard as an 8x8 grid, rank 8 first, 'X'/'.'.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f < FileLength; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("X ")
			} else {
				sb.WriteString(". ")
			}
		}
		if r > Rank1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
