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

// Package attacks builds, at init time, the sliding-piece attack tables used
// by move generation: for each square and line (rank, file, diagonal,
// anti-diagonal), a 256-entry table mapping the occupancy byte gathered
// along that line to the resulting attack set. No table is hard-coded; every
// entry is derived from a brute-force ray walk over the relevant line, done
// once at package init.
package attacks

import . "github.com/halvorsen/hmbird/internal/types"

// line holds, for one square and one direction family, the ordered list of
// squares that lie on that line (ascending by square index, which for rank,
// file, diagonal and anti-diagonal alike is the same order as physical
// adjacency along the line) and the position of the square itself within it.
type line struct {
	squares []Square
	pos     int
}

var (
	rankLines [SqLength]line
	fileLines [SqLength]line
	diagLines [SqLength]line
	antiLines [SqLength]line

	rankAttacks [SqLength][256]Bitboard
	fileAttacks [SqLength][256]Bitboard
	diagAttacks [SqLength][256]Bitboard
	antiAttacks [SqLength][256]Bitboard
)

// raySlide returns, for a slider at index `pos` along a line of `n` squares
// with occupancy bits set in `occ` (bit i = square i of the line is
// occupied), the bitmask (same indexing) of squares the slider attacks:
// every empty square up to and including the first occupied square in each
// direction.
func raySlide(pos, n int, occ uint16) uint16 {
	var result uint16
	for i := pos + 1; i < n; i++ {
		result |= 1 << uint(i)
		if occ&(1<<uint(i)) != 0 {
			break
		}
	}
	for i := pos - 1; i >= 0; i-- {
		result |= 1 << uint(i)
		if occ&(1<<uint(i)) != 0 {
			break
		}
	}
	return result
}

func buildLine(squares []Square) [SqLength]line {
	var out [SqLength]line
	for i, sq := range squares {
		out[sq] = line{squares: squares, pos: i}
	}
	return out
}

func squaresOf(bb Bitboard) []Square {
	var out []Square
	for bb != 0 {
		out = append(out, bb.PopLsb())
	}
	return out
}

func init() {
	for sq := SqA1; sq <= SqH8; sq++ {
		rankLines[sq] = computeLine(sq.RankBb(), sq)
		fileLines[sq] = computeLine(sq.FileBb(), sq)
		diagLines[sq] = computeLine(sq.DiagBb(), sq)
		antiLines[sq] = computeLine(sq.AntiDiagBb(), sq)
	}

	for sq := SqA1; sq <= SqH8; sq++ {
		fillTable(&rankAttacks[sq], rankLines[sq])
		fillTable(&fileAttacks[sq], fileLines[sq])
		fillTable(&diagAttacks[sq], diagLines[sq])
		fillTable(&antiAttacks[sq], antiLines[sq])
	}
}

func computeLine(lineBb Bitboard, sq Square) line {
	squares := squaresOf(lineBb)
	pos := 0
	for i, s := range squares {
		if s == sq {
			pos = i
			break
		}
	}
	return line{squares: squares, pos: pos}
}

func fillTable(table *[256]Bitboard, l line) {
	n := len(l.squares)
	for occByte := 0; occByte < 256; occByte++ {
		result := raySlide(l.pos, n, uint16(occByte))
		var bb Bitboard
		for i, sq := range l.squares {
			if result&(1<<uint(i)) != 0 {
				bb |= sq.Bb()
			}
		}
		table[occByte] = bb
	}
}

// gather extracts, from occ, the occupancy byte along the given line (bit i
// set iff line.squares[i] is occupied), for lines of up to 8 squares.
func gather(occ Bitboard, l line) uint8 {
	var b uint8
	for i, sq := range l.squares {
		if occ.Has(sq) {
			b |= 1 << uint(i)
		}
	}
	return b
}

// RookAttacks returns the squares a rook on sq attacks given the full board
// occupancy occ (first blocker in each direction included; the caller masks
// out same-color blockers).
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	rl := rankLines[sq]
	fl := fileLines[sq]
	return rankAttacks[sq][gather(occ, rl)] | fileAttacks[sq][gather(occ, fl)]
}

// BishopAttacks returns the squares a bishop on sq attacks given occ.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	dl := diagLines[sq]
	al := antiLines[sq]
	return diagAttacks[sq][gather(occ, dl)] | antiAttacks[sq][gather(occ, al)]
}

// QueenAttacks returns the squares a queen on sq attacks given occ.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// CenterFourSquares are D4, E4, D5, E5 — the king-of-the-hill target squares.
var CenterFourSquares = SqD4.Bb() | SqE4.Bb() | SqD5.Bb() | SqE5.Bb()

// RingOfRadius2 is the ring of squares at Chebyshev distance exactly 2 from
// the center four squares, used for the king-of-the-hill evaluation bonus.
var RingOfRadius2 Bitboard

// RingOfRadius3 is the ring of squares at Chebyshev distance exactly 3 from
// the center four squares.
var RingOfRadius3 Bitboard

func chebyshevDistToCenter(sq Square) int {
	f, r := int(sq.FileOf()), int(sq.RankOf())
	best := 100
	for _, c := range []Square{SqD4, SqE4, SqD5, SqE5} {
		cf, cr := int(c.FileOf()), int(c.RankOf())
		df, dr := f-cf, r-cr
		if df < 0 {
			df = -df
		}
		if dr < 0 {
			dr = -dr
		}
		dist := df
		if dr > dist {
			dist = dr
		}
		if dist < best {
			best = dist
		}
	}
	return best
}

func init() {
	for sq := SqA1; sq <= SqH8; sq++ {
		switch chebyshevDistToCenter(sq) {
		case 2:
			RingOfRadius2 |= sq.Bb()
		case 3:
			RingOfRadius3 |= sq.Bb()
		}
	}
}
