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

// Package types holds the primitive board representation types shared by
// every other package: squares, files, ranks, colors, pieces, directions
// and bitboards.
package types

import "fmt"

// Square is a board square, 0..63, A1=0 .. H8=63, file = sq % 8, rank = sq / 8.
type Square int8

// SqNone is the sentinel "no square" value, used for an absent en-passant
// target among other things.
const SqNone = Square(64)

// SqLength is the number of squares on the board.
const SqLength = 64

// Named squares.
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
)

// File is a board file, 0 (A) .. 7 (H).
type File int8

// Named files.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileLength
)

// Rank is a board rank, 0 (rank 1) .. 7 (rank 8).
type Rank int8

// Named ranks.
const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankLength
)

var fileNames = [FileLength]string{"a", "b", "c", "d", "e", "f", "g", "h"}
var rankNames = [RankLength]string{"1", "2", "3", "4", "5", "6", "7", "8"}

// SquareOf returns the square for a given file and rank.
func SquareOf(f File, r Rank) Square {
	return Square(int(r)*8 + int(f))
}

// FileOf returns the file (0..7) of the square.
func (sq Square) FileOf() File {
	return File(int(sq) & 7)
}

// RankOf returns the rank (0..7) of the square.
func (sq Square) RankOf() Rank {
	return Rank(int(sq) >> 3)
}

// Valid reports whether sq is a square on the board (0..63).
func (sq Square) Valid() bool {
	return sq >= SqA1 && sq <= SqH8
}

// String returns the algebraic name of the square, e.g. "e4".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return fileNames[sq.FileOf()] + rankNames[sq.RankOf()]
}

// String returns the single-letter name of the file.
func (f File) String() string {
	if f < FileA || f > FileH {
		return "-"
	}
	return fileNames[f]
}

// String returns the single-digit name of the rank.
func (r Rank) String() string {
	if r < Rank1 || r > Rank8 {
		return "-"
	}
	return rankNames[r]
}

// SquareFromString parses an algebraic square name ("e4") and reports
// whether parsing succeeded.
func SquareFromString(s string) (Square, bool) {
	if len(s) != 2 {
		return SqNone, false
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone, false
	}
	return SquareOf(File(f-'a'), Rank(r-'1')), true
}

// Direction is one of the eight compass directions a bitboard may be
// shifted in.
type Direction int8

// The eight compass directions.
const (
	North Direction = iota
	East
	South
	West
	Northeast
	Southeast
	Southwest
	Northwest
)

// GoString supports %#v / debug formatting.
func (sq Square) GoString() string {
	return fmt.Sprintf("Square(%d=%s)", int(sq), sq.String())
}
