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

// Package zobrist holds the process-wide table of Zobrist keys used to
// incrementally maintain Position.Hash. Keys are drawn once at init from a
// seeded 64-bit Mersenne Twister so that the same seed always yields the
// same table, in any conformant reimplementation.
package zobrist

import . "github.com/halvorsen/hmbird/internal/types"

// Seed is the fixed seed used to draw the key sequence. Must never change:
// opening books and persisted hash values depend on it.
const Seed = 26

// KeyCount is the number of 64-bit keys drawn from the generator at init,
// matching the reference implementation's draw count even though only a
// subset is assigned below; the remainder keeps the generator state (and
// thus any implementation that draws further keys from it) aligned.
const KeyCount = 1024

// Piece tracks a key per square, per color, per piece kind. Index order is
// Piece[square][color][piece]; PieceNone's row stays all-zero.
var Piece [SqLength][ColorLength][PieceLength]uint64

// KingsideCastling holds one key per color for the kingside castling right.
var KingsideCastling [ColorLength]uint64

// QueensideCastling holds one key per color for the queenside castling right.
var QueensideCastling [ColorLength]uint64

// ActivePlayer is XORed into the hash whenever side-to-move changes.
var ActivePlayer uint64

// EnPassantFile holds one key per file, XORed in while an en-passant
// capture is available on that file.
var EnPassantFile [FileLength]uint64

func init() {
	gen := newMT19937_64(Seed)

	draws := make([]uint64, KeyCount)
	for i := range draws {
		draws[i] = gen.next()
	}

	next := 0
	draw := func() uint64 {
		k := draws[next]
		next++
		return k
	}

	for sq := SqA1; sq <= SqH8; sq++ {
		for c := White; c < ColorLength; c++ {
			for p := Pawn; p < PieceLength; p++ {
				Piece[sq][c][p] = draw()
			}
		}
	}
	KingsideCastling[White] = draw()
	KingsideCastling[Black] = draw()
	QueensideCastling[White] = draw()
	QueensideCastling[Black] = draw()
	ActivePlayer = draw()
	for f := FileA; f < FileLength; f++ {
		EnPassantFile[f] = draw()
	}
}
