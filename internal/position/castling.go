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

package position

import . "github.com/halvorsen/hmbird/internal/types"

// CastlingRights packs the four castling rights into one byte.
type CastlingRights uint8

// The four castling right bits.
const (
	CastleWK CastlingRights = 1 << iota
	CastleWQ
	CastleBK
	CastleBQ
	CastleAll = CastleWK | CastleWQ | CastleBK | CastleBQ
)

// Has reports whether r is set.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r != 0
}

// String renders castling rights FEN-style, e.g. "KQkq" or "-".
func (c CastlingRights) String() string {
	if c == 0 {
		return "-"
	}
	s := ""
	if c.Has(CastleWK) {
		s += "K"
	}
	if c.Has(CastleWQ) {
		s += "Q"
	}
	if c.Has(CastleBK) {
		s += "k"
	}
	if c.Has(CastleBQ) {
		s += "q"
	}
	return s
}

func kingHome(c Color) Square {
	if c == White {
		return SqE1
	}
	return SqE8
}

func kingsideRookHome(c Color) Square {
	if c == White {
		return SqH1
	}
	return SqH8
}

func queensideRookHome(c Color) Square {
	if c == White {
		return SqA1
	}
	return SqA8
}

func kingsideRookTo(c Color) Square {
	if c == White {
		return SqF1
	}
	return SqF8
}

func queensideRookTo(c Color) Square {
	if c == White {
		return SqD1
	}
	return SqD8
}

func kingsideCastleTo(c Color) Square {
	if c == White {
		return SqG1
	}
	return SqG8
}

func queensideCastleTo(c Color) Square {
	if c == White {
		return SqC1
	}
	return SqC8
}

func kingsideRight(c Color) CastlingRights {
	if c == White {
		return CastleWK
	}
	return CastleBK
}

func queensideRight(c Color) CastlingRights {
	if c == White {
		return CastleWQ
	}
	return CastleBQ
}
