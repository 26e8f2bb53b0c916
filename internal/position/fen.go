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

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/halvorsen/hmbird/internal/types"
)

// SetupFen resets the position to the board described by a standard 6-field
// FEN string (piece placement, side to move, castling rights, en-passant
// square, half-move clock, full-move number). The half-move clock is parsed
// if present (otherwise 0); the full-move number is accepted but not stored.
func (p *Position) SetupFen(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("position: malformed FEN %q: need at least 4 fields", fen)
	}

	p.clear()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("position: malformed FEN %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			pc, col, ok := PieceFromChar(byte(ch))
			if !ok {
				return fmt.Errorf("position: malformed FEN %q: bad piece char %q", fen, ch)
			}
			if f >= FileLength {
				return fmt.Errorf("position: malformed FEN %q: rank %d overflows", fen, i)
			}
			p.place(SquareOf(f, r), pc, col)
			f++
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return fmt.Errorf("position: malformed FEN %q: bad side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castling |= CastleWK
			case 'Q':
				p.castling |= CastleWQ
			case 'k':
				p.castling |= CastleBK
			case 'q':
				p.castling |= CastleBQ
			default:
				return fmt.Errorf("position: malformed FEN %q: bad castling char %q", fen, ch)
			}
		}
	}

	if fields[3] != "-" {
		sq, ok := SquareFromString(fields[3])
		if !ok {
			return fmt.Errorf("position: malformed FEN %q: bad en-passant square %q", fen, fields[3])
		}
		p.ep = sq.Bb()
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err == nil {
			p.halfmove = n
		}
	}

	p.recomputeOccupied()
	p.hash = p.ComputeHash()
	return nil
}

// WriteFen renders the position as a standard 6-field FEN string. The
// half-move field is always written as 0 and the full-move field always as
// 1: this engine tracks reversible-move count for draw detection but not
// full-move numbering, since no operation in this package consumes it.
func (p *Position) WriteFen() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f < FileLength; f++ {
			sq := SquareOf(f, r)
			pc := p.list[sq]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.Char(p.ColorAt(sq)))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > Rank1 {
			sb.WriteString("/")
		}
	}
	sb.WriteString(" ")
	sb.WriteString(p.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(p.castling.String())
	sb.WriteString(" ")
	if p.ep == 0 {
		sb.WriteString("-")
	} else {
		sb.WriteString(p.ep.Lsb().String())
	}
	sb.WriteString(" 0 1")
	return sb.String()
}

// SetupVisual parses the 8-line-board-plus-trailer visual notation described
// in the external-interfaces section: eight board lines (rank 8 first, each
// square a piece letter or '.'), followed by a trailer line of side/castling
// /en-passant tokens. A trailer token of "*" means "leave this field at its
// current default" (side defaults to white, castling to none, en-passant to
// none), matching the wildcard convention test positions use when a field is
// irrelevant to what they're probing.
func (p *Position) SetupVisual(text string) error {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) < 9 {
		return fmt.Errorf("position: malformed visual notation: need 8 board lines + trailer, got %d lines", len(lines))
	}

	p.clear()

	for i := 0; i < 8; i++ {
		r := Rank8 - Rank(i)
		row := strings.Fields(lines[i])
		if len(row) != 8 {
			return fmt.Errorf("position: malformed visual notation: rank line %d has %d tokens, want 8", i, len(row))
		}
		for f := FileA; f < FileLength; f++ {
			tok := row[f]
			if tok == "." {
				continue
			}
			pc, col, ok := PieceFromChar(tok[0])
			if !ok {
				return fmt.Errorf("position: malformed visual notation: bad piece token %q", tok)
			}
			p.place(SquareOf(f, r), pc, col)
		}
	}

	trailer := strings.Fields(lines[8])
	p.sideToMove = White
	if len(trailer) >= 1 && trailer[0] != "*" {
		switch trailer[0] {
		case "w":
			p.sideToMove = White
		case "b":
			p.sideToMove = Black
		default:
			return fmt.Errorf("position: malformed visual notation: bad side token %q", trailer[0])
		}
	}
	if len(trailer) >= 2 && trailer[1] != "*" && trailer[1] != "-" {
		for _, ch := range trailer[1] {
			switch ch {
			case 'K':
				p.castling |= CastleWK
			case 'Q':
				p.castling |= CastleWQ
			case 'k':
				p.castling |= CastleBK
			case 'q':
				p.castling |= CastleBQ
			}
		}
	}
	if len(trailer) >= 3 && trailer[2] != "*" && trailer[2] != "-" {
		sq, ok := SquareFromString(trailer[2])
		if ok {
			p.ep = sq.Bb()
		}
	}

	p.recomputeOccupied()
	p.hash = p.ComputeHash()
	return nil
}

// WriteVisual renders the position in the same format SetupVisual parses,
// with no wildcards: every trailer field is always written explicitly.
func (p *Position) WriteVisual() string {
	return p.String()
}
