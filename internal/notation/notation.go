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

// Package notation converts between move.Move and the two textual move
// formats the engine accepts: long algebraic ("e7e8q", "null") and short
// (SAN-like, "Nf3", "O-O", "exd5=Q#").
package notation

import (
	"strings"

	"github.com/halvorsen/hmbird/internal/move"
	"github.com/halvorsen/hmbird/internal/movegen"
	"github.com/halvorsen/hmbird/internal/position"
	. "github.com/halvorsen/hmbird/internal/types"
)

// ParseLong parses a long-algebraic move string ("e2e4", "e7e8q", "null")
// against the legal moves available in p, and reports whether it matched
// one.
func ParseLong(p *position.Position, s string) (move.Move, bool) {
	s = strings.TrimSpace(s)
	if s == "null" || s == "0000" {
		return move.Null, true
	}
	if len(s) < 4 {
		return move.Null, false
	}
	from, ok1 := SquareFromString(s[0:2])
	to, ok2 := SquareFromString(s[2:4])
	if !ok1 || !ok2 {
		return move.Null, false
	}
	var promo Piece
	if len(s) >= 5 {
		switch s[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		}
	}
	for _, m := range movegen.LegalMoves(p) {
		if m.From() != from || m.To() != to {
			continue
		}
		if promo != PieceNone && m.Promotion() != promo {
			continue
		}
		if promo == PieceNone && m.IsPromotion() {
			continue
		}
		return m, true
	}
	return move.Null, false
}

// WriteLong renders m in long-algebraic form. Equivalent to m.String(), kept
// as a named entry point alongside WriteShort for symmetry.
func WriteLong(m move.Move) string {
	return m.String()
}

var pieceLetter = [PieceLength]string{"", "", "N", "B", "R", "Q", "K"}

// WriteShort renders m in SAN-like short algebraic notation relative to p
// (the position before m is played): piece letter (omitted for pawns),
// disambiguation when needed, capture 'x', destination, promotion suffix,
// and a trailing '+' or '#' for check/checkmate. Castling renders as
// "O-O"/"O-O-O".
func WriteShort(p *position.Position, m move.Move) string {
	if m == move.Null {
		return "null"
	}
	if m.Piece() == King {
		diff := int(m.To()) - int(m.From())
		if diff == 2 {
			return appendCheckSuffix(p, m, "O-O")
		}
		if diff == -2 {
			return appendCheckSuffix(p, m, "O-O-O")
		}
	}

	var sb strings.Builder
	if m.Piece() != Pawn {
		sb.WriteString(pieceLetter[m.Piece()])
		sb.WriteString(disambiguation(p, m))
	} else if m.IsCapture() {
		sb.WriteString(m.From().FileOf().String())
	}
	if m.IsCapture() {
		sb.WriteString("x")
	}
	sb.WriteString(m.To().String())
	if m.IsPromotion() {
		sb.WriteString("=")
		sb.WriteString(pieceLetter[m.Promotion()])
	}
	return appendCheckSuffix(p, m, sb.String())
}

// disambiguation returns the minimal from-square qualifier (file, rank, or
// both) needed to distinguish m among other legal moves of the same piece
// kind to the same destination.
func disambiguation(p *position.Position, m move.Move) string {
	var sameFile, sameRank, any bool
	for _, other := range movegen.LegalMoves(p) {
		if other == m || other.Piece() != m.Piece() || other.To() != m.To() {
			continue
		}
		any = true
		if other.From().FileOf() == m.From().FileOf() {
			sameFile = true
		}
		if other.From().RankOf() == m.From().RankOf() {
			sameRank = true
		}
	}
	if !any {
		return ""
	}
	switch {
	case !sameFile:
		return m.From().FileOf().String()
	case !sameRank:
		return m.From().RankOf().String()
	default:
		return m.From().String()
	}
}

func appendCheckSuffix(p *position.Position, m move.Move, s string) string {
	if !p.Attempt(m) {
		return s // should not happen for a move drawn from LegalMoves
	}
	defer p.Undo()
	mover := p.SideToMove().Other()
	opponent := mover.Other()
	if !p.IsCheck(opponent) {
		return s
	}
	if len(movegen.LegalMoves(p)) == 0 {
		return s + "#"
	}
	return s + "+"
}

// ParseShort parses SAN-like short algebraic notation against the legal
// moves of p. It is permissive about check/mate suffixes (+, #) and capture
// marks (x) so that output from WriteShort always round-trips; a promotion
// must carry "=" exactly as WriteShort writes it.
func ParseShort(p *position.Position, s string) (move.Move, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "+#")
	if s == "null" {
		return move.Null, true
	}
	legal := movegen.LegalMoves(p)
	if s == "O-O" {
		for _, m := range legal {
			if m.Piece() == King && int(m.To())-int(m.From()) == 2 {
				return m, true
			}
		}
		return move.Null, false
	}
	if s == "O-O-O" {
		for _, m := range legal {
			if m.Piece() == King && int(m.To())-int(m.From()) == -2 {
				return m, true
			}
		}
		return move.Null, false
	}
	for _, m := range legal {
		if WriteShort(p, m) == s || stripDecorations(WriteShort(p, m)) == stripDecorations(s) {
			return m, true
		}
	}
	return move.Null, false
}

func stripDecorations(s string) string {
	s = strings.TrimRight(s, "+#")
	s = strings.ReplaceAll(s, "x", "")
	return s
}
