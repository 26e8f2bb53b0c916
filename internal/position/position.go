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

// Package position holds the mutable board representation: bitboards, piece
// list, side to move, castling rights, en-passant state, incremental
// Zobrist hash and the history stacks that make Apply/Undo exact inverses
// of each other.
package position

import (
	"fmt"
	"strings"

	"github.com/halvorsen/hmbird/internal/attacks"
	"github.com/halvorsen/hmbird/internal/move"
	. "github.com/halvorsen/hmbird/internal/types"
	"github.com/halvorsen/hmbird/internal/variant"
	"github.com/halvorsen/hmbird/internal/zobrist"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the mutable board state for one game.
type Position struct {
	pieces  [PieceLength]Bitboard
	players [ColorLength]Bitboard
	occ     Bitboard
	list    [SqLength]Piece

	sideToMove Color
	castling   CastlingRights
	ep         Bitboard
	hash       uint64
	halfmove   int
	v          variant.Variant

	moveHist     []move.Move
	epHist       []Bitboard
	castlingHist []CastlingRights
	hashHist     []uint64
	halfmoveHist []int
	epCapHist    []bool

	piecesHist  [][PieceLength]Bitboard
	playersHist [][ColorLength]Bitboard
	listHist    [][SqLength]Piece
}

// New returns an empty position for the given variant (no pieces, white to
// move). Use SetupFen or SetupVisual to populate it.
func New(v variant.Variant) *Position {
	return &Position{v: v}
}

// NewStart returns the standard starting position for the given variant.
func NewStart(v variant.Variant) *Position {
	p := New(v)
	if err := p.SetupFen(StartFen); err != nil {
		panic(err)
	}
	return p
}

// Variant returns the position's rule variant.
func (p *Position) Variant() variant.Variant { return p.v }

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// Occupied returns the union of all occupied squares.
func (p *Position) Occupied() Bitboard { return p.occ }

// Pieces returns the bitboard of all pieces of kind pc (any color).
func (p *Position) Pieces(pc Piece) Bitboard { return p.pieces[pc] }

// PiecesOf returns the bitboard of pieces of kind pc belonging to c.
func (p *Position) PiecesOf(c Color, pc Piece) Bitboard { return p.pieces[pc] & p.players[c] }

// Players returns the bitboard of all pieces belonging to c.
func (p *Position) Players(c Color) Bitboard { return p.players[c] }

// PieceAt returns the piece kind on sq, PieceNone if empty.
func (p *Position) PieceAt(sq Square) Piece { return p.list[sq] }

// ColorAt returns the color of the piece on sq. Only meaningful if sq is
// occupied.
func (p *Position) ColorAt(sq Square) Color {
	if p.players[White].Has(sq) {
		return White
	}
	return Black
}

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// EnPassant returns the en-passant target bitboard (zero or one bit).
func (p *Position) EnPassant() Bitboard { return p.ep }

// Hash returns the incrementally maintained Zobrist hash.
func (p *Position) Hash() uint64 { return p.hash }

// HalfmoveClock returns plies since the last irreversible move.
func (p *Position) HalfmoveClock() int { return p.halfmove }

// PlyCount returns the number of moves applied so far (== len of every
// history stack).
func (p *Position) PlyCount() int { return len(p.moveHist) }

// LastMove returns the most recently applied move, or move.Null if none.
func (p *Position) LastMove() move.Move {
	if len(p.moveHist) == 0 {
		return move.Null
	}
	return p.moveHist[len(p.moveHist)-1]
}

func (p *Position) clear() {
	for i := range p.pieces {
		p.pieces[i] = 0
	}
	p.players[White] = 0
	p.players[Black] = 0
	p.occ = 0
	for i := range p.list {
		p.list[i] = PieceNone
	}
	p.sideToMove = White
	p.castling = 0
	p.ep = 0
	p.hash = 0
	p.halfmove = 0
	p.moveHist = p.moveHist[:0]
	p.epHist = p.epHist[:0]
	p.castlingHist = p.castlingHist[:0]
	p.hashHist = p.hashHist[:0]
	p.halfmoveHist = p.halfmoveHist[:0]
	p.epCapHist = p.epCapHist[:0]
	p.piecesHist = p.piecesHist[:0]
	p.playersHist = p.playersHist[:0]
	p.listHist = p.listHist[:0]
}

func (p *Position) place(sq Square, pc Piece, c Color) {
	p.pieces[pc] = PushSquare(p.pieces[pc], sq)
	p.players[c] = PushSquare(p.players[c], sq)
	p.list[sq] = pc
}

// ComputeHash recomputes the Zobrist hash from scratch from current board
// state, ignoring the incrementally maintained value. Used by SetupFen/
// SetupVisual and by the hash-consistency test in the test suite.
func (p *Position) ComputeHash() uint64 {
	var h uint64
	for sq := SqA1; sq <= SqH8; sq++ {
		pc := p.list[sq]
		if pc == PieceNone {
			continue
		}
		h ^= zobrist.Piece[sq][p.ColorAt(sq)][pc]
	}
	if p.castling.Has(CastleWK) {
		h ^= zobrist.KingsideCastling[White]
	}
	if p.castling.Has(CastleBK) {
		h ^= zobrist.KingsideCastling[Black]
	}
	if p.castling.Has(CastleWQ) {
		h ^= zobrist.QueensideCastling[White]
	}
	if p.castling.Has(CastleBQ) {
		h ^= zobrist.QueensideCastling[Black]
	}
	if p.ep != 0 {
		h ^= zobrist.EnPassantFile[p.ep.Lsb().FileOf()]
	}
	if p.sideToMove == Black {
		h ^= zobrist.ActivePlayer
	}
	return h
}

func (p *Position) recomputeOccupied() {
	p.occ = p.players[White] | p.players[Black]
}

// SanityCheck validates invariants I1-I9 from the data model and returns a
// human-readable description for every violation found. It does not panic;
// programmer-error assertions live in the assert package instead.
func (p *Position) SanityCheck() []string {
	var problems []string
	if p.players[White]&p.players[Black] != 0 {
		problems = append(problems, "players[WHITE] and players[BLACK] overlap")
	}
	if p.occ != p.players[White]|p.players[Black] {
		problems = append(problems, "occupied != players[WHITE] | players[BLACK]")
	}
	for sq := SqA1; sq <= SqH8; sq++ {
		pc := p.list[sq]
		occupied := p.occ.Has(sq)
		if (pc != PieceNone) != occupied {
			problems = append(problems, fmt.Sprintf("list[%s]=%v inconsistent with occupied", sq, pc))
			continue
		}
		if pc == PieceNone {
			continue
		}
		if !p.pieces[pc].Has(sq) {
			problems = append(problems, fmt.Sprintf("pieces[%v] missing square %s", pc, sq))
		}
		wOn, bOn := p.players[White].Has(sq), p.players[Black].Has(sq)
		if wOn == bOn {
			problems = append(problems, fmt.Sprintf("square %s not owned by exactly one color", sq))
		}
	}
	for pc := Pawn; pc < PieceLength; pc++ {
		for q := pc + 1; q < PieceLength; q++ {
			if p.pieces[pc]&p.pieces[q] != 0 {
				problems = append(problems, fmt.Sprintf("pieces[%v] and pieces[%v] overlap", pc, q))
			}
		}
	}
	if p.ep.PopCount() > 1 {
		problems = append(problems, "more than one en-passant bit set")
	}
	if p.ep != 0 {
		r := p.ep.Lsb().RankOf()
		want := Rank3
		if p.sideToMove == White {
			want = Rank6
		}
		if r != want {
			problems = append(problems, "en-passant square on wrong rank for side to move")
		}
	}
	if len(p.epHist) != len(p.moveHist) || len(p.castlingHist) != len(p.moveHist) ||
		len(p.hashHist) != len(p.moveHist) || len(p.halfmoveHist) != len(p.moveHist) ||
		len(p.epCapHist) != len(p.moveHist) {
		problems = append(problems, "history stacks have unequal length")
	}
	if p.halfmove > len(p.moveHist) {
		problems = append(problems, "halfmove clock exceeds move history length")
	}
	if p.castling.Has(CastleWK) && (p.list[SqE1] != King || !p.players[White].Has(SqE1) || p.list[SqH1] != Rook || !p.players[White].Has(SqH1)) {
		problems = append(problems, "white kingside castling right set without king/rook on home squares")
	}
	if p.castling.Has(CastleWQ) && (p.list[SqE1] != King || !p.players[White].Has(SqE1) || p.list[SqA1] != Rook || !p.players[White].Has(SqA1)) {
		problems = append(problems, "white queenside castling right set without king/rook on home squares")
	}
	if p.castling.Has(CastleBK) && (p.list[SqE8] != King || !p.players[Black].Has(SqE8) || p.list[SqH8] != Rook || !p.players[Black].Has(SqH8)) {
		problems = append(problems, "black kingside castling right set without king/rook on home squares")
	}
	if p.castling.Has(CastleBQ) && (p.list[SqE8] != King || !p.players[Black].Has(SqE8) || p.list[SqA8] != Rook || !p.players[Black].Has(SqA8)) {
		problems = append(problems, "black queenside castling right set without king/rook on home squares")
	}
	return problems
}

// AttackedSquares returns the union of all squares a piece of color c
// attacks, pawns counted as attacking their two diagonal-forward squares.
func (p *Position) AttackedSquares(c Color) Bitboard {
	var a Bitboard
	pawns := p.pieces[Pawn] & p.players[c]
	if c == White {
		a |= ShiftBitboard(pawns, Northeast) | ShiftBitboard(pawns, Northwest)
	} else {
		a |= ShiftBitboard(pawns, Southeast) | ShiftBitboard(pawns, Southwest)
	}
	knights := p.pieces[Knight] & p.players[c]
	for knights != 0 {
		a |= knights.PopLsb().KnightAttacks()
	}
	diagSliders := (p.pieces[Bishop] | p.pieces[Queen]) & p.players[c]
	for diagSliders != 0 {
		a |= attacks.BishopAttacks(diagSliders.PopLsb(), p.occ)
	}
	lineSliders := (p.pieces[Rook] | p.pieces[Queen]) & p.players[c]
	for lineSliders != 0 {
		a |= attacks.RookAttacks(lineSliders.PopLsb(), p.occ)
	}
	kings := p.pieces[King] & p.players[c]
	for kings != 0 {
		a |= kings.PopLsb().KingAttacks()
	}
	return a
}

// IsCheck reports whether the king of color c is attacked. Always false
// under CheckDisabled variants, and false if c has no king at all (possible
// under win-by-king-capture variants).
func (p *Position) IsCheck(c Color) bool {
	if p.v.CheckDisabled() {
		return false
	}
	kingBb := p.pieces[King] & p.players[c]
	if kingBb == 0 {
		return false
	}
	return p.AttackedSquares(c.Other())&kingBb != 0
}

// AlternativeWinningConditionMet reports whether c has already won by one
// of the variant-specific alternative conditions (king capture, LOSER's
// no-pieces rule, king-of-the-hill).
func (p *Position) AlternativeWinningConditionMet(c Color) bool {
	if p.v.WinByKingCapture() && p.pieces[King]&p.players[c.Other()] == 0 {
		return true
	}
	if p.v == variant.Loser && p.players[c] == 0 && p.sideToMove == c {
		return true
	}
	if p.v.KingOfTheHill() && (p.pieces[King]&p.players[c])&attacks.CenterFourSquares != 0 {
		return true
	}
	return false
}

func (p *Position) repetitionCount() int {
	count := 1
	n := len(p.hashHist)
	limit := p.halfmove
	if limit > n {
		limit = n
	}
	for i := 2; i <= limit; i += 2 {
		if p.hashHist[n-i] == p.hash {
			count++
		}
	}
	return count
}

// IsTwoMoveRepetition reports whether the current position has occurred at
// least twice within the reversible window (i.e. this occurrence is at
// least the second).
func (p *Position) IsTwoMoveRepetition() bool { return p.repetitionCount() >= 2 }

// IsThreeMoveRepetition reports whether the current position has occurred
// at least three times within the reversible window.
func (p *Position) IsThreeMoveRepetition() bool { return p.repetitionCount() >= 3 }

// IsFiftyMoveDraw reports whether 75 or more reversible half-moves have
// been played in a row.
func (p *Position) IsFiftyMoveDraw() bool { return p.halfmove >= 75 }

// String renders the position as an 8-line board (rank 8 first) followed
// by the side/castling/ep trailer line, matching the visual notation in
// §6 without the spacing/wildcard conventions SetupVisual accepts.
func (p *Position) String() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f < FileLength; f++ {
			sq := SquareOf(f, r)
			pc := p.list[sq]
			if pc == PieceNone {
				sb.WriteString(". ")
			} else {
				sb.WriteString(pc.Char(p.ColorAt(sq)) + " ")
			}
		}
		sb.WriteString("\n")
	}
	epStr := "-"
	if p.ep != 0 {
		epStr = p.ep.Lsb().String()
	}
	sb.WriteString(fmt.Sprintf("%s %s %s\n", p.sideToMove.String(), p.castling.String(), epStr))
	return sb.String()
}
