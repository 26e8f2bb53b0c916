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

// Package movegen generates quasi-legal and legal moves for a position,
// honoring the active rule variant's friendly-fire, forced-capture and
// forced-check predicates.
package movegen

import (
	"github.com/halvorsen/hmbird/internal/attacks"
	"github.com/halvorsen/hmbird/internal/move"
	"github.com/halvorsen/hmbird/internal/position"
	. "github.com/halvorsen/hmbird/internal/types"
	"github.com/halvorsen/hmbird/internal/variant"
)

// GenerateMoves returns every quasi-legal move for the side to move, in the
// order: pawn captures, pawn pushes, knight moves, bishop/rook/queen slides,
// castling, king moves. A move is quasi-legal if it follows its piece's
// movement rules and respects friendly-fire, but may still leave its own
// king in check; LegalMoves below filters that out via position.Attempt.
func GenerateMoves(p *position.Position) []move.Move {
	c := p.SideToMove()
	v := p.Variant()

	destMask := ^p.Players(c)
	if v.FriendlyFire() {
		destMask = ^p.PiecesOf(c, King)
	}

	var moves []move.Move
	moves = genPawnCaptures(p, c, v, moves)
	moves = genPawnPushes(p, c, moves)
	moves = genKnightMoves(p, c, destMask, moves)
	moves = genSliderMoves(p, c, destMask, moves)
	moves = genCastling(p, c, moves)
	moves = genKingMoves(p, c, destMask, moves)
	return moves
}

// LegalMoves returns every move that survives position.Attempt, filtered
// further by the active variant's forced-capture / forced-check rule: if
// any surviving move qualifies (is a capture / delivers check), only
// qualifying moves are legal; otherwise every surviving move is legal.
func LegalMoves(p *position.Position) []move.Move {
	v := p.Variant()
	candidates := GenerateMoves(p)

	var legal []move.Move
	var captures []move.Move
	var checks []move.Move
	mover := p.SideToMove()

	for _, m := range candidates {
		isCapture := m.IsCapture()
		if !p.Attempt(m) {
			continue
		}
		delivers := p.IsCheck(mover.Other())
		p.Undo()

		legal = append(legal, m)
		if isCapture {
			captures = append(captures, m)
		}
		if delivers {
			checks = append(checks, m)
		}
	}

	if v.ForcedCapture() && len(captures) > 0 {
		return captures
	}
	if v.ForcedCheck() && len(checks) > 0 {
		return checks
	}
	return legal
}

// IsStalemate reports whether the side to move has no legal moves and is
// not in check (meaningless, and always false, for CheckDisabled variants).
func IsStalemate(p *position.Position) bool {
	if p.Variant().CheckDisabled() {
		return false
	}
	return !p.IsCheck(p.SideToMove()) && len(LegalMoves(p)) == 0
}

// IsCheckmate reports whether the side to move is in check with no legal
// moves.
func IsCheckmate(p *position.Position) bool {
	if p.Variant().CheckDisabled() {
		return false
	}
	return p.IsCheck(p.SideToMove()) && len(LegalMoves(p)) == 0
}

// IsDraw reports whether the position is drawn by the fifty-move rule or
// threefold repetition.
func IsDraw(p *position.Position) bool {
	return p.IsFiftyMoveDraw() || p.IsThreeMoveRepetition()
}

// IsFinished reports whether the game is over: checkmate, stalemate, draw,
// or an alternative winning condition has been met by either side.
func IsFinished(p *position.Position) bool {
	if IsDraw(p) {
		return true
	}
	if p.AlternativeWinningConditionMet(White) || p.AlternativeWinningConditionMet(Black) {
		return true
	}
	if p.Variant().WinByCheckmate() && (IsCheckmate(p) || IsStalemate(p)) {
		return true
	}
	if !p.Variant().WinByCheckmate() && len(LegalMoves(p)) == 0 {
		return true // LOSER: no legal move is itself the win condition
	}
	return false
}

func promotionRank(c Color) Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

func pawnStartRank(c Color) Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

func pawnForward(c Color) Direction {
	if c == White {
		return North
	}
	return South
}

func startRankBb(c Color) Bitboard {
	r := pawnStartRank(c)
	var bb Bitboard
	for f := FileA; f < FileLength; f++ {
		bb |= SquareOf(f, r).Bb()
	}
	return bb
}

// backOf returns the square a pawn moved from, given its destination and the
// diagonal direction it traveled.
func backOf(to Square, dir Direction) Square {
	switch dir {
	case Northeast:
		return to - 9
	case Northwest:
		return to - 7
	case Southeast:
		return to + 7
	case Southwest:
		return to + 9
	}
	return to
}

func genPawnCaptures(p *position.Position, c Color, v variant.Variant, moves []move.Move) []move.Move {
	pawns := p.PiecesOf(c, Pawn)
	targets := p.Players(c.Other())
	if v.FriendlyFire() {
		targets = p.Occupied() &^ p.PiecesOf(c, King)
	}
	epTarget := p.EnPassant()

	left, right := Southwest, Southeast
	if c == White {
		left, right = Northwest, Northeast
	}

	for _, dir := range [2]Direction{left, right} {
		dests := ShiftBitboard(pawns, dir) & (targets | epTarget)
		for dests != 0 {
			to := dests.PopLsb()
			from := backOf(to, dir)

			if epTarget.Has(to) && p.PieceAt(to) == PieceNone {
				moves = append(moves, move.CreateCaptureMove(from, to, Pawn, Pawn, c.Other()))
				continue
			}

			capColor := c.Other()
			if p.Players(c).Has(to) {
				capColor = c
			}
			target := p.PieceAt(to)

			if to.RankOf() == promotionRank(c) {
				for _, promo := range [4]Piece{Queen, Rook, Bishop, Knight} {
					moves = append(moves, move.CreatePromotionCaptureMove(from, to, Pawn, promo, target, capColor))
				}
				continue
			}
			moves = append(moves, move.CreateCaptureMove(from, to, Pawn, target, capColor))
		}
	}
	return moves
}

func genPawnPushes(p *position.Position, c Color, moves []move.Move) []move.Move {
	pawns := p.PiecesOf(c, Pawn)
	fwd := pawnForward(c)
	empty := ^p.Occupied()

	single := ShiftBitboard(pawns, fwd) & empty
	for single != 0 {
		to := single.PopLsb()
		var from Square
		if c == White {
			from = to - 8
		} else {
			from = to + 8
		}
		if to.RankOf() == promotionRank(c) {
			for _, promo := range [4]Piece{Queen, Rook, Bishop, Knight} {
				moves = append(moves, move.CreatePromotionMove(from, to, Pawn, promo, SqNone))
			}
			continue
		}
		moves = append(moves, move.CreateMove(from, to, Pawn, SqNone))
	}

	doubleStarters := pawns & startRankBb(c)
	oneStep := ShiftBitboard(doubleStarters, fwd) & empty
	double := ShiftBitboard(oneStep, fwd) & empty
	for double != 0 {
		to := double.PopLsb()
		var from, epSq Square
		if c == White {
			from = to - 16
			epSq = to - 8
		} else {
			from = to + 16
			epSq = to + 8
		}
		moves = append(moves, move.CreateMove(from, to, Pawn, epSq))
	}
	return moves
}

func genKnightMoves(p *position.Position, c Color, destMask Bitboard, moves []move.Move) []move.Move {
	knights := p.PiecesOf(c, Knight)
	for knights != 0 {
		from := knights.PopLsb()
		dests := from.KnightAttacks() & destMask
		for dests != 0 {
			moves = addSimpleMove(p, from, dests.PopLsb(), Knight, c, moves)
		}
	}
	return moves
}

func genSliderMoves(p *position.Position, c Color, destMask Bitboard, moves []move.Move) []move.Move {
	occ := p.Occupied()
	bishops := p.PiecesOf(c, Bishop)
	for bishops != 0 {
		from := bishops.PopLsb()
		dests := attacks.BishopAttacks(from, occ) & destMask
		for dests != 0 {
			moves = addSimpleMove(p, from, dests.PopLsb(), Bishop, c, moves)
		}
	}
	rooks := p.PiecesOf(c, Rook)
	for rooks != 0 {
		from := rooks.PopLsb()
		dests := attacks.RookAttacks(from, occ) & destMask
		for dests != 0 {
			moves = addSimpleMove(p, from, dests.PopLsb(), Rook, c, moves)
		}
	}
	queens := p.PiecesOf(c, Queen)
	for queens != 0 {
		from := queens.PopLsb()
		dests := attacks.QueenAttacks(from, occ) & destMask
		for dests != 0 {
			moves = addSimpleMove(p, from, dests.PopLsb(), Queen, c, moves)
		}
	}
	return moves
}

func genKingMoves(p *position.Position, c Color, destMask Bitboard, moves []move.Move) []move.Move {
	kings := p.PiecesOf(c, King)
	for kings != 0 {
		from := kings.PopLsb()
		dests := from.KingAttacks() & destMask
		for dests != 0 {
			moves = addSimpleMove(p, from, dests.PopLsb(), King, c, moves)
		}
	}
	return moves
}

func addSimpleMove(p *position.Position, from, to Square, piece Piece, c Color, moves []move.Move) []move.Move {
	target := p.PieceAt(to)
	if target == PieceNone {
		return append(moves, move.CreateMove(from, to, piece, SqNone))
	}
	capColor := c.Other()
	if p.Players(c).Has(to) {
		capColor = c
	}
	return append(moves, move.CreateCaptureMove(from, to, piece, target, capColor))
}

func kingHomeSq(c Color) Square {
	if c == White {
		return SqE1
	}
	return SqE8
}
func kingsideToSq(c Color) Square {
	if c == White {
		return SqG1
	}
	return SqG8
}
func queensideToSq(c Color) Square {
	if c == White {
		return SqC1
	}
	return SqC8
}
func kingsideRookHomeSq(c Color) Square {
	if c == White {
		return SqH1
	}
	return SqH8
}
func queensideRookHomeSq(c Color) Square {
	if c == White {
		return SqA1
	}
	return SqA8
}

// between returns the open bitboard of squares strictly between a and b
// (used only for castling, where a and b are always on the back rank).
func between(a, b Square) Bitboard {
	if a > b {
		a, b = b, a
	}
	var bb Bitboard
	for sq := a + 1; sq < b; sq++ {
		bb |= sq.Bb()
	}
	return bb
}

func genCastling(p *position.Position, c Color, moves []move.Move) []move.Move {
	if p.IsCheck(c) {
		return moves
	}
	rights := p.CastlingRights()
	opponentAttacks := p.AttackedSquares(c.Other())
	occ := p.Occupied()

	kingHome := kingHomeSq(c)
	kingsideTo, queensideTo := kingsideToSq(c), queensideToSq(c)
	kingsideRookHome, queensideRookHome := kingsideRookHomeSq(c), queensideRookHomeSq(c)

	kingsideRight, queensideRight := position.CastleWK, position.CastleWQ
	if c == Black {
		kingsideRight, queensideRight = position.CastleBK, position.CastleBQ
	}

	if rights.Has(kingsideRight) {
		passSquares := between(kingHome, kingsideTo) | kingsideTo.Bb()
		emptyNeeded := between(kingHome, kingsideRookHome)
		if occ&emptyNeeded == 0 && opponentAttacks&passSquares == 0 {
			moves = append(moves, move.CreateMove(kingHome, kingsideTo, King, SqNone))
		}
	}
	if rights.Has(queensideRight) {
		passSquares := between(kingHome, queensideTo) | queensideTo.Bb()
		emptyNeeded := between(queensideRookHome, kingHome)
		if occ&emptyNeeded == 0 && opponentAttacks&passSquares == 0 {
			moves = append(moves, move.CreateMove(kingHome, queensideTo, King, SqNone))
		}
	}
	return moves
}
