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

// Package evaluator computes a static score for a position from the side to
// move's point of view: material plus tapered piece-square tables, bishop
// pair, mobility, hanging pieces, castling rights, and variant-specific
// terrain bonuses.
package evaluator

import (
	"github.com/halvorsen/hmbird/internal/attacks"
	"github.com/halvorsen/hmbird/internal/config"
	"github.com/halvorsen/hmbird/internal/position"
	. "github.com/halvorsen/hmbird/internal/types"
	"github.com/halvorsen/hmbird/internal/variant"
)

// CheckmateScore is the score assigned to a position in which the side to
// move has been checkmated, before ply adjustment (search subtracts the
// mating distance so shorter mates score higher).
const CheckmateScore = 1_000_000

// material value of one piece of each kind, in centipawns.
var materialValue = [PieceLength]int32{
	PieceNone: 0,
	Pawn:      100,
	Knight:    300,
	Bishop:    300,
	Rook:      500,
	Queen:     900,
	King:      0,
}

// endgameWeight is how much each piece kind contributes to the endgame
// progress counter, capped at 24 (the classic "material phase" scheme).
var endgameWeight = [PieceLength]int32{
	Knight: 1,
	Bishop: 1,
	Rook:   2,
	Queen:  4,
}

const maxPhase = 24

func endgameProgress(p *position.Position) int32 {
	var progress int32
	for pc := Knight; pc <= Queen; pc++ {
		progress += endgameWeight[pc] * int32((p.Pieces(pc)).PopCount())
	}
	if progress > maxPhase {
		progress = maxPhase
	}
	return progress
}

// Evaluate returns the static score of p from the point of view of the side
// to move. A finished position (checkmate, stalemate, alternative win) is
// not special-cased here: callers that need checkmate/draw scores compute
// them directly via movegen and CheckmateScore instead.
func Evaluate(p *position.Position) int32 {
	us := p.SideToMove()
	them := us.Other()
	score := evaluateSide(p, us) - evaluateSide(p, them)
	score += int32(config.Settings.Eval.Tempo)
	if p.Variant() == variant.Loser {
		score = -score
	}
	return score
}

func evaluateSide(p *position.Position, c Color) int32 {
	progress := endgameProgress(p)
	var score int32

	for pc := Pawn; pc <= King; pc++ {
		bb := p.PiecesOf(c, pc)
		score += int32(bb.PopCount()) * materialValue[pc]
		for bb != 0 {
			sq := bb.PopLsb()
			mid, end := pstTables(pc)
			idx := pstIndex(sq, c)
			mg, eg := int32(mid[idx]), int32(end[idx])
			score += (mg*progress + eg*(maxPhase-progress)) / maxPhase
		}
	}

	if p.PiecesOf(c, Bishop).PopCount() >= 2 {
		score += int32(config.Settings.Eval.BishopPairBonus)
	}

	if config.Settings.Eval.UseMobility {
		score += mobility(p, c) * int32(config.Settings.Eval.MobilityBonus)
	}

	if config.Settings.Eval.UseHangingPenalty {
		score -= hangingPenalty(p, c)
	}

	v := p.Variant()
	if v != variant.KingOfTheHillAndCompulsion {
		rights := p.CastlingRights()
		n := 0
		kingside, queenside := position.CastleWK, position.CastleWQ
		if c == Black {
			kingside, queenside = position.CastleBK, position.CastleBQ
		}
		if rights.Has(kingside) {
			n++
		}
		if rights.Has(queenside) {
			n++
		}
		score += int32(n) * int32(config.Settings.Eval.CastlingRightBonus)
	}

	if v.KingOfTheHill() {
		king := p.PiecesOf(c, King)
		if king&attacks.RingOfRadius2 != 0 {
			score += int32(config.Settings.Eval.KingOfTheHillRing2Bonus)
		} else if king&attacks.RingOfRadius3 != 0 {
			score += int32(config.Settings.Eval.KingOfTheHillRing3Bonus)
		}
	}

	return score
}

// mobility counts quasi-legal destination squares for every knight, bishop,
// rook and queen of color c, a cheap proxy that does not require proving
// each move safe. Pawn and king moves (castling included) are not counted.
func mobility(p *position.Position, c Color) int32 {
	occ := p.Occupied()
	destMask := ^p.Players(c)
	if p.Variant().FriendlyFire() {
		destMask = ^p.PiecesOf(c, King)
	}

	var count int32
	knights := p.PiecesOf(c, Knight)
	for knights != 0 {
		count += int32((knights.PopLsb().KnightAttacks() & destMask).PopCount())
	}
	bishops := p.PiecesOf(c, Bishop)
	for bishops != 0 {
		count += int32((attacks.BishopAttacks(bishops.PopLsb(), occ) & destMask).PopCount())
	}
	rooks := p.PiecesOf(c, Rook)
	for rooks != 0 {
		count += int32((attacks.RookAttacks(rooks.PopLsb(), occ) & destMask).PopCount())
	}
	queens := p.PiecesOf(c, Queen)
	for queens != 0 {
		count += int32((attacks.QueenAttacks(queens.PopLsb(), occ) & destMask).PopCount())
	}
	return count
}

func hangingPenalty(p *position.Position, c Color) int32 {
	attacked := p.AttackedSquares(c.Other())
	var penalty int32
	malus := func(pc Piece) int32 {
		switch pc {
		case Pawn:
			return int32(config.Settings.Eval.HangingPawnMalus)
		case Knight, Bishop:
			return int32(config.Settings.Eval.HangingMinorMalus)
		case Rook:
			return int32(config.Settings.Eval.HangingRookMalus)
		case Queen:
			return int32(config.Settings.Eval.HangingQueenMalus)
		case King:
			return int32(config.Settings.Eval.HangingKingMalus)
		}
		return 0
	}
	for pc := Pawn; pc <= King; pc++ {
		bb := p.PiecesOf(c, pc) & attacked
		penalty += int32(bb.PopCount()) * malus(pc)
	}
	return penalty
}

// MateScore returns the score for being checkmated at the given search ply:
// being mated sooner scores lower than being mated later, so the mating
// side, which sees the negated value, prefers the shorter mate.
func MateScore(ply int) int32 {
	return -(CheckmateScore - int32(ply))
}
