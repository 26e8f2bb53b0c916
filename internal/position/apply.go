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
	"github.com/halvorsen/hmbird/internal/assert"
	"github.com/halvorsen/hmbird/internal/move"
	. "github.com/halvorsen/hmbird/internal/types"
	"github.com/halvorsen/hmbird/internal/zobrist"
)

// Apply plays m on the position, updating every bitboard, the piece list,
// castling rights, en-passant state, the incremental hash and the
// half-move clock, and pushing a history frame Undo can reverse.
//
// A pawn move to an empty diagonal destination is unambiguously an
// en-passant capture (an ordinary diagonal pawn move always targets an
// occupied square), so that case is detected once here, remembered in
// epCapHist, and its removal deferred to the dedicated en-passant step
// below rather than folded into the generic captured-piece clearing step.
func (p *Position) Apply(m move.Move) {
	from, to := m.From(), m.To()
	piece := m.Piece()
	mover := p.sideToMove

	destructive := p.v.IsDestructiveMove(piece == Knight, m.IsCapture())
	p.pushHistory(m, destructive)

	capturedColor := mover.Other()
	if m.IsCapture() && p.v.FriendlyFire() {
		capturedColor = m.CapturedColor()
	}

	enPassant := piece == Pawn && m.IsCapture() && p.list[to] == PieceNone

	// step 3: clear origin
	p.pieces[piece] = PopSquare(p.pieces[piece], from)
	p.players[mover] = PopSquare(p.players[mover], from)
	p.list[from] = PieceNone
	p.hash ^= zobrist.Piece[from][mover][piece]

	// step 4: clear captured piece at `to` (no-op for EMPTY and for en passant)
	if m.IsCapture() && !enPassant {
		captured := m.CapturedPiece()
		p.pieces[captured] = PopSquare(p.pieces[captured], to)
		p.players[capturedColor] = PopSquare(p.players[capturedColor], to)
		p.hash ^= zobrist.Piece[to][capturedColor][captured]
	}

	// step 5+6: place the moving (or promoted) piece at `to`, update list
	placed := piece
	if m.IsPromotion() {
		placed = m.Promotion()
	}
	p.pieces[placed] = PushSquare(p.pieces[placed], to)
	p.players[mover] = PushSquare(p.players[mover], to)
	p.list[to] = placed
	p.hash ^= zobrist.Piece[to][mover][placed]

	// step 7: exploding-knight blast removal
	if destructive {
		blast := (to.KingAttacks() | to.Bb()) & (p.players[White] | p.players[Black])
		for blast != 0 {
			sq := blast.PopLsb()
			pc := p.list[sq]
			col := p.ColorAt(sq)
			p.pieces[pc] = PopSquare(p.pieces[pc], sq)
			p.players[col] = PopSquare(p.players[col], sq)
			p.list[sq] = PieceNone
			p.hash ^= zobrist.Piece[sq][col][pc]
		}
	}

	// step 8: en-passant captured pawn removal
	if enPassant {
		var capSq Square
		if mover == White {
			capSq = to - 8
		} else {
			capSq = to + 8
		}
		p.pieces[Pawn] = PopSquare(p.pieces[Pawn], capSq)
		p.players[capturedColor] = PopSquare(p.players[capturedColor], capSq)
		p.list[capSq] = PieceNone
		p.hash ^= zobrist.Piece[capSq][capturedColor][Pawn]
	}

	// step 9: en-passant square update
	if p.ep != 0 {
		p.hash ^= zobrist.EnPassantFile[p.ep.Lsb().FileOf()]
		p.ep = 0
	}
	if epSq := m.EpSquare(); epSq != SqNone {
		p.ep = epSq.Bb()
		p.hash ^= zobrist.EnPassantFile[epSq.FileOf()]
	}

	// step 10: castling rook move
	if piece == King {
		diff := int(to) - int(from)
		if diff == 2 {
			rookFrom, rookTo := kingsideRookHome(mover), kingsideRookTo(mover)
			p.pieces[Rook] = PopSquare(p.pieces[Rook], rookFrom)
			p.pieces[Rook] = PushSquare(p.pieces[Rook], rookTo)
			p.players[mover] = PopSquare(p.players[mover], rookFrom)
			p.players[mover] = PushSquare(p.players[mover], rookTo)
			p.list[rookFrom] = PieceNone
			p.list[rookTo] = Rook
			p.hash ^= zobrist.Piece[rookFrom][mover][Rook]
			p.hash ^= zobrist.Piece[rookTo][mover][Rook]
		} else if diff == -2 {
			rookFrom, rookTo := queensideRookHome(mover), queensideRookTo(mover)
			p.pieces[Rook] = PopSquare(p.pieces[Rook], rookFrom)
			p.pieces[Rook] = PushSquare(p.pieces[Rook], rookTo)
			p.players[mover] = PopSquare(p.players[mover], rookFrom)
			p.players[mover] = PushSquare(p.players[mover], rookTo)
			p.list[rookFrom] = PieceNone
			p.list[rookTo] = Rook
			p.hash ^= zobrist.Piece[rookFrom][mover][Rook]
			p.hash ^= zobrist.Piece[rookTo][mover][Rook]
		}
	}

	// step 11: castling-right attrition, checked generically across all four
	// rights since capturing an opponent's rook on its home square revokes
	// that opponent's right too, not just the mover's.
	p.attritCastlingRight(White, kingsideRight(White), kingHome(White), kingsideRookHome(White))
	p.attritCastlingRight(White, queensideRight(White), kingHome(White), queensideRookHome(White))
	p.attritCastlingRight(Black, kingsideRight(Black), kingHome(Black), kingsideRookHome(Black))
	p.attritCastlingRight(Black, queensideRight(Black), kingHome(Black), queensideRookHome(Black))

	// step 12: recompute occupied
	p.recomputeOccupied()

	// step 13: flip side to move
	p.sideToMove = mover.Other()
	p.hash ^= zobrist.ActivePlayer

	// step 14: half-move clock
	if m.IsIrreversible() {
		p.halfmove = 0
	} else {
		p.halfmove++
	}

	p.epCapHist[len(p.epCapHist)-1] = enPassant
}

func (p *Position) attritCastlingRight(c Color, right CastlingRights, kingSq, rookSq Square) {
	if !p.castling.Has(right) {
		return
	}
	if p.list[kingSq] != King || !p.players[c].Has(kingSq) || p.list[rookSq] != Rook || !p.players[c].Has(rookSq) {
		p.castling &^= right
		p.hash ^= rightKey(c, right)
	}
}

func rightKey(c Color, right CastlingRights) uint64 {
	if right == kingsideRight(c) {
		return zobrist.KingsideCastling[c]
	}
	return zobrist.QueensideCastling[c]
}

// pushHistory snapshots everything Undo needs to reverse the upcoming move.
// For destructive moves it also snapshots the full piece arrays, since the
// move word alone cannot encode an arbitrary-sized blast of removed pieces.
func (p *Position) pushHistory(m move.Move, destructive bool) {
	p.moveHist = append(p.moveHist, m)
	p.epHist = append(p.epHist, p.ep)
	p.castlingHist = append(p.castlingHist, p.castling)
	p.hashHist = append(p.hashHist, p.hash)
	p.halfmoveHist = append(p.halfmoveHist, p.halfmove)
	p.epCapHist = append(p.epCapHist, false)

	if destructive {
		p.piecesHist = append(p.piecesHist, p.pieces)
		p.playersHist = append(p.playersHist, p.players)
		p.listHist = append(p.listHist, p.list)
	} else {
		p.piecesHist = append(p.piecesHist, [PieceLength]Bitboard{})
		p.playersHist = append(p.playersHist, [ColorLength]Bitboard{})
		p.listHist = append(p.listHist, [SqLength]Piece{})
	}
}

// Undo reverses the most recently applied move. Panics if called on a
// position with empty history, matching the teacher's convention that
// make/unmake misuse is a programmer error, not a recoverable one.
func (p *Position) Undo() {
	assert.Assert(len(p.moveHist) > 0, "position: Undo called with empty history")
	n := len(p.moveHist) - 1
	m := p.moveHist[n]
	wasEnPassant := p.epCapHist[n]
	destructive := p.v.IsDestructiveMove(m.Piece() == Knight, m.IsCapture())

	mover := p.sideToMove.Other()

	p.ep = p.epHist[n]
	p.castling = p.castlingHist[n]
	p.hash = p.hashHist[n]
	p.halfmove = p.halfmoveHist[n]

	if destructive {
		p.pieces = p.piecesHist[n]
		p.players = p.playersHist[n]
		p.list = p.listHist[n]
	} else {
		from, to := m.From(), m.To()
		piece := m.Piece()

		if piece == King {
			diff := int(to) - int(from)
			if diff == 2 {
				rookFrom, rookTo := kingsideRookHome(mover), kingsideRookTo(mover)
				p.pieces[Rook] = PopSquare(p.pieces[Rook], rookTo)
				p.pieces[Rook] = PushSquare(p.pieces[Rook], rookFrom)
				p.players[mover] = PopSquare(p.players[mover], rookTo)
				p.players[mover] = PushSquare(p.players[mover], rookFrom)
				p.list[rookTo] = PieceNone
				p.list[rookFrom] = Rook
			} else if diff == -2 {
				rookFrom, rookTo := queensideRookHome(mover), queensideRookTo(mover)
				p.pieces[Rook] = PopSquare(p.pieces[Rook], rookTo)
				p.pieces[Rook] = PushSquare(p.pieces[Rook], rookFrom)
				p.players[mover] = PopSquare(p.players[mover], rookTo)
				p.players[mover] = PushSquare(p.players[mover], rookFrom)
				p.list[rookTo] = PieceNone
				p.list[rookFrom] = Rook
			}
		}

		placed := piece
		if m.IsPromotion() {
			placed = m.Promotion()
		}
		p.pieces[placed] = PopSquare(p.pieces[placed], to)
		p.players[mover] = PopSquare(p.players[mover], to)
		p.list[to] = PieceNone

		p.pieces[piece] = PushSquare(p.pieces[piece], from)
		p.players[mover] = PushSquare(p.players[mover], from)
		p.list[from] = piece

		if wasEnPassant {
			var capSq Square
			if mover == White {
				capSq = to - 8
			} else {
				capSq = to + 8
			}
			p.pieces[Pawn] = PushSquare(p.pieces[Pawn], capSq)
			p.players[mover.Other()] = PushSquare(p.players[mover.Other()], capSq)
			p.list[capSq] = Pawn
		} else if m.IsCapture() {
			capturedColor := m.CapturedColor()
			captured := m.CapturedPiece()
			p.pieces[captured] = PushSquare(p.pieces[captured], to)
			p.players[capturedColor] = PushSquare(p.players[capturedColor], to)
			p.list[to] = captured
		}
	}

	p.recomputeOccupied()
	p.sideToMove = mover

	p.moveHist = p.moveHist[:n]
	p.epHist = p.epHist[:n]
	p.castlingHist = p.castlingHist[:n]
	p.hashHist = p.hashHist[:n]
	p.halfmoveHist = p.halfmoveHist[:n]
	p.epCapHist = p.epCapHist[:n]
	p.piecesHist = p.piecesHist[:n]
	p.playersHist = p.playersHist[:n]
	p.listHist = p.listHist[:n]
}

// Attempt applies m and reports whether the resulting position is legal
// (the side that just moved is not left in check). On an illegal result the
// move is undone before returning false, so callers never need to check
// CheckDisabled variants specially: those variants are always legal here.
func (p *Position) Attempt(m move.Move) bool {
	p.Apply(m)
	mover := p.sideToMove.Other()
	if !p.v.CheckDisabled() && p.IsCheck(mover) {
		p.Undo()
		return false
	}
	return true
}
