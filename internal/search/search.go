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

// Package search implements iterative-deepening negamax alpha-beta with
// principal-variation search, a transposition table, and cooperative
// cancellation driven by an auxiliary timer goroutine.
package search

import (
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/halvorsen/hmbird/internal/config"
	"github.com/halvorsen/hmbird/internal/evaluator"
	"github.com/halvorsen/hmbird/internal/move"
	"github.com/halvorsen/hmbird/internal/movegen"
	"github.com/halvorsen/hmbird/internal/position"
	"github.com/halvorsen/hmbird/internal/transpositiontable"
)

// Limits bounds one search: either a fixed depth, a time budget, or both.
// A zero Depth means "search until MoveTimeMs elapses"; a zero MoveTimeMs
// with a non-zero Depth means "search exactly Depth plies with no clock".
type Limits struct {
	Depth     int
	MoveTimeMs int
}

// Result is what Search reports back once it stops, successfully or by
// cancellation.
type Result struct {
	BestMove     move.Move
	Score        int32
	DepthReached int
}

// Search runs a single instance of iterative deepening on p (which is left
// in its original state: every explored line is undone). isRunning guards
// against a second FindBestMove call overlapping the first on the same
// *Search; a call that loses the race returns the zero Result immediately
// rather than blocking.
type Search struct {
	tt               *transpositiontable.SearchTable
	searchesFinished uint64
	cancelled        int32
	isRunning        *semaphore.Weighted
}

// New builds a Search with its own transposition table sized from the
// global configuration.
func New() *Search {
	return &Search{
		tt:        transpositiontable.NewSearchTable(config.Settings.Search.TTSize),
		isRunning: semaphore.NewWeighted(1),
	}
}

// FindBestMove runs iterative deepening from depth 1 up to lim.Depth (or
// forever if lim.Depth == 0), stopping early if lim.MoveTimeMs elapses. It
// always returns the best move found by the last *completed* iteration; if
// cancellation arrives before depth 1 completes, it returns move.Null.
func (s *Search) FindBestMove(p *position.Position, lim Limits) Result {
	if !s.isRunning.TryAcquire(1) {
		return Result{}
	}
	defer s.isRunning.Release(1)

	atomic.StoreInt32(&s.cancelled, 0)
	mySearch := atomic.AddUint64(&s.searchesFinished, 0)

	var stopTimer chan struct{}
	if lim.MoveTimeMs > 0 {
		stopTimer = make(chan struct{})
		go func(generation uint64) {
			select {
			case <-time.After(time.Duration(lim.MoveTimeMs) * time.Millisecond):
				if atomic.LoadUint64(&s.searchesFinished) == generation {
					atomic.StoreInt32(&s.cancelled, 1)
				}
			case <-stopTimer:
			}
		}(mySearch)
	}

	var result Result
	hint := move.Null

	maxDepth := lim.Depth
	if maxDepth == 0 {
		maxDepth = 1_000_000 // effectively unbounded; the timer or caller stops us
	}

	for depth := 1; depth <= maxDepth; depth++ {
		if atomic.LoadInt32(&s.cancelled) != 0 {
			break
		}
		score, best, completed := s.searchRoot(p, depth, hint)
		if !completed {
			break
		}
		result = Result{BestMove: best, Score: score, DepthReached: depth}
		hint = best
		if lim.Depth != 0 && depth >= lim.Depth {
			break
		}
	}

	if stopTimer != nil {
		close(stopTimer)
	}
	atomic.AddUint64(&s.searchesFinished, 1)
	return result
}

func (s *Search) searchRoot(p *position.Position, maxDepth int, hint move.Move) (score int32, best move.Move, completed bool) {
	const negInf = -(1 << 30)
	const posInf = 1 << 30

	legal := movegen.LegalMoves(p)
	if len(legal) == 0 {
		return 0, move.Null, true
	}
	ordered := orderMoves(p, legal, hint, move.Null)

	alpha, beta := int32(negInf), int32(posInf)
	bestScore := int32(negInf)
	bestMove := ordered[0]
	first := true

	for _, m := range ordered {
		if atomic.LoadInt32(&s.cancelled) != 0 {
			return bestScore, bestMove, false
		}
		if !p.Attempt(m) {
			continue
		}
		var childScore int32
		if first {
			childScore = -s.negamax(p, 1, maxDepth, -beta, -alpha, move.Null)
			first = false
		} else {
			childScore = -s.negamax(p, 1, maxDepth, -alpha-1, -alpha, move.Null)
			if childScore > alpha && childScore < beta {
				childScore = -s.negamax(p, 1, maxDepth, -beta, -alpha, move.Null)
			}
		}
		p.Undo()

		if childScore > bestScore {
			bestScore = childScore
			bestMove = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	if atomic.LoadInt32(&s.cancelled) != 0 {
		return bestScore, bestMove, false
	}
	return bestScore, bestMove, true
}

// negamax is the recursive alpha-beta/PVS search. ply counts plies from the
// search root, used for mate-distance scoring; maxDepth is the iterative-
// deepening target depth for this iteration, at which a leaf is evaluated.
// Like searchRoot, it polls s.cancelled between move trials so a stop/
// time-limit signal raised deep in a subtree is observed without waiting
// for that subtree to unwind naturally; the (possibly incomplete) score
// this returns only ever surfaces in a result discarded by searchRoot's own
// cancellation check once it is back at the root.
func (s *Search) negamax(p *position.Position, ply, maxDepth int, alpha, beta int32, hint move.Move) int32 {
	v := p.Variant()

	if p.AlternativeWinningConditionMet(p.SideToMove()) {
		return evaluator.CheckmateScore - int32(ply)
	}
	if p.AlternativeWinningConditionMet(p.SideToMove().Other()) {
		return -(evaluator.CheckmateScore - int32(ply))
	}

	if p.IsFiftyMoveDraw() || p.IsThreeMoveRepetition() {
		if alpha > 0 {
			return alpha
		}
		return 0
	}

	if ply >= maxDepth {
		return evaluator.Evaluate(p)
	}

	twoFold := p.IsTwoMoveRepetition()

	remainingDepth := maxDepth - ply
	initialAlpha := alpha
	var ttBest move.Move
	if config.Settings.Search.UseTT && !twoFold {
		if entry, ok := s.tt.Probe(p.Hash()); ok {
			if config.Settings.Search.UseTTMove {
				ttBest = entry.BestMove
			}
			if config.Settings.Search.UseTTValue && entry.RemainingDepth >= remainingDepth {
				switch entry.Precision {
				case transpositiontable.Exact:
					return entry.Score
				case transpositiontable.Lower:
					if entry.Score > alpha {
						alpha = entry.Score
					}
				case transpositiontable.Upper:
					if entry.Score < beta {
						beta = entry.Score
					}
				}
				if alpha >= beta {
					return entry.Score
				}
			}
		}
	}

	legal := movegen.LegalMoves(p)
	if len(legal) == 0 {
		if v.WinByCheckmate() {
			if p.IsCheck(p.SideToMove()) {
				return -(evaluator.CheckmateScore - int32(ply))
			}
			return 0
		}
		return 0 // LOSER: running out of moves is the win condition, handled above at the parent
	}

	ordered := orderMoves(p, legal, hint, ttBest)

	bestScore := int32(-(1 << 30))
	var bestMove move.Move
	first := true

	for _, m := range ordered {
		if atomic.LoadInt32(&s.cancelled) != 0 {
			break
		}
		if !p.Attempt(m) {
			continue
		}
		var childScore int32
		if first {
			childScore = -s.negamax(p, ply+1, maxDepth, -beta, -alpha, move.Null)
			first = false
		} else {
			childScore = -s.negamax(p, ply+1, maxDepth, -alpha-1, -alpha, move.Null)
			if childScore > alpha && childScore < beta {
				childScore = -s.negamax(p, ply+1, maxDepth, -beta, -alpha, move.Null)
			}
		}
		p.Undo()

		if childScore > bestScore {
			bestScore = childScore
			bestMove = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			break
		}
	}

	if config.Settings.Search.UseTT {
		var precision transpositiontable.Precision
		switch {
		case bestScore <= initialAlpha:
			precision = transpositiontable.Upper
		case bestScore >= beta:
			precision = transpositiontable.Lower
		default:
			precision = transpositiontable.Exact
		}
		s.tt.Store(p.Hash(), precision, bestScore, remainingDepth, bestMove)
	}

	if alpha < beta {
		return alpha
	}
	return beta
}
