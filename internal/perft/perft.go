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

// Package perft counts leaf nodes of the legal-move tree to a fixed depth,
// the standard move-generator correctness oracle, optionally caching
// subtree counts in a transposition table.
package perft

import (
	"sort"

	"github.com/halvorsen/hmbird/internal/movegen"
	"github.com/halvorsen/hmbird/internal/position"
	"github.com/halvorsen/hmbird/internal/transpositiontable"
)

// Perft counts leaf nodes at the given depth. depth == 0 counts the root
// position itself as a single node.
func Perft(p *position.Position, depth int) int64 {
	return perftRec(p, depth, nil)
}

// PerftCached is Perft with subtree counts memoized in tt, keyed on
// position hash and remaining depth.
func PerftCached(p *position.Position, depth int, tt *transpositiontable.PerftTable) int64 {
	return perftRec(p, depth, tt)
}

func perftRec(p *position.Position, depth int, tt *transpositiontable.PerftTable) int64 {
	if depth == 0 {
		return 1
	}
	if tt != nil {
		if n, ok := tt.Probe(p.Hash(), depth); ok {
			return n
		}
	}

	var nodes int64
	for _, m := range movegen.LegalMoves(p) {
		if !p.Attempt(m) {
			continue
		}
		nodes += perftRec(p, depth-1, tt)
		p.Undo()
	}

	if tt != nil {
		tt.Store(p.Hash(), depth, nodes)
	}
	return nodes
}

// Divide returns, for each legal move at the root, the perft count of the
// subtree rooted after that move at depth-1 — the standard tool for
// comparing a move generator against an oracle move-by-move.
func Divide(p *position.Position, depth int) map[string]int64 {
	result := make(map[string]int64)
	if depth <= 0 {
		return result
	}
	for _, m := range movegen.LegalMoves(p) {
		if !p.Attempt(m) {
			continue
		}
		result[m.String()] = perftRec(p, depth-1, nil)
		p.Undo()
	}
	return result
}

// Sum returns the total node count represented by a Divide map.
func Sum(divide map[string]int64) int64 {
	var total int64
	for _, n := range divide {
		total += n
	}
	return total
}

// Mismatch is one move whose subtree count disagreed with an oracle.
type Mismatch struct {
	Move string
	Got  int64
	Want int64
}

// CompareDivide diffs a Divide result against an oracle's own divide map for
// the same position and depth, reporting every move whose count disagrees
// (in either map) in a stable, move-name-sorted order. An empty result means
// got and want agree move-for-move.
func CompareDivide(got, want map[string]int64) []Mismatch {
	seen := make(map[string]bool, len(got)+len(want))
	for m := range got {
		seen[m] = true
	}
	for m := range want {
		seen[m] = true
	}
	moves := make([]string, 0, len(seen))
	for m := range seen {
		moves = append(moves, m)
	}
	sort.Strings(moves)

	var mismatches []Mismatch
	for _, m := range moves {
		g, w := got[m], want[m]
		if g != w {
			mismatches = append(mismatches, Mismatch{Move: m, Got: g, Want: w})
		}
	}
	return mismatches
}

// Localize applies moveStr (long algebraic) to p and divides one ply
// shallower, letting a caller recurse into whichever root move disagreed
// with the oracle to find exactly where the two move generators diverge.
// p is restored to its original state before returning. Returns (nil, false)
// if moveStr does not name a legal move.
func Localize(p *position.Position, moveStr string, depth int) (map[string]int64, bool) {
	for _, m := range movegen.LegalMoves(p) {
		if m.String() != moveStr {
			continue
		}
		if !p.Attempt(m) {
			return nil, false
		}
		defer p.Undo()
		return Divide(p, depth-1), true
	}
	return nil, false
}
