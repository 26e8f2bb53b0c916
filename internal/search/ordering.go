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

package search

import (
	"sort"

	"github.com/halvorsen/hmbird/internal/move"
	"github.com/halvorsen/hmbird/internal/position"
)

// captureBonus ranks captures ahead of quiet moves within the heuristic
// ordering key, roughly by material gained.
var captureBonus = map[int]int32{0: 0, 1: 100, 2: 300, 3: 300, 4: 500, 5: 900, 6: 0}

// orderMoves sorts candidates for search: hint first (the previous
// iteration's best move), then the transposition table's best move, then
// everything else by a cheap static key (capture value, descending).
// Stable-sorts so ties keep generation order.
func orderMoves(p *position.Position, candidates []move.Move, hint, ttMove move.Move) []move.Move {
	ordered := make([]move.Move, len(candidates))
	copy(ordered, candidates)

	key := func(m move.Move) int32 {
		if m == hint {
			return 1 << 30
		}
		if m == ttMove {
			return 1<<30 - 1
		}
		k := int32(0)
		if m.IsCapture() {
			k += captureBonus[int(m.CapturedPiece())]
		}
		if m.IsPromotion() {
			k += 800
		}
		return k
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return key(ordered[i]) > key(ordered[j])
	})
	return ordered
}
