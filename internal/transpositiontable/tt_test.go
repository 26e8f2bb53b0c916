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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halvorsen/hmbird/internal/move"
	. "github.com/halvorsen/hmbird/internal/types"
)

func TestSearchTableProbeMiss(t *testing.T) {
	tt := NewSearchTable(16)
	_, ok := tt.Probe(12345)
	assert.False(t, ok)
}

func TestSearchTableStoreProbeRoundTrip(t *testing.T) {
	tt := NewSearchTable(16)
	best := move.CreateMove(SqE2, SqE4, Pawn, SqE3)
	tt.Store(99, Exact, 123, 5, best)

	e, ok := tt.Probe(99)
	assert.True(t, ok)
	assert.Equal(t, Exact, e.Precision)
	assert.EqualValues(t, 123, e.Score)
	assert.Equal(t, 5, e.RemainingDepth)
	assert.Equal(t, best, e.BestMove)
}

func TestSearchTableDifferentKeyInSameSlotIsMiss(t *testing.T) {
	tt := NewSearchTable(1)
	tt.Store(1, Exact, 10, 3, move.Null)
	_, ok := tt.Probe(2)
	assert.False(t, ok)
}

func TestSearchTableReset(t *testing.T) {
	tt := NewSearchTable(4)
	tt.Store(1, Exact, 10, 3, move.Null)
	tt.Reset()
	_, ok := tt.Probe(1)
	assert.False(t, ok)
}

func TestSearchTableLen(t *testing.T) {
	tt := NewSearchTable(128)
	assert.Equal(t, 128, tt.Len())
	zero := NewSearchTable(0)
	assert.Equal(t, 1, zero.Len())
}

func TestPerftTableStoreProbeRoundTrip(t *testing.T) {
	tt := NewPerftTable(16)
	tt.Store(7, 3, 8902)
	n, ok := tt.Probe(7, 3)
	assert.True(t, ok)
	assert.EqualValues(t, 8902, n)

	_, ok = tt.Probe(7, 4)
	assert.False(t, ok)
}

func TestPerftTableKeyChangeResetsSlot(t *testing.T) {
	tt := NewPerftTable(1)
	tt.Store(1, 2, 100)
	tt.Store(2, 2, 200)

	_, ok := tt.Probe(1, 2)
	assert.False(t, ok)
	n, ok := tt.Probe(2, 2)
	assert.True(t, ok)
	assert.EqualValues(t, 200, n)
}

func TestPerftTableOutOfRangeDepthIsIgnored(t *testing.T) {
	tt := NewPerftTable(4)
	tt.Store(1, -1, 100)
	tt.Store(1, maxPerftDepth, 100)
	_, ok := tt.Probe(1, -1)
	assert.False(t, ok)
	_, ok = tt.Probe(1, maxPerftDepth)
	assert.False(t, ok)
}
