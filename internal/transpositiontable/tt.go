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

// Package transpositiontable holds a direct-mapped (key modulo table size,
// not power-of-two masked) table keyed on Zobrist hash, with one flavor of
// entry for perft node counts and another for search bounds. Collisions are
// resolved by always replacing: no secondary probing, no aging.
package transpositiontable

import (
	"github.com/halvorsen/hmbird/internal/assert"
	"github.com/halvorsen/hmbird/internal/move"
)

// Precision describes how a stored search score relates to the true value
// of the position at the stored depth.
type Precision uint8

// The four precisions a search entry can carry.
const (
	None Precision = iota
	Exact
	Lower
	Upper
)

// SearchEntry is one slot of the search transposition table.
type SearchEntry struct {
	Key            uint64
	Precision      Precision
	Score          int32
	RemainingDepth int
	BestMove       move.Move
}

// PerftEntry is one slot of the perft transposition table: a node count per
// remaining depth, since perft never needs alpha/beta bounds.
type PerftEntry struct {
	Key       uint64
	NodeCount [maxPerftDepth]int64
}

const maxPerftDepth = 32

// SearchTable is a direct-mapped table of SearchEntry, indexed by key % len.
type SearchTable struct {
	entries []SearchEntry
}

// NewSearchTable allocates a table with size slots.
func NewSearchTable(size int) *SearchTable {
	if size <= 0 {
		size = 1
	}
	return &SearchTable{entries: make([]SearchEntry, size)}
}

func (t *SearchTable) slot(key uint64) *SearchEntry {
	assert.Assert(len(t.entries) > 0, "transpositiontable: SearchTable has zero slots")
	return &t.entries[key%uint64(len(t.entries))]
}

// Probe returns the entry stored for key and whether it is actually for
// that key (a different key occupying the same slot is reported as a miss,
// never handed back as a false hit).
func (t *SearchTable) Probe(key uint64) (SearchEntry, bool) {
	e := t.slot(key)
	if e.Key != key || e.Precision == None {
		return SearchEntry{}, false
	}
	return *e, true
}

// Store always replaces whatever entry currently occupies key's slot.
func (t *SearchTable) Store(key uint64, precision Precision, score int32, remainingDepth int, best move.Move) {
	assert.Assert(remainingDepth >= 0, "transpositiontable: Store called with negative remainingDepth %d", remainingDepth)
	e := t.slot(key)
	e.Key = key
	e.Precision = precision
	e.Score = score
	e.RemainingDepth = remainingDepth
	e.BestMove = best
}

// Reset clears every slot.
func (t *SearchTable) Reset() {
	for i := range t.entries {
		t.entries[i] = SearchEntry{}
	}
}

// Len returns the number of slots in the table.
func (t *SearchTable) Len() int { return len(t.entries) }

// PerftTable is a direct-mapped table of PerftEntry, indexed by key % len.
type PerftTable struct {
	entries []PerftEntry
}

// NewPerftTable allocates a table with size slots.
func NewPerftTable(size int) *PerftTable {
	if size <= 0 {
		size = 1
	}
	return &PerftTable{entries: make([]PerftEntry, size)}
}

func (t *PerftTable) slot(key uint64) *PerftEntry {
	assert.Assert(len(t.entries) > 0, "transpositiontable: PerftTable has zero slots")
	return &t.entries[key%uint64(len(t.entries))]
}

// Probe returns the cached node count for key at remainingDepth, or
// (0, false) if the slot holds a different key or has never been filled at
// that depth.
func (t *PerftTable) Probe(key uint64, remainingDepth int) (int64, bool) {
	if remainingDepth < 0 || remainingDepth >= maxPerftDepth {
		return 0, false
	}
	e := t.slot(key)
	if e.Key != key || e.NodeCount[remainingDepth] == 0 {
		return 0, false
	}
	return e.NodeCount[remainingDepth], true
}

// Store always replaces whatever entry currently occupies key's slot,
// except that switching keys resets every depth's node count to avoid
// mixing counts from two different positions that share a slot.
func (t *PerftTable) Store(key uint64, remainingDepth int, count int64) {
	if remainingDepth < 0 || remainingDepth >= maxPerftDepth {
		return
	}
	e := t.slot(key)
	if e.Key != key {
		*e = PerftEntry{Key: key}
	}
	e.NodeCount[remainingDepth] = count
}

// Reset clears every slot.
func (t *PerftTable) Reset() {
	for i := range t.entries {
		t.entries[i] = PerftEntry{}
	}
}
