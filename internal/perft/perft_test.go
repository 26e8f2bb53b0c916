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

package perft

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halvorsen/hmbird/internal/config"
	"github.com/halvorsen/hmbird/internal/position"
	"github.com/halvorsen/hmbird/internal/transpositiontable"
	"github.com/halvorsen/hmbird/internal/variant"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

// known node counts from https://www.chessprogramming.org/Perft_Results
var startPositionPerft = []int64{1, 20, 400, 8902, 197281, 4865609}

func TestPerftStartPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	p := position.NewStart(variant.Classic)
	for depth, want := range startPositionPerft {
		assert.Equal(t, want, Perft(p, depth), "depth %d", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	kiwipete := []int64{1, 48, 2039, 97862, 4085603}
	p := position.New(variant.Classic)
	err := p.SetupFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	for depth, want := range kiwipete {
		assert.Equal(t, want, Perft(p, depth), "depth %d", depth)
	}
}

func TestPerftCachedMatchesUncached(t *testing.T) {
	p := position.NewStart(variant.Classic)
	tt := transpositiontable.NewPerftTable(1 << 16)
	for depth := 0; depth <= 4; depth++ {
		assert.Equal(t, Perft(p, depth), PerftCached(p, depth, tt), "depth %d", depth)
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	p := position.NewStart(variant.Classic)
	divide := Divide(p, 3)
	assert.Equal(t, Perft(p, 3), Sum(divide))
	assert.Equal(t, 20, len(divide))
}

func TestPerftLeavesPositionUnchanged(t *testing.T) {
	p := position.NewStart(variant.Classic)
	before := p.WriteFen()
	Perft(p, 3)
	assert.Equal(t, before, p.WriteFen())
}

// TestPerftCompulsionAppliesForcedCapture pins a position where White has
// exactly one capture available (d4xe5) alongside several non-capturing
// king moves. Under COMPULSION the non-captures must be excluded, so depth 1
// has exactly one node; hand-counted, Black's reply at depth 2 is a
// five-way choice among king moves, none of them attacked by the pawn now
// sitting on e5. If perft ever goes back to enumerating via GenerateMoves
// instead of movegen.LegalMoves, both counts will overshoot.
func TestPerftCompulsionAppliesForcedCapture(t *testing.T) {
	p := position.New(variant.Compulsion)
	err := p.SetupFen("4k3/8/8/4p3/3P4/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), Perft(p, 1))
	assert.Equal(t, int64(5), Perft(p, 2))
}

func TestCompareDivideAgreeingOraclesReportNoMismatch(t *testing.T) {
	p := position.NewStart(variant.Classic)
	divide := Divide(p, 3)
	assert.Empty(t, CompareDivide(divide, divide))
}

func TestCompareDivideFindsDisagreement(t *testing.T) {
	p := position.NewStart(variant.Classic)
	got := Divide(p, 2)
	oracle := make(map[string]int64, len(got))
	for m, n := range got {
		oracle[m] = n
	}
	oracle["e2e4"] = got["e2e4"] + 1

	mismatches := CompareDivide(got, oracle)
	assert.Equal(t, []Mismatch{{Move: "e2e4", Got: got["e2e4"], Want: got["e2e4"] + 1}}, mismatches)
}

func TestCompareDivideReportsMoveMissingFromOneSide(t *testing.T) {
	got := map[string]int64{"e2e4": 20}
	oracle := map[string]int64{"e2e4": 20, "d2d4": 20}
	mismatches := CompareDivide(got, oracle)
	assert.Equal(t, []Mismatch{{Move: "d2d4", Got: 0, Want: 20}}, mismatches)
}

func TestLocalizeAppliesMoveAndDividesOneDeeper(t *testing.T) {
	p := position.NewStart(variant.Classic)
	before := p.WriteFen()
	sub, ok := Localize(p, "e2e4", 3)
	assert.True(t, ok)
	assert.Equal(t, before, p.WriteFen())

	afterE4 := position.New(variant.Classic)
	err := afterE4.SetupFen("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	assert.NoError(t, err)
	assert.Equal(t, Divide(afterE4, 2), sub)
}

func TestLocalizeRejectsIllegalMove(t *testing.T) {
	p := position.NewStart(variant.Classic)
	_, ok := Localize(p, "e2e5", 3)
	assert.False(t, ok)
}
